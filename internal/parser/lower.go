package parser

import (
	"github.com/boklang/bok/internal/value"
)

// Importer loads the file named by path, lowers it against a fresh
// dictionary seeded with builtins, and injects its newly defined names
// into dict prefixed by the file's base name and a dot. Implemented by
// package importer; declared here to avoid a parser<->importer cycle.
type Importer interface {
	Import(path string, dict *value.Dictionary) error
}

// Lower walks a scoped Program and produces the flat operation sequence
// the stack machine runs, mutating dict with every `word`, `var`, and
// `import` it encounters along the way.
func Lower(prog *Program, dict *value.Dictionary, imp Importer) ([]value.Value, error) {
	var ops []value.Value
	for _, stmt := range prog.Statements {
		got, err := lowerNode(stmt, dict, imp)
		if err != nil {
			return nil, err
		}
		ops = append(ops, got...)
	}
	return ops, nil
}

func lowerNode(n Node, dict *value.Dictionary, imp Importer) ([]value.Value, error) {
	switch t := n.(type) {
	case *NumberNode:
		if t.IsFloat {
			return []value.Value{value.Float(t.FloatVal)}, nil
		}
		return []value.Value{value.Int(t.IntVal)}, nil

	case *StringNode:
		return []value.Value{value.Str(t.Value)}, nil

	case *BoolNode:
		return []value.Value{value.Bool(t.Value)}, nil

	case *NoneNode:
		return []value.Value{value.None}, nil

	case *ListNode:
		items := make([]value.Value, 0, len(t.Items))
		for _, item := range t.Items {
			got, err := lowerNode(item, dict, imp)
			if err != nil {
				return nil, err
			}
			items = append(items, got...)
		}
		return []value.Value{&value.List{Items: items}}, nil

	case *ArrayNode:
		return lowerArray(t, dict, imp)

	case *OperatorNode:
		c, ok := dict.Get(t.Text)
		if !ok {
			return nil, value.NameError{Name: t.Text}
		}
		return []value.Value{c}, nil

	case *DotNode:
		name := joinDots(t.Parts)
		c, ok := dict.Get(name)
		if !ok {
			return nil, value.NameError{Name: name}
		}
		return []value.Value{c}, nil

	case *CallNode:
		if t.Qualified != "" {
			if c, ok := dict.Get(t.Qualified); ok {
				return []value.Value{c}, nil
			}
		}
		if c, ok := dict.Get(t.Name); ok {
			return []value.Value{c}, nil
		}
		name := t.Name
		if t.Qualified != "" {
			name = t.Qualified
		}
		return []value.Value{value.LateBind{Name: name, Dict: dict}}, nil

	case *VarNode:
		name := t.Name
		if t.Qualified != "" {
			name = t.Qualified
		}
		existing, ok := dict.Get(name)
		var v *value.Variable
		if ok {
			v, ok = existing.(*value.Variable)
		}
		if !ok {
			v = value.NewVariable(t.Name)
			dict.Set(name, v)
		}
		return []value.Value{v.Setter()}, nil

	case *WordNode:
		name := t.Name
		if t.Qualified != "" {
			name = t.Qualified
		}
		body, err := Lower(&Program{Statements: t.Body}, dict, imp)
		if err != nil {
			return nil, err
		}
		w := value.NewWordDef(name, t.Doc, body)
		dict.Set(name, w)
		return nil, nil

	case *ImportNode:
		if err := imp.Import(t.Path, dict); err != nil {
			return nil, err
		}
		return nil, nil

	default:
		return nil, value.ParseError{Message: "lowering: unhandled node type"}
	}
}

func lowerArray(t *ArrayNode, dict *value.Dictionary, imp Importer) ([]value.Value, error) {
	if t.IsLit {
		data := make([]float64, 0, len(t.Items))
		for _, item := range t.Items {
			num, ok := item.(*NumberNode)
			if !ok {
				return nil, value.ArgumentError{Message: "array literal elements must be numeric"}
			}
			if num.IsFloat {
				data = append(data, num.FloatVal)
			} else {
				data = append(data, float64(num.IntVal))
			}
		}
		return []value.Value{value.NewVector(data)}, nil
	}
	name := "@" + t.Name
	c, ok := dict.Get(name)
	if !ok {
		return nil, value.NameError{Name: name}
	}
	return []value.Value{c}, nil
}

func joinDots(parts []string) string {
	out := parts[0]
	for _, p := range parts[1:] {
		out += "." + p
	}
	return out
}
