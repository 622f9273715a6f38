package builtins

import (
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/boklang/bok/internal/value"
)

// registerJSON wires the JSON bridge: to_json/from_json convert between a
// bok Value and JSON text, json_get/json_set query and patch JSON text by
// dot-path without a full decode round-trip.
func registerJSON(d *value.Dictionary) {
	reg(d, "to_json", "( a -- str ) encode a as JSON text", func(s *value.Stack) error {
		v, err := s.Pop()
		if err != nil {
			return err
		}
		text, err := encodeJSON(v)
		if err != nil {
			return err
		}
		s.Push(value.Str(text))
		return nil
	})
	reg(d, "from_json", "( str -- a ) decode JSON text into a value", func(s *value.Stack) error {
		v, err := s.Pop()
		if err != nil {
			return err
		}
		str, ok := v.(value.Str)
		if !ok {
			return value.TypeMismatchError{Op: "from_json", Got: v, Want: "str"}
		}
		if !gjson.Valid(string(str)) {
			return value.ArgumentError{Message: "from_json: invalid JSON text"}
		}
		s.Push(decodeJSON(gjson.Parse(string(str))))
		return nil
	})
	reg(d, "json_get", "( str path -- str ) look up a dot-path in JSON text", func(s *value.Stack) error {
		args, err := s.PopN("json_get", 2)
		if err != nil {
			return err
		}
		doc, ok := args[0].(value.Str)
		if !ok {
			return value.TypeMismatchError{Op: "json_get", Got: args[0], Want: "str"}
		}
		path, ok := args[1].(value.Str)
		if !ok {
			return value.TypeMismatchError{Op: "json_get", Got: args[1], Want: "str"}
		}
		res := gjson.Get(string(doc), string(path))
		if !res.Exists() {
			return value.ArgumentError{Message: "json_get: path not found: " + string(path)}
		}
		s.Push(decodeJSON(res))
		return nil
	})
	reg(d, "json_set", "( str path value -- str ) set a dot-path in JSON text, returning the patched text", func(s *value.Stack) error {
		args, err := s.PopN("json_set", 3)
		if err != nil {
			return err
		}
		doc, ok := args[0].(value.Str)
		if !ok {
			return value.TypeMismatchError{Op: "json_set", Got: args[0], Want: "str"}
		}
		path, ok := args[1].(value.Str)
		if !ok {
			return value.TypeMismatchError{Op: "json_set", Got: args[1], Want: "str"}
		}
		out, err := sjson.Set(string(doc), string(path), jsonScalar(args[2]))
		if err != nil {
			return value.ArgumentError{Message: "json_set: " + err.Error()}
		}
		s.Push(value.Str(out))
		return nil
	})
}

// jsonScalar reduces a Value to something sjson.Set can marshal directly.
// Compound values are round-tripped through encodeJSON/gjson so nested
// structure is preserved rather than stringified.
func jsonScalar(v value.Value) interface{} {
	switch t := v.(type) {
	case value.Int:
		return int64(t)
	case value.Float:
		return float64(t)
	case value.Bool:
		return bool(t)
	case value.Str:
		return string(t)
	case value.NoneValue:
		return nil
	default:
		text, err := encodeJSON(v)
		if err != nil {
			return value.Display(v)
		}
		return gjson.Parse(text).Value()
	}
}

func encodeJSON(v value.Value) (string, error) {
	switch t := v.(type) {
	case value.Int:
		return strconv.FormatInt(int64(t), 10), nil
	case value.Float:
		return strconv.FormatFloat(float64(t), 'g', -1, 64), nil
	case value.Bool:
		return strconv.FormatBool(bool(t)), nil
	case value.NoneValue:
		return "null", nil
	case value.Str:
		out, err := sjson.Set("", "x", string(t))
		if err != nil {
			return "", err
		}
		return gjson.Get(out, "x").Raw, nil
	case *value.List:
		return encodeSeq(t.Items)
	case value.Tuple:
		return encodeSeq([]value.Value(t))
	case *value.Set:
		return encodeSeq(t.Items())
	case *value.Mapping:
		doc := "{}"
		var err error
		for _, k := range t.Keys() {
			val, _ := t.Get(k)
			raw, rerr := encodeJSON(val)
			if rerr != nil {
				return "", rerr
			}
			doc, err = sjson.SetRaw(doc, value.Display(k), raw)
			if err != nil {
				return "", err
			}
		}
		return doc, nil
	default:
		return "", value.TypeMismatchError{Op: "to_json", Got: v, Want: "JSON-encodable value"}
	}
}

func encodeSeq(items []value.Value) (string, error) {
	doc := "[]"
	for _, it := range items {
		raw, err := encodeJSON(it)
		if err != nil {
			return "", err
		}
		var err2 error
		doc, err2 = sjson.SetRaw(doc, "-1", raw)
		if err2 != nil {
			return "", err2
		}
	}
	return doc, nil
}

func decodeJSON(res gjson.Result) value.Value {
	switch res.Type {
	case gjson.Null:
		return value.NoneValue{}
	case gjson.False:
		return value.Bool(false)
	case gjson.True:
		return value.Bool(true)
	case gjson.Number:
		if res.Raw != "" && !containsFloatMarker(res.Raw) {
			if n, err := strconv.ParseInt(res.Raw, 10, 64); err == nil {
				return value.Int(n)
			}
		}
		return value.Float(res.Float())
	case gjson.String:
		return value.Str(res.String())
	case gjson.JSON:
		if res.IsArray() {
			var items []value.Value
			res.ForEach(func(_, v gjson.Result) bool {
				items = append(items, decodeJSON(v))
				return true
			})
			return &value.List{Items: items}
		}
		m := value.NewMapping()
		res.ForEach(func(k, v gjson.Result) bool {
			m.Set(value.Str(k.String()), decodeJSON(v))
			return true
		})
		return m
	default:
		return value.NoneValue{}
	}
}

func containsFloatMarker(raw string) bool {
	for _, r := range raw {
		if r == '.' || r == 'e' || r == 'E' {
			return true
		}
	}
	return false
}
