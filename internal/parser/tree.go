// Package parser turns a lexer.Token stream into a flat operation sequence:
// a parse tree (this file), a two-pass scope resolver (scope.go), and an
// AST-lowering pass that builds the Dictionary (lower.go).
package parser

import "github.com/boklang/bok/internal/source"

// Node is one parse-tree element.
type Node interface {
	Position() source.Location
}

type base struct{ Pos source.Location }

func (b base) Position() source.Location { return b.Pos }

// NumberNode is an integer or float literal.
type NumberNode struct {
	base
	IsFloat  bool
	IntVal   int64
	FloatVal float64
}

// StringNode is a string literal, decoded, with the affixes it was written
// with. A docstring in a word's doc position becomes the WordNode's Doc in
// the parser; lowering pushes every StringNode's Value whatever its affixes.
type StringNode struct {
	base
	Value   string
	Affixes string
}

// BoolNode is True or False.
type BoolNode struct {
	base
	Value bool
}

// NoneNode is the None literal.
type NoneNode struct{ base }

// ListNode is a `[...]` literal; its Items may themselves include
// Callables once lowered, which is what makes a List double as a
// Quotation.
type ListNode struct {
	base
	Items []Node
}

// CallNode is a bare identifier, resolved during scoping to a Qualified
// name when it refers to an enclosing word's local definition.
type CallNode struct {
	base
	Name      string
	Qualified string // set by the scope resolver if resolved
}

// VarNode is a `:x` occurrence — the assignment half of a variable.
type VarNode struct {
	base
	Name      string
	Qualified string
}

// DotNode is a `a.b.c` qualified reference, resolved directly against the
// Dictionary at lowering time.
type DotNode struct {
	base
	Parts []string
}

// OperatorNode is one of the symbolic builtins.
type OperatorNode struct {
	base
	Text string
}

// ArrayNode is an `@name` or `@[...]` array form.
type ArrayNode struct {
	base
	Name  string  // set for @name
	Items []Node  // set for @[...]
	IsLit bool
}

// WordNode is a `( name doc? body... )` definition.
type WordNode struct {
	base
	Name      string
	Qualified string
	Doc       string
	Body      []Node
}

// ImportNode is an `import "path"` statement.
type ImportNode struct {
	base
	Path string
}

// Program is the full parse tree for one source file.
type Program struct {
	Statements []Node
}
