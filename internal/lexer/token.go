// Package lexer tokenizes bok source text into the stream the parser
// consumes, normalizing identifiers to NFC so that visually identical
// names typed with different Unicode compositions compare equal.
package lexer

import "github.com/boklang/bok/internal/source"

// Kind classifies a Token.
type Kind int

const (
	EOF Kind = iota
	NUMBER
	STRING
	DOCSTRING
	IDENT
	TRUE
	FALSE
	NONE
	IMPORT
	LPAREN
	RPAREN
	LBRACK
	RBRACK
	COLON
	DOT
	ARRAY // @ident, @[...]
	OPERATOR
)

var kindNames = map[Kind]string{
	EOF:       "EOF",
	NUMBER:    "NUMBER",
	STRING:    "STRING",
	DOCSTRING: "DOCSTRING",
	IDENT:     "IDENT",
	TRUE:      "True",
	FALSE:     "False",
	NONE:      "None",
	IMPORT:    "import",
	LPAREN:    "(",
	RPAREN:    ")",
	LBRACK:    "[",
	RBRACK:    "]",
	COLON:     ":",
	DOT:       ".",
	ARRAY:     "@",
	OPERATOR:  "OPERATOR",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "UNKNOWN"
}

// Token is one lexical unit with its source position.
type Token struct {
	Kind Kind
	Text string
	Pos  source.Location

	// Numeric forms carry their parsed value so the parser never
	// re-parses number syntax.
	IntValue   int64
	FloatValue float64
	IsFloat    bool

	// String forms carry their decoded content plus the affixes seen
	// (combinations of 'd', 'b', 'r').
	StringValue string
	Affixes     string
}

// operators is every symbolic builtin recognized by the lexer. The lexer
// only tests membership and prefixes against it, so entry order does not
// matter.
var operators = []string{
	"**", "//", "==", "!=", "<=", ">=", "<<", ">>", "++", "--", ">**", ">*",
	"+", "-", "*", "/", "%", "<", ">", "~", "&", "|", "^",
}
