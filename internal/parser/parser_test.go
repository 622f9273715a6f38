package parser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boklang/bok/internal/lexer"
	"github.com/boklang/bok/internal/parser"
	"github.com/boklang/bok/internal/source"
)

func parse(t *testing.T, src string) *parser.Program {
	t.Helper()
	var in source.Input
	in.Push(source.NamedReader{Reader: strings.NewReader(src), Name_: "<test>"})
	lex := lexer.New(&in)
	p := parser.New(lex)
	prog, err := p.ParseProgram()
	require.NoError(t, err)
	return prog
}

func TestParseNumberAndOperator(t *testing.T) {
	prog := parse(t, "2 3 +")
	require.Len(t, prog.Statements, 3)
	num, ok := prog.Statements[0].(*parser.NumberNode)
	require.True(t, ok)
	assert.Equal(t, int64(2), num.IntVal)
	op, ok := prog.Statements[2].(*parser.OperatorNode)
	require.True(t, ok)
	assert.Equal(t, "+", op.Text)
}

func TestParseWordDefinitionWithDocstring(t *testing.T) {
	prog := parse(t, `(square d"( n -- n*n ) square a number" dup *)`)
	require.Len(t, prog.Statements, 1)
	word, ok := prog.Statements[0].(*parser.WordNode)
	require.True(t, ok)
	assert.Equal(t, "square", word.Name)
	assert.Contains(t, word.Doc, "square a number")
	require.Len(t, word.Body, 2)
}

func TestParseListLiteral(t *testing.T) {
	prog := parse(t, "[1 2 3]")
	require.Len(t, prog.Statements, 1)
	list, ok := prog.Statements[0].(*parser.ListNode)
	require.True(t, ok)
	assert.Len(t, list.Items, 3)
}

func TestParseImportStatement(t *testing.T) {
	prog := parse(t, `import "std"`)
	require.Len(t, prog.Statements, 1)
	imp, ok := prog.Statements[0].(*parser.ImportNode)
	require.True(t, ok)
	assert.Equal(t, "std", imp.Path)
}

func TestParseDottedCall(t *testing.T) {
	prog := parse(t, "std.second")
	require.Len(t, prog.Statements, 1)
	dot, ok := prog.Statements[0].(*parser.DotNode)
	require.True(t, ok)
	assert.Equal(t, []string{"std", "second"}, dot.Parts)
}

func TestParseUnterminatedWordErrors(t *testing.T) {
	var in source.Input
	in.Push(source.NamedReader{Reader: strings.NewReader("(broken dup"), Name_: "<test>"})
	lex := lexer.New(&in)
	p := parser.New(lex)
	_, err := p.ParseProgram()
	require.Error(t, err)
}

func TestResolveScopesCanRunTwice(t *testing.T) {
	prog := parse(t, `(adder :n dup +) 2 adder`)
	require.NotPanics(t, func() {
		parser.ResolveScopes(prog)
		parser.ResolveScopes(prog)
	})
}
