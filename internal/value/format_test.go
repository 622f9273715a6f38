package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/boklang/bok/internal/value"
)

func TestDisplayUnquotesStrings(t *testing.T) {
	assert.Equal(t, "hello", value.Display(value.Str("hello")))
	assert.Equal(t, "42", value.Display(value.Int(42)))
}

func TestFormatStackEmpty(t *testing.T) {
	assert.Equal(t, "(empty)", value.FormatStack(nil))
}

func TestFormatStackBottomToTop(t *testing.T) {
	got := value.FormatStack([]value.Value{value.Int(1), value.Int(2)})
	assert.Equal(t, "1\n2", got)
}

func TestDedentStripsCommonIndent(t *testing.T) {
	doc := "\n    first line\n    second line\n"
	assert.Equal(t, "first line\nsecond line", value.Dedent(doc))
}

func TestDedentIgnoresBlankLinesWhenMeasuring(t *testing.T) {
	doc := "  a\n\n  b\n"
	assert.Equal(t, "a\n\nb", value.Dedent(doc))
}

func TestDedentNoCommonIndent(t *testing.T) {
	assert.Equal(t, "flush", value.Dedent("flush"))
}
