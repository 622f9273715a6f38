package builtins_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boklang/bok/internal/builtins"
	"github.com/boklang/bok/internal/value"
)

func TestAppendArgsStagesPositionalBuffer(t *testing.T) {
	d := builtins.New(nil, nil)
	s := value.NewStack()
	s.Push(value.Int(1))
	call(t, d, s, ">*")
	s.Push(value.Int(2))
	call(t, d, s, ">*")
	assert.Equal(t, []value.Value{value.Int(1), value.Int(2)}, s.Args)
	assert.True(t, s.ArgsLoaded())
}

func TestAppendKwargsMergesMapping(t *testing.T) {
	d := builtins.New(nil, nil)
	s := value.NewStack()
	s.Push(value.Str(`{"name": "bok"}`))
	call(t, d, s, "from_json")
	call(t, d, s, ">**")
	assert.Equal(t, value.Str("bok"), s.Kwargs["name"])
	assert.True(t, s.ArgsLoaded())
}

func TestAppendKwargsRejectsNonMapping(t *testing.T) {
	d := builtins.New(nil, nil)
	s := value.NewStack()
	s.Push(value.Int(7))
	require.Error(t, s.CallQuote([]value.Value{mustGet(t, d, ">**")}))
}

func TestTplHostCallConsumesLoadedArgs(t *testing.T) {
	d := builtins.New(nil, nil)
	s := value.NewStack()

	s.Push(value.Str("hello, {name}!"))
	call(t, d, s, ">*")

	s.Push(value.Str(`{"name": "bok"}`))
	call(t, d, s, "from_json")
	call(t, d, s, ">**")

	call(t, d, s, "tpl")

	out, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, value.Str("hello, bok!"), out)
	assert.False(t, s.ArgsLoaded())
}

func mustGet(t *testing.T, d *value.Dictionary, name string) value.Value {
	t.Helper()
	c, ok := d.Get(name)
	require.Truef(t, ok, "no such word: %s", name)
	return c
}
