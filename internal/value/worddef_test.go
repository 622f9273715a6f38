package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boklang/bok/internal/value"
)

func TestVariableGetSetRoundTrip(t *testing.T) {
	v := value.NewVariable("x")
	s := value.NewStack()

	require.NoError(t, v.Call(s)) // GET pushes None initially
	top, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, value.None, top)

	s.Push(value.Int(42))
	require.NoError(t, v.Setter().Call(s)) // SET consumes top-of-stack

	require.NoError(t, v.Call(s))
	top, err = s.Pop()
	require.NoError(t, err)
	assert.Equal(t, value.Int(42), top)
}

func TestVariableClearResetsToNone(t *testing.T) {
	v := value.NewVariable("x")
	v.Val = value.Int(7)
	v.Clear()
	assert.Equal(t, value.None, v.Val)
}

func TestLateBindResolvesAtCallTime(t *testing.T) {
	d := value.NewDictionary()
	lb := value.LateBind{Name: "later", Dict: d}

	s := value.NewStack()
	err := lb.Call(s)
	var nameErr value.NameError
	require.ErrorAs(t, err, &nameErr)

	d.Set("later", value.NewBuiltin("later", "", func(s *value.Stack) error {
		s.Push(value.Int(1))
		return nil
	}))

	require.NoError(t, lb.Call(s))
	top, err := s.Top()
	require.NoError(t, err)
	assert.Equal(t, value.Int(1), top)
}

func TestWordDefDiscoversOwnedVariables(t *testing.T) {
	v := value.NewVariable("acc")
	w := value.NewWordDef("counter", "", []value.Value{value.Int(0), v.Setter()})
	require.Len(t, w.Vars, 1)
	assert.Same(t, v, w.Vars[0])
}

func TestWordDefClearsVariablesOnNormalReturn(t *testing.T) {
	v := value.NewVariable("acc")
	w := value.NewWordDef("setit", "", []value.Value{value.Int(5), v.Setter()})

	s := value.NewStack()
	require.NoError(t, w.Call(s))
	assert.Equal(t, value.None, v.Val)
}

func TestWordDefRecoversWordReturnSignal(t *testing.T) {
	v := value.NewVariable("acc")
	returner := value.NewBuiltin("return", "", func(s *value.Stack) error {
		panic(value.WordReturnSignal{})
	})
	w := value.NewWordDef("early", "", []value.Value{
		value.Int(1), v.Setter(),
		returner,
		value.Int(999), v.Setter(), // unreachable after return
	})

	s := value.NewStack()
	require.NoError(t, w.Call(s))
	assert.Equal(t, value.None, v.Val)
}

func TestWordDefPropagatesExitSignal(t *testing.T) {
	exit := value.NewBuiltin("exit", "", func(s *value.Stack) error {
		panic(value.ExitSignal{Code: 2})
	})
	w := value.NewWordDef("bail", "", []value.Value{exit})

	s := value.NewStack()
	assert.Panics(t, func() {
		_ = w.Call(s)
	})
}

func TestDocstringLookup(t *testing.T) {
	b := value.NewBuiltin("dup", "duplicate the top of stack", noop)
	doc, ok := value.Docstring(b)
	require.True(t, ok)
	assert.Equal(t, "duplicate the top of stack", doc)

	_, ok = value.Docstring(value.NewVariable("x"))
	assert.False(t, ok)
}
