package value_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boklang/bok/internal/value"
)

func TestPyCallUsesLoadedArgsBuffer(t *testing.T) {
	s := value.NewStack()
	s.Push(value.Int(99)) // should be ignored, args buffer takes priority

	sum := &value.PyCall{
		Name: "sum2",
		Fn: func(args []value.Value, kwargs map[string]value.Value) (value.Value, error) {
			a := args[0].(value.Int)
			b := args[1].(value.Int)
			return a + b, nil
		},
	}
	s.LoadArgs([]value.Value{value.Int(2), value.Int(3)}, nil)

	require.NoError(t, sum.Call(s))
	assert.False(t, s.ArgsLoaded())

	top, err := s.Top()
	require.NoError(t, err)
	assert.Equal(t, value.Int(5), top)
}

func TestPyCallUnpacksIterableTop(t *testing.T) {
	s := value.NewStack()
	s.Push(value.NewList(value.Int(1), value.Int(2), value.Int(3)))

	count := &value.PyCall{
		Name: "count",
		Fn: func(args []value.Value, kwargs map[string]value.Value) (value.Value, error) {
			return value.Int(len(args)), nil
		},
	}
	require.NoError(t, count.Call(s))

	top, err := s.Top()
	require.NoError(t, err)
	assert.Equal(t, value.Int(3), top)
}

func TestPyCallPassesScalarWhole(t *testing.T) {
	s := value.NewStack()
	s.Push(value.Int(7))

	identity := &value.PyCall{
		Name: "identity",
		Fn: func(args []value.Value, kwargs map[string]value.Value) (value.Value, error) {
			require.Len(t, args, 1)
			return args[0], nil
		},
	}
	require.NoError(t, identity.Call(s))
	top, err := s.Top()
	require.NoError(t, err)
	assert.Equal(t, value.Int(7), top)
}

func TestArrayWrapperElementwiseOnVector(t *testing.T) {
	s := value.NewStack()
	s.Push(value.NewVector([]float64{0, math.Pi / 2}))

	sin := &value.ArrayWrapper{Name: "sin", Fn: math.Sin}
	require.NoError(t, sin.Call(s))

	top, err := s.Top()
	require.NoError(t, err)
	vec, ok := top.(*value.Vector)
	require.True(t, ok)
	assert.InDelta(t, 0, vec.Data[0], 1e-9)
	assert.InDelta(t, 1, vec.Data[1], 1e-9)
}

func TestArrayWrapperOnScalar(t *testing.T) {
	s := value.NewStack()
	s.Push(value.Float(4))

	sqrt := &value.ArrayWrapper{Name: "sqrt", Fn: math.Sqrt}
	require.NoError(t, sqrt.Call(s))

	top, err := s.Top()
	require.NoError(t, err)
	assert.Equal(t, value.Float(2), top)
}

func TestArrayWrapperRejectsNonNumeric(t *testing.T) {
	s := value.NewStack()
	s.Push(value.Str("nope"))

	sqrt := &value.ArrayWrapper{Name: "sqrt", Fn: math.Sqrt}
	err := sqrt.Call(s)
	require.Error(t, err)
}
