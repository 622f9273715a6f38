package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/boklang/bok/internal/value"
)

func TestReprPrimitives(t *testing.T) {
	assert.Equal(t, "42", value.Int(42).Repr())
	assert.Equal(t, "3.0", value.Float(3).Repr())
	assert.Equal(t, "3.5", value.Float(3.5).Repr())
	assert.Equal(t, "True", value.Bool(true).Repr())
	assert.Equal(t, "False", value.Bool(false).Repr())
	assert.Equal(t, `"hi"`, value.Str("hi").Repr())
	assert.Equal(t, "None", value.None.Repr())
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "int", value.TypeName(value.Int(1)))
	assert.Equal(t, "float", value.TypeName(value.Float(1)))
	assert.Equal(t, "bool", value.TypeName(value.Bool(true)))
	assert.Equal(t, "str", value.TypeName(value.Str("x")))
	assert.Equal(t, "NoneType", value.TypeName(value.None))
	assert.Equal(t, "list", value.TypeName(value.NewList()))
}

func TestTruthy(t *testing.T) {
	assert.False(t, value.Truthy(value.None))
	assert.False(t, value.Truthy(value.Bool(false)))
	assert.False(t, value.Truthy(value.Int(0)))
	assert.False(t, value.Truthy(value.Str("")))
	assert.False(t, value.Truthy(value.NewList()))
	assert.True(t, value.Truthy(value.Int(1)))
	assert.True(t, value.Truthy(value.Str("x")))
	assert.True(t, value.Truthy(value.NewList(value.Int(1))))
}

func TestEqualCrossNumeric(t *testing.T) {
	assert.True(t, value.Equal(value.Int(2), value.Float(2)))
	assert.False(t, value.Equal(value.Int(2), value.Float(2.5)))
	assert.True(t, value.Equal(value.Str("a"), value.Str("a")))
	assert.False(t, value.Equal(value.Int(1), value.Str("1")))
}
