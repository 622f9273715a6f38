package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/boklang/bok/internal/value"
)

func TestErrorMessages(t *testing.T) {
	assert.Contains(t, value.ParseError{Pos: "f.bok:1:2", Message: "unexpected token"}.Error(), "f.bok:1:2")
	assert.Contains(t, value.NameError{Name: "foo"}.Error(), "foo")
	assert.Contains(t, value.StackUnderflowError{Op: "add", Need: 2, Got: 0}.Error(), "add")
	assert.Contains(t, value.TypeMismatchError{Op: "add", Got: value.Str("x"), Want: "int"}.Error(), "add")
	assert.Contains(t, value.ArgumentError{Message: "bad arity"}.Error(), "bad arity")
	assert.Equal(t, "assertion failure", value.AssertionError{}.Error())
	assert.Equal(t, "boom", value.RaisedError{Message: "boom"}.Error())
	assert.NotEmpty(t, value.RaisedError{}.Error())
}
