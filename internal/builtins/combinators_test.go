package builtins_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boklang/bok/internal/builtins"
	"github.com/boklang/bok/internal/value"
)

func TestBiRunsBothQuotesOnTheRealStack(t *testing.T) {
	d := builtins.New(nil, nil)
	add, _ := d.Get("+")
	sub, _ := d.Get("-")

	s := value.NewStack()
	s.PushAll(value.Int(10), value.Int(5))
	s.Push(quote(add))
	s.Push(quote(sub))
	call(t, d, s, "bi")

	assert.Equal(t, []value.Value{value.Int(10)}, s.Snapshot())
}

func TestTriRunsEachQuoteOnTheRealStack(t *testing.T) {
	d := builtins.New(nil, nil)
	add, _ := d.Get("+")
	sub, _ := d.Get("-")
	mul, _ := d.Get("*")

	s := value.NewStack()
	s.PushAll(value.Int(10), value.Int(5))
	s.Push(quote(add))
	s.Push(quote(sub))
	s.Push(quote(mul))
	call(t, d, s, "tri")

	assert.Equal(t, []value.Value{value.Int(50)}, s.Snapshot())
}

func TestCleaveAppliesEachQuoteToItsOwnValueOnTheRealStack(t *testing.T) {
	d := builtins.New(nil, nil)
	dup, _ := d.Get("dup")
	incr, _ := d.Get("++")

	s := value.NewStack()
	s.PushAll(value.Int(10), value.Int(5))
	s.Push(quote(dup, dup))
	s.Push(quote(incr))
	call(t, d, s, "cleave")

	assert.Equal(t, []value.Value{value.Int(10), value.Int(10), value.Int(10), value.Int(6)}, s.Snapshot())
}

func TestBiUnderlyingQuoteCanReadBelowTheSharedValue(t *testing.T) {
	d := builtins.New(nil, nil)
	add, _ := d.Get("+")
	drop, _ := d.Get("drop")

	s := value.NewStack()
	s.Push(value.Int(100)) // sits below the shared value; q1 reaches past v to use it
	s.Push(value.Int(10))
	s.Push(quote(add))
	s.Push(quote(drop))
	call(t, d, s, "bi")

	require.Equal(t, []value.Value{value.Int(110)}, s.Snapshot())
}
