// Package builtins registers every primitive word and combinator into a
// fresh Dictionary.
package builtins

import (
	"io"

	"github.com/boklang/bok/internal/value"
)

// New returns a Dictionary seeded with the full builtin table: arithmetic,
// comparison, bitwise, logical, casts, stack shufflers (including the
// `>*`/`>**` PyCall arg collectors), I/O, sequence operations, scalar
// operations, control words, combinators, the `help` word, and the JSON,
// array, and host-call (PyCall) bridges. out/in back the `print`/
// `println`/`stack`/`input` words.
func New(out io.Writer, in io.Reader) *value.Dictionary {
	d := value.NewDictionary()
	registerArithmetic(d)
	registerComparison(d)
	registerBitwise(d)
	registerLogical(d)
	registerCasts(d)
	registerShufflers(d)
	registerIO(d, out, in)
	registerSequence(d)
	registerScalars(d)
	registerControl(d, out)
	registerCombinators(d)
	registerJSON(d)
	registerArrays(d)
	registerHostCalls(d)
	return d
}

func reg(d *value.Dictionary, name, doc string, fn func(s *value.Stack) error) {
	d.Set(name, value.NewBuiltin(name, doc, fn))
}

// binaryInt pops two operands, requiring both to be Int, and pushes the
// result of applying fn.
func binaryInt(op string, fn func(a, b int64) (value.Value, error)) func(*value.Stack) error {
	return func(s *value.Stack) error {
		args, err := s.PopN(op, 2)
		if err != nil {
			return err
		}
		a, ok := args[0].(value.Int)
		if !ok {
			return value.TypeMismatchError{Op: op, Got: args[0], Want: "int"}
		}
		b, ok := args[1].(value.Int)
		if !ok {
			return value.TypeMismatchError{Op: op, Got: args[1], Want: "int"}
		}
		out, err := fn(int64(a), int64(b))
		if err != nil {
			return err
		}
		s.Push(out)
		return nil
	}
}
