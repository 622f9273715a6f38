package builtins

import "github.com/boklang/bok/internal/value"

func registerLogical(d *value.Dictionary) {
	reg(d, "not", "( a -- bool ) logical negation", func(s *value.Stack) error {
		v, err := s.Pop()
		if err != nil {
			return err
		}
		s.Push(value.Bool(!value.Truthy(v)))
		return nil
	})
	// and/or are eager here: both operands are already on the stack by the
	// time a binary word runs, so true laziness (short-circuiting before
	// the second operand is even computed) belongs to the `if`/`when`
	// family of combinators, not to these two words.
	reg(d, "and", "( a b -- a if a falsy else b )", func(s *value.Stack) error {
		args, err := s.PopN("and", 2)
		if err != nil {
			return err
		}
		if !value.Truthy(args[0]) {
			s.Push(args[0])
			return nil
		}
		s.Push(args[1])
		return nil
	})
	reg(d, "or", "( a b -- a if a truthy else b )", func(s *value.Stack) error {
		args, err := s.PopN("or", 2)
		if err != nil {
			return err
		}
		if value.Truthy(args[0]) {
			s.Push(args[0])
			return nil
		}
		s.Push(args[1])
		return nil
	})
	reg(d, "xor", "( a b -- bool )", func(s *value.Stack) error {
		args, err := s.PopN("xor", 2)
		if err != nil {
			return err
		}
		s.Push(value.Bool(value.Truthy(args[0]) != value.Truthy(args[1])))
		return nil
	})
}
