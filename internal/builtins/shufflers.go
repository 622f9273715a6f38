package builtins

import "github.com/boklang/bok/internal/value"

func registerShufflers(d *value.Dictionary) {
	reg(d, "drop", "( a -- ) discard the top", func(s *value.Stack) error {
		_, err := s.Pop()
		return err
	})
	reg(d, "drop2", "( a b -- ) discard the top two", func(s *value.Stack) error {
		_, err := s.PopN("drop2", 2)
		return err
	})
	reg(d, "dup", "( a -- a a ) duplicate the top", func(s *value.Stack) error {
		v, err := s.Top()
		if err != nil {
			return err
		}
		s.Push(v)
		return nil
	})
	reg(d, "swap", "( a b -- b a ) swap the top two", func(s *value.Stack) error {
		args, err := s.PopN("swap", 2)
		if err != nil {
			return err
		}
		s.Push(args[1])
		s.Push(args[0])
		return nil
	})
	reg(d, "over", "( a b -- a b a ) copy the second item to the top", func(s *value.Stack) error {
		a, err := s.At(1)
		if err != nil {
			return err
		}
		s.Push(a)
		return nil
	})
	reg(d, "nip", "( a b -- b ) discard the second item", func(s *value.Stack) error {
		args, err := s.PopN("nip", 2)
		if err != nil {
			return err
		}
		s.Push(args[1])
		return nil
	})
	reg(d, "tuck", "( a b -- b a b ) push a copy of the top below the second item", func(s *value.Stack) error {
		args, err := s.PopN("tuck", 2)
		if err != nil {
			return err
		}
		a, b := args[0], args[1]
		s.Push(b)
		s.Push(a)
		s.Push(b)
		return nil
	})
	reg(d, "rollup", "( a b c -- c a b ) rotate the top three upward", func(s *value.Stack) error {
		args, err := s.PopN("rollup", 3)
		if err != nil {
			return err
		}
		s.Push(args[2])
		s.Push(args[0])
		s.Push(args[1])
		return nil
	})
	reg(d, "rolldown", "( a b c -- b c a ) rotate the top three downward", func(s *value.Stack) error {
		args, err := s.PopN("rolldown", 3)
		if err != nil {
			return err
		}
		s.Push(args[1])
		s.Push(args[2])
		s.Push(args[0])
		return nil
	})
	reg(d, "rotate", "( a b c -- c b a ) swap positions -3 and -1", func(s *value.Stack) error {
		args, err := s.PopN("rotate", 3)
		if err != nil {
			return err
		}
		s.Push(args[2])
		s.Push(args[1])
		s.Push(args[0])
		return nil
	})
	reg(d, "depth", "( -- n ) push the current operand count", func(s *value.Stack) error {
		s.Push(value.Int(s.Len()))
		return nil
	})
	// clear is a direct builtin rather than a bok-level while loop: while's
	// Stop predicate runs against a copy of the current top, which means it
	// cannot observe "the stack just went empty" without a top to copy in
	// the first place.
	reg(d, "clear", "( ... -- ) discard everything on the stack", func(s *value.Stack) error {
		s.Clear()
		return nil
	})
	reg(d, ">*", "( a -- ) pop a and append it to the pending PyCall positional-args buffer", func(s *value.Stack) error {
		v, err := s.Pop()
		if err != nil {
			return err
		}
		s.AppendArg(v)
		return nil
	})
	reg(d, ">**", "( m -- ) pop a mapping and merge its entries into the pending PyCall keyword-args buffer", func(s *value.Stack) error {
		v, err := s.Pop()
		if err != nil {
			return err
		}
		m, ok := v.(*value.Mapping)
		if !ok {
			return value.TypeMismatchError{Op: ">**", Got: v, Want: "mapping"}
		}
		kv := make(map[string]value.Value, m.Len())
		for _, k := range m.Keys() {
			name, ok := k.(value.Str)
			if !ok {
				return value.TypeMismatchError{Op: ">**", Got: k, Want: "str key"}
			}
			val, _ := m.Get(k)
			kv[string(name)] = val
		}
		s.MergeKwargs(kv)
		return nil
	})
	reg(d, "listn", "( xn ... x1 n -- list ) pop n, then n more items, bottom-first", func(s *value.Stack) error {
		nv, err := s.Pop()
		if err != nil {
			return err
		}
		n, ok := nv.(value.Int)
		if !ok {
			return value.TypeMismatchError{Op: "listn", Got: nv, Want: "int"}
		}
		items, err := s.PopN("listn", int(n))
		if err != nil {
			return err
		}
		s.Push(&value.List{Items: items})
		return nil
	})
}
