package builtins

import (
	"strconv"

	"github.com/boklang/bok/internal/value"
)

func registerCasts(d *value.Dictionary) {
	reg(d, "bool", "( a -- bool ) truthiness cast", func(s *value.Stack) error {
		v, err := s.Pop()
		if err != nil {
			return err
		}
		s.Push(value.Bool(value.Truthy(v)))
		return nil
	})
	reg(d, "int", "( a -- int ) numeric or string cast to int", func(s *value.Stack) error {
		v, err := s.Pop()
		if err != nil {
			return err
		}
		switch t := v.(type) {
		case value.Int:
			s.Push(t)
		case value.Float:
			s.Push(value.Int(int64(t)))
		case value.Bool:
			if t {
				s.Push(value.Int(1))
			} else {
				s.Push(value.Int(0))
			}
		case value.Str:
			n, err := strconv.ParseInt(string(t), 10, 64)
			if err != nil {
				return value.ArgumentError{Message: "cannot parse " + string(t) + " as int"}
			}
			s.Push(value.Int(n))
		default:
			return value.TypeMismatchError{Op: "int", Got: v, Want: "numeric or str"}
		}
		return nil
	})
	reg(d, "float", "( a -- float ) numeric or string cast to float", func(s *value.Stack) error {
		v, err := s.Pop()
		if err != nil {
			return err
		}
		switch t := v.(type) {
		case value.Int:
			s.Push(value.Float(t))
		case value.Float:
			s.Push(t)
		case value.Str:
			f, err := strconv.ParseFloat(string(t), 64)
			if err != nil {
				return value.ArgumentError{Message: "cannot parse " + string(t) + " as float"}
			}
			s.Push(value.Float(f))
		default:
			return value.TypeMismatchError{Op: "float", Got: v, Want: "numeric or str"}
		}
		return nil
	})
	reg(d, "str", "( a -- str ) display-form string cast", func(s *value.Stack) error {
		v, err := s.Pop()
		if err != nil {
			return err
		}
		s.Push(value.Str(value.Display(v)))
		return nil
	})
	reg(d, "set", "( a -- set ) cast an iterable to a Set", func(s *value.Stack) error {
		v, err := s.Pop()
		if err != nil {
			return err
		}
		items, ok := value.Iterable(v)
		if !ok {
			return value.TypeMismatchError{Op: "set", Got: v, Want: "iterable"}
		}
		s.Push(value.NewSet(items...))
		return nil
	})
	reg(d, "tuple", "( a -- tuple ) cast an iterable to a Tuple", func(s *value.Stack) error {
		v, err := s.Pop()
		if err != nil {
			return err
		}
		items, ok := value.Iterable(v)
		if !ok {
			return value.TypeMismatchError{Op: "tuple", Got: v, Want: "iterable"}
		}
		s.Push(value.Tuple(items))
		return nil
	})
	reg(d, "list", "( a -- list ) cast an iterable to a List", func(s *value.Stack) error {
		v, err := s.Pop()
		if err != nil {
			return err
		}
		items, ok := value.Iterable(v)
		if !ok {
			return value.TypeMismatchError{Op: "list", Got: v, Want: "iterable"}
		}
		s.Push(&value.List{Items: items})
		return nil
	})
}
