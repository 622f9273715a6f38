package builtins

import "github.com/boklang/bok/internal/value"

func registerComparison(d *value.Dictionary) {
	reg(d, "==", "( a b -- bool ) structural equality", cmpOp("==", func(c int, eq bool) bool { return eq }))
	reg(d, "!=", "( a b -- bool ) structural inequality", cmpOp("!=", func(c int, eq bool) bool { return !eq }))
	reg(d, "<", "( a b -- bool ) less than", cmpOp("<", func(c int, eq bool) bool { return c < 0 }))
	reg(d, "<=", "( a b -- bool ) less than or equal", cmpOp("<=", func(c int, eq bool) bool { return c <= 0 }))
	reg(d, ">", "( a b -- bool ) greater than", cmpOp(">", func(c int, eq bool) bool { return c > 0 }))
	reg(d, ">=", "( a b -- bool ) greater than or equal", cmpOp(">=", func(c int, eq bool) bool { return c >= 0 }))
}

func cmpOp(op string, pred func(c int, eq bool) bool) func(*value.Stack) error {
	return func(s *value.Stack) error {
		args, err := s.PopN(op, 2)
		if err != nil {
			return err
		}
		a, b := args[0], args[1]

		eq := value.Equal(a, b)
		if af, aOK := toFloat(a); aOK {
			if bf, bOK := toFloat(b); bOK {
				c := 0
				switch {
				case af < bf:
					c = -1
				case af > bf:
					c = 1
				}
				s.Push(value.Bool(pred(c, eq)))
				return nil
			}
		}
		if as, ok := a.(value.Str); ok {
			if bs, ok := b.(value.Str); ok {
				c := 0
				switch {
				case as < bs:
					c = -1
				case as > bs:
					c = 1
				}
				s.Push(value.Bool(pred(c, eq)))
				return nil
			}
		}
		// No total order defined across other types: only == and != are
		// meaningful, driven purely by structural equality.
		if op == "==" || op == "!=" {
			s.Push(value.Bool(pred(0, eq)))
			return nil
		}
		return value.TypeMismatchError{Op: op, Got: a, Want: "comparable"}
	}
}
