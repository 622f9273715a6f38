package builtins

import (
	"math"

	"github.com/boklang/bok/internal/value"
)

func registerArithmetic(d *value.Dictionary) {
	reg(d, "+", "( a b -- a+b ) add or concatenate depending on operand type", opAdd)
	reg(d, "-", "( a b -- a-b ) numeric subtraction", opSub)
	reg(d, "*", "( a b -- a*b ) multiply, or repeat a sequence b times", opMul)
	reg(d, "/", "( a b -- a/b ) true division, always float", opDiv)
	reg(d, "//", "( a b -- a//b ) floor division", opFloorDiv)
	reg(d, "%", "( a b -- a%b ) modulo", opMod)
	reg(d, "**", "( a b -- a**b ) exponentiation", opPow)
	reg(d, "++", "( a -- a+1 ) increment", opIncr)
	reg(d, "--", "( a -- a-1 ) decrement", opDecr)
}

func numericPair(op string, a, b value.Value) (af, bf float64, bothInt bool, err error) {
	ai, aIsInt := a.(value.Int)
	bi, bIsInt := b.(value.Int)
	if aIsInt && bIsInt {
		return float64(ai), float64(bi), true, nil
	}
	afv, aOK := toFloat(a)
	bfv, bOK := toFloat(b)
	if !aOK {
		return 0, 0, false, value.TypeMismatchError{Op: op, Got: a, Want: "numeric"}
	}
	if !bOK {
		return 0, 0, false, value.TypeMismatchError{Op: op, Got: b, Want: "numeric"}
	}
	return afv, bfv, false, nil
}

func toFloat(v value.Value) (float64, bool) {
	switch t := v.(type) {
	case value.Int:
		return float64(t), true
	case value.Float:
		return float64(t), true
	case value.Bool:
		if t {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

func opAdd(s *value.Stack) error {
	args, err := s.PopN("+", 2)
	if err != nil {
		return err
	}
	a, b := args[0], args[1]

	if as, ok := a.(value.Str); ok {
		bs, ok := b.(value.Str)
		if !ok {
			return value.TypeMismatchError{Op: "+", Got: b, Want: "str"}
		}
		s.Push(value.Str(string(as) + string(bs)))
		return nil
	}
	if al, ok := a.(*value.List); ok {
		bl, ok := b.(*value.List)
		if !ok {
			return value.TypeMismatchError{Op: "+", Got: b, Want: "list"}
		}
		out := make([]value.Value, 0, len(al.Items)+len(bl.Items))
		out = append(out, al.Items...)
		out = append(out, bl.Items...)
		s.Push(&value.List{Items: out})
		return nil
	}
	if at, ok := a.(value.Tuple); ok {
		bt, ok := b.(value.Tuple)
		if !ok {
			return value.TypeMismatchError{Op: "+", Got: b, Want: "tuple"}
		}
		out := make(value.Tuple, 0, len(at)+len(bt))
		out = append(out, at...)
		out = append(out, bt...)
		s.Push(out)
		return nil
	}

	af, bf, bothInt, err := numericPair("+", a, b)
	if err != nil {
		return err
	}
	if bothInt {
		s.Push(value.Int(int64(af) + int64(bf)))
		return nil
	}
	s.Push(value.Float(af + bf))
	return nil
}

func opSub(s *value.Stack) error {
	args, err := s.PopN("-", 2)
	if err != nil {
		return err
	}
	af, bf, bothInt, err := numericPair("-", args[0], args[1])
	if err != nil {
		return err
	}
	if bothInt {
		s.Push(value.Int(int64(af) - int64(bf)))
		return nil
	}
	s.Push(value.Float(af - bf))
	return nil
}

func opMul(s *value.Stack) error {
	args, err := s.PopN("*", 2)
	if err != nil {
		return err
	}
	a, b := args[0], args[1]

	if as, ok := a.(value.Str); ok {
		if n, ok := b.(value.Int); ok {
			s.Push(value.Str(repeatStr(string(as), int64(n))))
			return nil
		}
	}
	if al, ok := a.(*value.List); ok {
		if n, ok := b.(value.Int); ok {
			s.Push(&value.List{Items: repeatItems(al.Items, int64(n))})
			return nil
		}
	}
	if at, ok := a.(value.Tuple); ok {
		if n, ok := b.(value.Int); ok {
			s.Push(value.Tuple(repeatItems(at, int64(n))))
			return nil
		}
	}

	af, bf, bothInt, err := numericPair("*", a, b)
	if err != nil {
		return err
	}
	if bothInt {
		s.Push(value.Int(int64(af) * int64(bf)))
		return nil
	}
	s.Push(value.Float(af * bf))
	return nil
}

func repeatStr(s string, n int64) string {
	if n <= 0 {
		return ""
	}
	out := make([]byte, 0, len(s)*int(n))
	for i := int64(0); i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}

func repeatItems(items []value.Value, n int64) []value.Value {
	if n <= 0 {
		return nil
	}
	out := make([]value.Value, 0, len(items)*int(n))
	for i := int64(0); i < n; i++ {
		out = append(out, items...)
	}
	return out
}

func opDiv(s *value.Stack) error {
	args, err := s.PopN("/", 2)
	if err != nil {
		return err
	}
	af, bf, _, err := numericPair("/", args[0], args[1])
	if err != nil {
		return err
	}
	if bf == 0 {
		return value.ArgumentError{Message: "division by zero"}
	}
	s.Push(value.Float(af / bf))
	return nil
}

func opFloorDiv(s *value.Stack) error {
	args, err := s.PopN("//", 2)
	if err != nil {
		return err
	}
	af, bf, bothInt, err := numericPair("//", args[0], args[1])
	if err != nil {
		return err
	}
	if bf == 0 {
		return value.ArgumentError{Message: "division by zero"}
	}
	q := math.Floor(af / bf)
	if bothInt {
		s.Push(value.Int(int64(q)))
		return nil
	}
	s.Push(value.Float(q))
	return nil
}

func opMod(s *value.Stack) error {
	args, err := s.PopN("%", 2)
	if err != nil {
		return err
	}
	af, bf, bothInt, err := numericPair("%", args[0], args[1])
	if err != nil {
		return err
	}
	if bf == 0 {
		return value.ArgumentError{Message: "modulo by zero"}
	}
	m := math.Mod(af, bf)
	if m != 0 && (m < 0) != (bf < 0) {
		m += bf
	}
	if bothInt {
		s.Push(value.Int(int64(m)))
		return nil
	}
	s.Push(value.Float(m))
	return nil
}

func opPow(s *value.Stack) error {
	args, err := s.PopN("**", 2)
	if err != nil {
		return err
	}
	af, bf, bothInt, err := numericPair("**", args[0], args[1])
	if err != nil {
		return err
	}
	r := math.Pow(af, bf)
	if bothInt && bf >= 0 {
		s.Push(value.Int(int64(r)))
		return nil
	}
	s.Push(value.Float(r))
	return nil
}

func opIncr(s *value.Stack) error {
	v, err := s.Pop()
	if err != nil {
		return err
	}
	switch t := v.(type) {
	case value.Int:
		s.Push(t + 1)
	case value.Float:
		s.Push(t + 1)
	default:
		return value.TypeMismatchError{Op: "++", Got: v, Want: "numeric"}
	}
	return nil
}

func opDecr(s *value.Stack) error {
	v, err := s.Pop()
	if err != nil {
		return err
	}
	switch t := v.(type) {
	case value.Int:
		s.Push(t - 1)
	case value.Float:
		s.Push(t - 1)
	default:
		return value.TypeMismatchError{Op: "--", Got: v, Want: "numeric"}
	}
	return nil
}
