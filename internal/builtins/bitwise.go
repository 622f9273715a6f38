package builtins

import "github.com/boklang/bok/internal/value"

func registerBitwise(d *value.Dictionary) {
	reg(d, "~", "( a -- ~a ) bitwise not", func(s *value.Stack) error {
		v, err := s.Pop()
		if err != nil {
			return err
		}
		i, ok := v.(value.Int)
		if !ok {
			return value.TypeMismatchError{Op: "~", Got: v, Want: "int"}
		}
		s.Push(^i)
		return nil
	})
	reg(d, "&", "( a b -- a&b ) bitwise and", binaryInt("&", func(a, b int64) (value.Value, error) { return value.Int(a & b), nil }))
	reg(d, "|", "( a b -- a|b ) bitwise or", binaryInt("|", func(a, b int64) (value.Value, error) { return value.Int(a | b), nil }))
	reg(d, "^", "( a b -- a^b ) bitwise xor", binaryInt("^", func(a, b int64) (value.Value, error) { return value.Int(a ^ b), nil }))
	reg(d, "<<", "( a b -- a<<b ) left shift", binaryInt("<<", func(a, b int64) (value.Value, error) { return value.Int(a << uint(b)), nil }))
	reg(d, ">>", "( a b -- a>>b ) right shift", binaryInt(">>", func(a, b int64) (value.Value, error) { return value.Int(a >> uint(b)), nil }))
}
