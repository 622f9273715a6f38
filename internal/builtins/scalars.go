package builtins

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"

	"github.com/boklang/bok/internal/value"
)

func registerScalars(d *value.Dictionary) {
	reg(d, "abs", "( a -- |a| )", func(s *value.Stack) error {
		v, err := s.Pop()
		if err != nil {
			return err
		}
		switch t := v.(type) {
		case value.Int:
			if t < 0 {
				t = -t
			}
			s.Push(t)
		case value.Float:
			if t < 0 {
				t = -t
			}
			s.Push(t)
		default:
			return value.TypeMismatchError{Op: "abs", Got: v, Want: "numeric"}
		}
		return nil
	})
	reg(d, "all", "( xs -- bool ) true iff every element is truthy", func(s *value.Stack) error {
		v, err := s.Pop()
		if err != nil {
			return err
		}
		items, ok := value.Iterable(v)
		if !ok {
			return value.TypeMismatchError{Op: "all", Got: v, Want: "iterable"}
		}
		for _, it := range items {
			if !value.Truthy(it) {
				s.Push(value.Bool(false))
				return nil
			}
		}
		s.Push(value.Bool(true))
		return nil
	})
	reg(d, "any", "( xs -- bool ) true iff some element is truthy", func(s *value.Stack) error {
		v, err := s.Pop()
		if err != nil {
			return err
		}
		items, ok := value.Iterable(v)
		if !ok {
			return value.TypeMismatchError{Op: "any", Got: v, Want: "iterable"}
		}
		for _, it := range items {
			if value.Truthy(it) {
				s.Push(value.Bool(true))
				return nil
			}
		}
		s.Push(value.Bool(false))
		return nil
	})
	reg(d, "ascii", "( a -- str ) ASCII-escaped repr", func(s *value.Stack) error {
		v, err := s.Pop()
		if err != nil {
			return err
		}
		s.Push(value.Str(strconv.QuoteToASCII(value.Display(v))))
		return nil
	})
	reg(d, "bin", "( n -- str ) binary representation", intBaseWord("bin", 2, "0b"))
	reg(d, "chr", "( n -- str ) codepoint to single-rune string", func(s *value.Stack) error {
		v, err := s.Pop()
		if err != nil {
			return err
		}
		n, ok := v.(value.Int)
		if !ok {
			return value.TypeMismatchError{Op: "chr", Got: v, Want: "int"}
		}
		s.Push(value.Str(string(rune(n))))
		return nil
	})
	reg(d, "hash", "( a -- int ) structural hash by repr", func(s *value.Stack) error {
		v, err := s.Pop()
		if err != nil {
			return err
		}
		h := fnv.New64a()
		h.Write([]byte(v.Repr()))
		s.Push(value.Int(int64(h.Sum64())))
		return nil
	})
	reg(d, "len", "( xs -- int ) element or character count", func(s *value.Stack) error {
		v, err := s.Pop()
		if err != nil {
			return err
		}
		switch t := v.(type) {
		case *value.Mapping:
			s.Push(value.Int(t.Len()))
			return nil
		case *value.Set:
			s.Push(value.Int(t.Len()))
			return nil
		case value.Range:
			s.Push(value.Int(t.Len()))
			return nil
		}
		items, ok := value.Iterable(v)
		if !ok {
			return value.TypeMismatchError{Op: "len", Got: v, Want: "sized"}
		}
		s.Push(value.Int(len(items)))
		return nil
	})
	reg(d, "max", "( xs -- a ) maximum of an iterable's elements", extremeWord("max", func(c int) bool { return c > 0 }))
	reg(d, "min", "( xs -- a ) minimum of an iterable's elements", extremeWord("min", func(c int) bool { return c < 0 }))
	reg(d, "reversed", "( xs -- ys ) elements in reverse order", func(s *value.Stack) error {
		v, err := s.Pop()
		if err != nil {
			return err
		}
		items, ok := value.Iterable(v)
		if !ok {
			return value.TypeMismatchError{Op: "reversed", Got: v, Want: "iterable"}
		}
		out := make([]value.Value, len(items))
		for i, it := range items {
			out[len(items)-1-i] = it
		}
		switch v.(type) {
		case value.Tuple:
			s.Push(value.Tuple(out))
		case value.Str:
			var b strings.Builder
			for _, r := range out {
				b.WriteString(string(r.(value.Str)))
			}
			s.Push(value.Str(b.String()))
		default:
			s.Push(&value.List{Items: out})
		}
		return nil
	})
	reg(d, "repr", "( a -- str ) debug repr", func(s *value.Stack) error {
		v, err := s.Pop()
		if err != nil {
			return err
		}
		s.Push(value.Str(v.Repr()))
		return nil
	})
	reg(d, "sum", "( xs -- n ) sum of an iterable's numeric elements", func(s *value.Stack) error {
		v, err := s.Pop()
		if err != nil {
			return err
		}
		items, ok := value.Iterable(v)
		if !ok {
			return value.TypeMismatchError{Op: "sum", Got: v, Want: "iterable"}
		}
		var total float64
		allInt := true
		for _, it := range items {
			f, ok := toFloat(it)
			if !ok {
				return value.TypeMismatchError{Op: "sum", Got: it, Want: "numeric"}
			}
			if _, isInt := it.(value.Int); !isInt {
				allInt = false
			}
			total += f
		}
		if allInt {
			s.Push(value.Int(int64(total)))
		} else {
			s.Push(value.Float(total))
		}
		return nil
	})
}

func intBaseWord(op string, base int, prefix string) func(*value.Stack) error {
	return func(s *value.Stack) error {
		v, err := s.Pop()
		if err != nil {
			return err
		}
		n, ok := v.(value.Int)
		if !ok {
			return value.TypeMismatchError{Op: op, Got: v, Want: "int"}
		}
		s.Push(value.Str(prefix + strconv.FormatInt(int64(n), base)))
		return nil
	}
}

func extremeWord(op string, better func(cmp int) bool) func(*value.Stack) error {
	return func(s *value.Stack) error {
		v, err := s.Pop()
		if err != nil {
			return err
		}
		items, ok := value.Iterable(v)
		if !ok || len(items) == 0 {
			return value.ArgumentError{Message: fmt.Sprintf("%s: empty or non-iterable argument", op)}
		}
		best := items[0]
		bestF, bestIsNum := toFloat(best)
		for _, it := range items[1:] {
			f, ok := toFloat(it)
			if !ok || !bestIsNum {
				if it.Repr() > best.Repr() == better(1) {
					best = it
				}
				continue
			}
			cmp := 0
			switch {
			case f < bestF:
				cmp = -1
			case f > bestF:
				cmp = 1
			}
			if better(cmp) {
				best, bestF = it, f
			}
		}
		s.Push(best)
		return nil
	}
}
