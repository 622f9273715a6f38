package builtins

import "github.com/boklang/bok/internal/value"

func registerSequence(d *value.Dictionary) {
	reg(d, "append", "( list a -- list ) append a to list in place", func(s *value.Stack) error {
		args, err := s.PopN("append", 2)
		if err != nil {
			return err
		}
		l, ok := args[0].(*value.List)
		if !ok {
			return value.TypeMismatchError{Op: "append", Got: args[0], Want: "list"}
		}
		l.Items = append(l.Items, args[1])
		s.Push(l)
		return nil
	})
	reg(d, "extend", "( list other -- list ) extend list with other's items in place", func(s *value.Stack) error {
		args, err := s.PopN("extend", 2)
		if err != nil {
			return err
		}
		l, ok := args[0].(*value.List)
		if !ok {
			return value.TypeMismatchError{Op: "extend", Got: args[0], Want: "list"}
		}
		items, ok := value.Iterable(args[1])
		if !ok {
			return value.TypeMismatchError{Op: "extend", Got: args[1], Want: "iterable"}
		}
		l.Items = append(l.Items, items...)
		s.Push(l)
		return nil
	})
	reg(d, "prepend", "( list a -- list ) prepend a to list in place", func(s *value.Stack) error {
		args, err := s.PopN("prepend", 2)
		if err != nil {
			return err
		}
		l, ok := args[0].(*value.List)
		if !ok {
			return value.TypeMismatchError{Op: "prepend", Got: args[0], Want: "list"}
		}
		l.Items = append([]value.Value{args[1]}, l.Items...)
		s.Push(l)
		return nil
	})
	reg(d, "range", "( end | iterable -- range ) build a Range from an int or a (start, end[, step]) iterable", opRange)
	reg(d, "slice", "( start stop step -- slice ) build a Slice; None for any bound", opSlice)
	reg(d, "get", "( seq index -- item ) index or slice into a sequence", opGet)
	reg(d, "assign", "( seq index value -- seq ) assign at an index in place", opAssign)
}

func asOptionalInt(v value.Value) (*int64, error) {
	if _, ok := v.(value.NoneValue); ok {
		return nil, nil
	}
	i, ok := v.(value.Int)
	if !ok {
		return nil, value.TypeMismatchError{Op: "slice", Got: v, Want: "int or None"}
	}
	n := int64(i)
	return &n, nil
}

func opRange(s *value.Stack) error {
	v, err := s.Pop()
	if err != nil {
		return err
	}
	if n, ok := v.(value.Int); ok {
		s.Push(value.Range{Start: 0, Stop: int64(n), Step: 1})
		return nil
	}
	items, ok := value.Iterable(v)
	if !ok || len(items) < 1 || len(items) > 3 {
		return value.ArgumentError{Message: "range expects an int or an iterable of 1-3 ints"}
	}
	ints := make([]int64, len(items))
	for i, it := range items {
		n, ok := it.(value.Int)
		if !ok {
			return value.TypeMismatchError{Op: "range", Got: it, Want: "int"}
		}
		ints[i] = int64(n)
	}
	r := value.Range{Step: 1}
	switch len(ints) {
	case 1:
		r.Stop = ints[0]
	case 2:
		r.Start, r.Stop = ints[0], ints[1]
	case 3:
		r.Start, r.Stop, r.Step = ints[0], ints[1], ints[2]
	}
	s.Push(r)
	return nil
}

func opSlice(s *value.Stack) error {
	args, err := s.PopN("slice", 3)
	if err != nil {
		return err
	}
	start, err := asOptionalInt(args[0])
	if err != nil {
		return err
	}
	stop, err := asOptionalInt(args[1])
	if err != nil {
		return err
	}
	step, err := asOptionalInt(args[2])
	if err != nil {
		return err
	}
	s.Push(value.Slice{Start: start, Stop: stop, Step: step})
	return nil
}

func opGet(s *value.Stack) error {
	args, err := s.PopN("get", 2)
	if err != nil {
		return err
	}
	seq, idx := args[0], args[1]

	if sl, ok := idx.(value.Slice); ok {
		return getSlice(s, seq, sl)
	}
	i, ok := idx.(value.Int)
	if !ok {
		return value.TypeMismatchError{Op: "get", Got: idx, Want: "int or slice"}
	}
	items, ok := value.Iterable(seq)
	if !ok {
		return value.TypeMismatchError{Op: "get", Got: seq, Want: "iterable"}
	}
	n := int64(i)
	if n < 0 {
		n += int64(len(items))
	}
	if n < 0 || n >= int64(len(items)) {
		return value.ArgumentError{Message: "index out of range"}
	}
	s.Push(items[n])
	return nil
}

func getSlice(s *value.Stack, seq value.Value, sl value.Slice) error {
	items, ok := value.Iterable(seq)
	if !ok {
		return value.TypeMismatchError{Op: "get", Got: seq, Want: "iterable"}
	}
	step := int64(1)
	if sl.Step != nil {
		step = *sl.Step
	}
	if step == 0 {
		return value.ArgumentError{Message: "slice step cannot be zero"}
	}
	n := int64(len(items))
	start, stop := sliceBounds(sl.Start, sl.Stop, step, n)

	var out []value.Value
	if step > 0 {
		for i := start; i < stop; i += step {
			out = append(out, items[i])
		}
	} else {
		for i := start; i > stop; i += step {
			out = append(out, items[i])
		}
	}

	switch seq.(type) {
	case value.Str:
		var b []rune
		for _, v := range out {
			b = append(b, []rune(string(v.(value.Str)))...)
		}
		s.Push(value.Str(string(b)))
	case value.Tuple:
		s.Push(value.Tuple(out))
	default:
		s.Push(&value.List{Items: out})
	}
	return nil
}

func sliceBounds(start, stop *int64, step, n int64) (int64, int64) {
	var lo, hi int64
	if step > 0 {
		lo, hi = 0, n
	} else {
		lo, hi = n-1, -1
	}
	s := lo
	if start != nil {
		s = normalizeIndex(*start, n, step > 0)
	}
	e := hi
	if stop != nil {
		e = normalizeIndex(*stop, n, step > 0)
	}
	return s, e
}

func normalizeIndex(i, n int64, forward bool) int64 {
	if i < 0 {
		i += n
	}
	if forward {
		if i < 0 {
			i = 0
		}
		if i > n {
			i = n
		}
	} else {
		if i < -1 {
			i = -1
		}
		if i >= n {
			i = n - 1
		}
	}
	return i
}

func opAssign(s *value.Stack) error {
	args, err := s.PopN("assign", 3)
	if err != nil {
		return err
	}
	seq, idx, val := args[0], args[1], args[2]
	l, ok := seq.(*value.List)
	if !ok {
		return value.TypeMismatchError{Op: "assign", Got: seq, Want: "list"}
	}
	i, ok := idx.(value.Int)
	if !ok {
		return value.TypeMismatchError{Op: "assign", Got: idx, Want: "int"}
	}
	n := int64(i)
	if n < 0 {
		n += int64(len(l.Items))
	}
	if n < 0 || n >= int64(len(l.Items)) {
		return value.ArgumentError{Message: "index out of range"}
	}
	l.Items[n] = val
	s.Push(l)
	return nil
}
