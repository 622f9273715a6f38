package builtins

import "github.com/boklang/bok/internal/value"

// quoteOf requires v to be a quotation (a *List), returning an
// ArgumentError under op's name otherwise.
func quoteOf(op string, v value.Value) (*value.List, error) {
	l, ok := v.(*value.List)
	if !ok {
		return nil, value.ArgumentError{Message: op + " expects a quotation"}
	}
	return l, nil
}

// topCopyApply runs quote against a fresh sub-stack seeded with exactly v,
// and returns that sub-stack's final top value — the predicate-evaluation
// primitive every conditional combinator (if/when/unless/cond/while/linrec)
// is built from. The caller's stack is untouched by the predicate itself.
func topCopyApply(v value.Value, quote *value.List) (value.Value, error) {
	sub := value.NewStack()
	sub.Push(v)
	if err := sub.ApplyToTop(quote); err != nil {
		return nil, err
	}
	return sub.Top()
}

func registerCombinators(d *value.Dictionary) {
	reg(d, "eval", "( Q -- ... ) call Q", evalWord)
	reg(d, "exec", "( Q -- ... ) call Q", evalWord)

	reg(d, "map", "( xs Q -- ys ) call Q against each element of xs, collecting residues", func(s *value.Stack) error {
		args, err := s.PopN("map", 2)
		if err != nil {
			return err
		}
		quote, err := quoteOf("map", args[1])
		if err != nil {
			return err
		}
		items, ok := value.Iterable(args[0])
		if !ok {
			return value.TypeMismatchError{Op: "map", Got: args[0], Want: "iterable"}
		}
		out := make([]value.Value, 0, len(items))
		for _, x := range items {
			r, err := topCopyApply(x, quote)
			if err != nil {
				return err
			}
			out = append(out, r)
		}
		s.Push(&value.List{Items: out})
		return nil
	})

	reg(d, "filter", "( xs Q -- ys ) keep elements of xs whose Q-residue is truthy", func(s *value.Stack) error {
		args, err := s.PopN("filter", 2)
		if err != nil {
			return err
		}
		quote, err := quoteOf("filter", args[1])
		if err != nil {
			return err
		}
		items, ok := value.Iterable(args[0])
		if !ok {
			return value.TypeMismatchError{Op: "filter", Got: args[0], Want: "iterable"}
		}
		var out []value.Value
		for _, x := range items {
			r, err := topCopyApply(x, quote)
			if err != nil {
				return err
			}
			if value.Truthy(r) {
				out = append(out, x)
			}
		}
		s.Push(&value.List{Items: out})
		return nil
	})

	reg(d, "fold", "( xs a0 Q -- a ) push a0, then for each x: push x, call Q", func(s *value.Stack) error {
		args, err := s.PopN("fold", 3)
		if err != nil {
			return err
		}
		quote, err := quoteOf("fold", args[2])
		if err != nil {
			return err
		}
		items, ok := value.Iterable(args[0])
		if !ok {
			return value.TypeMismatchError{Op: "fold", Got: args[0], Want: "iterable"}
		}
		s.Push(args[1])
		for _, x := range items {
			s.Push(x)
			if err := s.ApplyToTop(quote); err != nil {
				return err
			}
		}
		return nil
	})

	reg(d, "dip", "( v Q -- v' ) pop v, call Q, push v back", func(s *value.Stack) error {
		args, err := s.PopN("dip", 2)
		if err != nil {
			return err
		}
		quote, err := quoteOf("dip", args[1])
		if err != nil {
			return err
		}
		if err := s.ApplyToTop(quote); err != nil {
			return err
		}
		s.Push(args[0])
		return nil
	})

	reg(d, "keep", "( v Q -- v'... v ) call Q with v on top, then push v again", func(s *value.Stack) error {
		args, err := s.PopN("keep", 2)
		if err != nil {
			return err
		}
		quote, err := quoteOf("keep", args[1])
		if err != nil {
			return err
		}
		s.Push(args[0])
		if err := s.ApplyToTop(quote); err != nil {
			return err
		}
		s.Push(args[0])
		return nil
	})

	reg(d, "bi", "( v Q1 Q2 -- r1 r2 ) push v, call Q1, push v again, call Q2 — both run on the real stack", func(s *value.Stack) error {
		args, err := s.PopN("bi", 3)
		if err != nil {
			return err
		}
		v := args[0]
		q1, err := quoteOf("bi", args[1])
		if err != nil {
			return err
		}
		q2, err := quoteOf("bi", args[2])
		if err != nil {
			return err
		}
		s.Push(v)
		if err := s.ApplyToTop(q1); err != nil {
			return err
		}
		s.Push(v)
		return s.ApplyToTop(q2)
	})

	reg(d, "tri", "( v Q1 Q2 Q3 -- r1 r2 r3 ) push v and call each of Q1, Q2, Q3 in turn on the real stack", func(s *value.Stack) error {
		args, err := s.PopN("tri", 4)
		if err != nil {
			return err
		}
		v := args[0]
		quotes := make([]*value.List, 3)
		for i := 0; i < 3; i++ {
			q, err := quoteOf("tri", args[i+1])
			if err != nil {
				return err
			}
			quotes[i] = q
		}
		for _, q := range quotes {
			s.Push(v)
			if err := s.ApplyToTop(q); err != nil {
				return err
			}
		}
		return nil
	})

	reg(d, "cleave", "( v1 v2 Q1 Q2 -- r1 r2 ) push v1, call Q1, push v2, call Q2 — both run on the real stack", func(s *value.Stack) error {
		args, err := s.PopN("cleave", 4)
		if err != nil {
			return err
		}
		q1, err := quoteOf("cleave", args[2])
		if err != nil {
			return err
		}
		q2, err := quoteOf("cleave", args[3])
		if err != nil {
			return err
		}
		s.Push(args[0])
		if err := s.ApplyToTop(q1); err != nil {
			return err
		}
		s.Push(args[1])
		return s.ApplyToTop(q2)
	})

	reg(d, "while", "( Stop Body -- ) call Body while Stop (top-copy) is truthy", func(s *value.Stack) error {
		args, err := s.PopN("while", 2)
		if err != nil {
			return err
		}
		stop, err := quoteOf("while", args[0])
		if err != nil {
			return err
		}
		body, err := quoteOf("while", args[1])
		if err != nil {
			return err
		}
		for {
			top, err := s.Top()
			if err != nil {
				return err
			}
			cond, err := topCopyApply(top, stop)
			if err != nil {
				return err
			}
			if !value.Truthy(cond) {
				return nil
			}
			if err := s.ApplyToTop(body); err != nil {
				return err
			}
		}
	})

	reg(d, "foreach", "( xs Q -- ) for each x in xs: push x, call Q", func(s *value.Stack) error {
		args, err := s.PopN("foreach", 2)
		if err != nil {
			return err
		}
		quote, err := quoteOf("foreach", args[1])
		if err != nil {
			return err
		}
		items, ok := value.Iterable(args[0])
		if !ok {
			return value.TypeMismatchError{Op: "foreach", Got: args[0], Want: "iterable"}
		}
		for _, x := range items {
			s.Push(x)
			if err := s.ApplyToTop(quote); err != nil {
				return err
			}
		}
		return nil
	})

	reg(d, "repeat", "( n Q -- ) call Q n times", func(s *value.Stack) error {
		args, err := s.PopN("repeat", 2)
		if err != nil {
			return err
		}
		n, ok := args[0].(value.Int)
		if !ok {
			return value.TypeMismatchError{Op: "repeat", Got: args[0], Want: "int"}
		}
		quote, err := quoteOf("repeat", args[1])
		if err != nil {
			return err
		}
		for i := value.Int(0); i < n; i++ {
			if err := s.ApplyToTop(quote); err != nil {
				return err
			}
		}
		return nil
	})

	reg(d, "choice", "( c t f -- t|f ) push t if c is truthy else f; neither is called", func(s *value.Stack) error {
		args, err := s.PopN("choice", 3)
		if err != nil {
			return err
		}
		if value.Truthy(args[0]) {
			s.Push(args[1])
		} else {
			s.Push(args[2])
		}
		return nil
	})

	reg(d, "if", "( c T F -- ... ) top-copy-apply c, then call T or F", ifWord3)
	reg(d, "when", "( c T -- ... ) top-copy-apply c, then call T if truthy", ifWord2)
	reg(d, "unless", "( c F -- ... ) top-copy-apply c, then call F if falsy", unlessWord2)

	reg(d, "cond", "( ((P1 E1) (P2 E2) ...) -- ... ) run the first Ei whose Pi (top-copy) is truthy", condWord)

	reg(d, "min-by", "( xs Q -- min ) the element of xs minimizing Q's residue", extremeByWord("min-by", func(c int) bool { return c < 0 }))
	reg(d, "max-by", "( xs Q -- max ) the element of xs maximizing Q's residue", extremeByWord("max-by", func(c int) bool { return c > 0 }))

	reg(d, "linrec", "( Cond True Else Post -- ... ) linear recursion: Else while Cond is false, then True, then Post repeated", linrecWord)
}

// extremeByWord picks the element of an iterable whose Q-residue compares
// best, mirroring extremeWord's numeric-else-repr comparison but keying off
// a quotation's result instead of the element itself.
func extremeByWord(op string, better func(cmp int) bool) func(*value.Stack) error {
	return func(s *value.Stack) error {
		args, err := s.PopN(op, 2)
		if err != nil {
			return err
		}
		quote, err := quoteOf(op, args[1])
		if err != nil {
			return err
		}
		items, ok := value.Iterable(args[0])
		if !ok || len(items) == 0 {
			return value.ArgumentError{Message: op + ": empty or non-iterable argument"}
		}
		best := items[0]
		bestKey, err := topCopyApply(best, quote)
		if err != nil {
			return err
		}
		bestF, bestIsNum := toFloat(bestKey)
		for _, it := range items[1:] {
			key, err := topCopyApply(it, quote)
			if err != nil {
				return err
			}
			f, ok := toFloat(key)
			if !ok || !bestIsNum {
				if key.Repr() > bestKey.Repr() == better(1) {
					best, bestKey = it, key
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
				best, bestKey, bestF = it, key, f
			}
		}
		s.Push(best)
		return nil
	}
}

func evalWord(s *value.Stack) error {
	v, err := s.Pop()
	if err != nil {
		return err
	}
	quote, err := quoteOf("eval", v)
	if err != nil {
		return err
	}
	return s.ApplyToTop(quote)
}

func ifWord3(s *value.Stack) error {
	args, err := s.PopN("if", 3)
	if err != nil {
		return err
	}
	cq, err := quoteOf("if", args[0])
	if err != nil {
		return err
	}
	tq, err := quoteOf("if", args[1])
	if err != nil {
		return err
	}
	fq, err := quoteOf("if", args[2])
	if err != nil {
		return err
	}
	top, err := s.Top()
	if err != nil {
		return err
	}
	cond, err := topCopyApply(top, cq)
	if err != nil {
		return err
	}
	if value.Truthy(cond) {
		return s.ApplyToTop(tq)
	}
	return s.ApplyToTop(fq)
}

func ifWord2(s *value.Stack) error {
	args, err := s.PopN("when", 2)
	if err != nil {
		return err
	}
	cq, err := quoteOf("when", args[0])
	if err != nil {
		return err
	}
	tq, err := quoteOf("when", args[1])
	if err != nil {
		return err
	}
	top, err := s.Top()
	if err != nil {
		return err
	}
	cond, err := topCopyApply(top, cq)
	if err != nil {
		return err
	}
	if value.Truthy(cond) {
		return s.ApplyToTop(tq)
	}
	return nil
}

func unlessWord2(s *value.Stack) error {
	args, err := s.PopN("unless", 2)
	if err != nil {
		return err
	}
	cq, err := quoteOf("unless", args[0])
	if err != nil {
		return err
	}
	fq, err := quoteOf("unless", args[1])
	if err != nil {
		return err
	}
	top, err := s.Top()
	if err != nil {
		return err
	}
	cond, err := topCopyApply(top, cq)
	if err != nil {
		return err
	}
	if !value.Truthy(cond) {
		return s.ApplyToTop(fq)
	}
	return nil
}

// condWord implements cond [((P1 E1) (P2 E2) ...)]: clauses is a quotation
// whose elements are each two-element quotations (Pi Ei).
func condWord(s *value.Stack) error {
	v, err := s.Pop()
	if err != nil {
		return err
	}
	clauses, ok := v.(*value.List)
	if !ok {
		return value.ArgumentError{Message: "cond expects a quotation of (predicate effect) clause pairs"}
	}
	top, err := s.Top()
	if err != nil {
		return err
	}
	for _, c := range clauses.Items {
		pair, ok := c.(*value.List)
		if !ok || len(pair.Items) != 2 {
			return value.ArgumentError{Message: "cond clause must be a two-element quotation (predicate effect)"}
		}
		pred, err := quoteOf("cond", pair.Items[0])
		if err != nil {
			return err
		}
		effect, err := quoteOf("cond", pair.Items[1])
		if err != nil {
			return err
		}
		cond, err := topCopyApply(top, pred)
		if err != nil {
			return err
		}
		if value.Truthy(cond) {
			return s.ApplyToTop(effect)
		}
	}
	return nil
}

// linrecWord implements linrec [Cond True Else Post]: while Cond
// (top-copy) is false, run Else and count the pass; once Cond is true,
// run True, then run Post once per counted pass, unwinding the recursion.
func linrecWord(s *value.Stack) error {
	args, err := s.PopN("linrec", 4)
	if err != nil {
		return err
	}
	cond, err := quoteOf("linrec", args[0])
	if err != nil {
		return err
	}
	trueQ, err := quoteOf("linrec", args[1])
	if err != nil {
		return err
	}
	elseQ, err := quoteOf("linrec", args[2])
	if err != nil {
		return err
	}
	post, err := quoteOf("linrec", args[3])
	if err != nil {
		return err
	}
	passes := 0
	for {
		top, err := s.Top()
		if err != nil {
			return err
		}
		c, err := topCopyApply(top, cond)
		if err != nil {
			return err
		}
		if value.Truthy(c) {
			break
		}
		if err := s.ApplyToTop(elseQ); err != nil {
			return err
		}
		passes++
	}
	if err := s.ApplyToTop(trueQ); err != nil {
		return err
	}
	for i := 0; i < passes; i++ {
		if err := s.ApplyToTop(post); err != nil {
			return err
		}
	}
	return nil
}
