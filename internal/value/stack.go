package value

// Stack is the single operand stack shared by an entire machine run. Every
// Callable acts on it; WordDef bodies, combinators, and top-level
// statements all push and pop the same underlying slice.
type Stack struct {
	items  []Value
	Args   []Value
	Kwargs map[string]Value
}

// NewStack returns an empty Stack.
func NewStack() *Stack {
	return &Stack{}
}

// Push appends a value to the top of the stack.
func (s *Stack) Push(v Value) { s.items = append(s.items, v) }

// PushAll appends each value in order, left to right, so the last one ends
// up on top.
func (s *Stack) PushAll(vs ...Value) {
	s.items = append(s.items, vs...)
}

// Pop removes and returns the top value.
func (s *Stack) Pop() (Value, error) {
	if len(s.items) == 0 {
		return nil, StackUnderflowError{Op: "pop", Need: 1, Got: 0}
	}
	last := len(s.items) - 1
	v := s.items[last]
	s.items[last] = nil
	s.items = s.items[:last]
	return v, nil
}

// PopN removes and returns the top n values in stack order (bottom to top
// of the popped group), the form every fixed-arity builtin uses to consume
// its operands.
func (s *Stack) PopN(op string, n int) ([]Value, error) {
	if len(s.items) < n {
		return nil, StackUnderflowError{Op: op, Need: n, Got: len(s.items)}
	}
	start := len(s.items) - n
	out := make([]Value, n)
	copy(out, s.items[start:])
	for i := start; i < len(s.items); i++ {
		s.items[i] = nil
	}
	s.items = s.items[:start]
	return out, nil
}

// Top returns the top value without removing it.
func (s *Stack) Top() (Value, error) {
	if len(s.items) == 0 {
		return nil, StackUnderflowError{Op: "top", Need: 1, Got: 0}
	}
	return s.items[len(s.items)-1], nil
}

// SetTop replaces the top value in place, the common "consume and replace"
// shape most unary builtins and PyCall/ArrayWrapper use.
func (s *Stack) SetTop(v Value) error {
	if len(s.items) == 0 {
		return StackUnderflowError{Op: "settop", Need: 1, Got: 0}
	}
	s.items[len(s.items)-1] = v
	return nil
}

// At returns the value at a zero-based depth from the top (0 is the top
// value itself), used by peek/pick-style shuffling words.
func (s *Stack) At(depth int) (Value, error) {
	idx := len(s.items) - 1 - depth
	if idx < 0 || idx >= len(s.items) {
		return nil, StackUnderflowError{Op: "at", Need: depth + 1, Got: len(s.items)}
	}
	return s.items[idx], nil
}

// Len reports how many operands are currently on the stack.
func (s *Stack) Len() int { return len(s.items) }

// Clear empties the stack.
func (s *Stack) Clear() { s.items = s.items[:0] }

// Snapshot returns a copy of the current stack contents, bottom to top —
// what the `stack` builtin prints.
func (s *Stack) Snapshot() []Value {
	out := make([]Value, len(s.items))
	copy(out, s.items)
	return out
}

// LoadArgs populates the pending args/kwargs buffers consumed by the next
// PyCall invocation.
func (s *Stack) LoadArgs(args []Value, kwargs map[string]Value) {
	s.Args = args
	s.Kwargs = kwargs
}

// AppendArg appends v to the pending positional-args buffer, the operation
// `>*` performs once per popped value.
func (s *Stack) AppendArg(v Value) {
	s.Args = append(s.Args, v)
}

// MergeKwargs merges kv into the pending keyword-args buffer, the
// operation `>**` performs against a popped mapping.
func (s *Stack) MergeKwargs(kv map[string]Value) {
	if s.Kwargs == nil {
		s.Kwargs = make(map[string]Value, len(kv))
	}
	for k, v := range kv {
		s.Kwargs[k] = v
	}
}

// ArgsLoaded reports whether a pending args/kwargs buffer is waiting for a
// PyCall to consume.
func (s *Stack) ArgsLoaded() bool {
	return len(s.Args) > 0 || len(s.Kwargs) > 0
}

// TakeArgs returns and clears the pending args/kwargs buffers.
func (s *Stack) TakeArgs() ([]Value, map[string]Value) {
	args, kwargs := s.Args, s.Kwargs
	s.Args, s.Kwargs = nil, nil
	return args, kwargs
}

// CallQuote executes a flat operation sequence against s: literal values
// push themselves, Callables run. This is the evaluator's inner loop, used
// both for a parsed program's top-level statements and for every WordDef
// body and quotation invocation.
func (s *Stack) CallQuote(ops []Value) error {
	for _, op := range ops {
		if c, ok := op.(Callable); ok {
			if err := c.Call(s); err != nil {
				return err
			}
			continue
		}
		s.Push(op)
	}
	return nil
}

// ApplyToTop invokes a quotation (a *List whose contents may include
// Callables) against s, the primitive every combinator builds on: `call`,
// `dip`, `map`, `filter`, and friends all reduce to this.
func (s *Stack) ApplyToTop(quote *List) error {
	return s.CallQuote(quote.Items)
}
