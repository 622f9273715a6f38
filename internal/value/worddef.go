package value

// Variable is a named slot local to a WordDef. It is itself the GET half of
// the variable: calling it pushes its current value. The SET half is a
// distinct Callable returned by Setter, used only for the literal `:x`
// occurrence that assigns.
//
// Variables are per-definition, not per-activation: a recursive WordDef
// shares its slots across nested activations, and they are cleared to None
// only when the owning WordDef finishes (normally or via `return`). This
// deliberate, non-reentrant slot sharing means two concurrently active
// recursive calls of the same word will stomp on each other's locals —
// an accepted tradeoff, not an oversight.
type Variable struct {
	Name string
	Val  Value
}

// NewVariable allocates a variable slot, initially None.
func NewVariable(name string) *Variable {
	return &Variable{Name: name, Val: None}
}

func (v *Variable) Repr() string { return "<" + v.Name + ">" }

// Call pushes the variable's current value — the GET half.
func (v *Variable) Call(s *Stack) error {
	s.Push(v.Val)
	return nil
}

// Clear resets the slot to None, run when the owning WordDef finishes.
func (v *Variable) Clear() { v.Val = None }

// Setter returns the SET half: consumes top-of-stack into this slot.
func (v *Variable) Setter() Callable { return varSetter{v} }

type varSetter struct{ v *Variable }

func (vs varSetter) Repr() string { return "<:" + vs.v.Name + ">" }

func (vs varSetter) Call(s *Stack) error {
	val, err := s.Pop()
	if err != nil {
		return err
	}
	vs.v.Val = val
	return nil
}

// LateBind is a forward reference to a name resolved against the current
// Dictionary at call time rather than at lowering time, which is what makes
// mutual recursion and forward references inside a word body work: the name
// may not exist in the Dictionary yet when the body lowers.
type LateBind struct {
	Name string
	Dict *Dictionary
}

func (lb LateBind) Repr() string { return "<" + lb.Name + ">" }

func (lb LateBind) Call(s *Stack) error {
	c, ok := lb.Dict.Get(lb.Name)
	if !ok {
		return NameError{Name: lb.Name}
	}
	return c.Call(s)
}

// WordDef is a user-defined word: a name bound to a flat operation
// sequence, an optional docstring, and the set of Variables it owns.
type WordDef struct {
	Name string
	Doc  string
	Ops  []Value
	Vars []*Variable
}

// NewWordDef builds a WordDef, discovering the Variables it owns by
// scanning its lowered operation sequence for SET-half occurrences.
func NewWordDef(name, doc string, ops []Value) *WordDef {
	w := &WordDef{Name: name, Doc: doc, Ops: ops}
	seen := make(map[*Variable]bool)
	for _, op := range ops {
		if vs, ok := op.(varSetter); ok && !seen[vs.v] {
			seen[vs.v] = true
			w.Vars = append(w.Vars, vs.v)
		}
	}
	return w
}

func (w *WordDef) Repr() string { return "<" + w.Name + ">" }

// Call runs the word body against s. A WordReturnSignal panic raised by the
// `return` builtin is caught here and nowhere else: it aborts the remainder
// of this WordDef's body and resumes at the caller. Variable slots are
// cleared on every exit path, normal or via `return`.
func (w *WordDef) Call(s *Stack) (err error) {
	defer w.clearVars()
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(WordReturnSignal); ok {
				err = nil
				return
			}
			panic(r)
		}
	}()
	err = s.CallQuote(w.Ops)
	return
}

func (w *WordDef) clearVars() {
	for _, v := range w.Vars {
		v.Clear()
	}
}
