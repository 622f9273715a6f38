package value

// Callable is any Value that acts on the Stack when the evaluator
// encounters it during execution. Builtin, WordDef, the Varset/Varget
// halves of a Variable, LateBind, and PyCall all implement it.
type Callable interface {
	Value
	Call(s *Stack) error
}

// Builtin is a primitive action with a stable name and docstring — the
// variant every entry in internal/builtins registers.
type Builtin struct {
	Name string
	Doc  string
	Fn   func(s *Stack) error
}

func (b *Builtin) Repr() string        { return "<" + b.Name + ">" }
func (b *Builtin) Call(s *Stack) error { return b.Fn(s) }

// NewBuiltin constructs a Builtin with the given name, docstring, and
// implementation.
func NewBuiltin(name, doc string, fn func(s *Stack) error) *Builtin {
	return &Builtin{Name: name, Doc: doc, Fn: fn}
}

// Docstring returns a Callable's docstring if it has one, for the `help`
// builtin.
func Docstring(c Callable) (string, bool) {
	switch t := c.(type) {
	case *Builtin:
		return t.Doc, t.Doc != ""
	case *WordDef:
		return t.Doc, t.Doc != ""
	default:
		return "", false
	}
}
