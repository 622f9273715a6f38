// Package machine assembles the lexer, parser, and builtin dictionary into
// a runnable interpreter: a Stack plus a Dictionary, and the Parse/Run
// entry points the CLI and REPL drive.
package machine

import (
	"errors"
	"io"
	"os"

	"github.com/boklang/bok/internal/builtins"
	"github.com/boklang/bok/internal/flushio"
	"github.com/boklang/bok/internal/lexer"
	"github.com/boklang/bok/internal/panicerr"
	"github.com/boklang/bok/internal/parser"
	"github.com/boklang/bok/internal/source"
	"github.com/boklang/bok/internal/value"
)

// Machine owns one Stack and one Dictionary, and optionally traces every
// executed operation to a Logger-backed sink.
type Machine struct {
	Stack    *value.Stack
	Dict     *value.Dictionary
	Out      io.Writer
	In       io.Reader
	Import   parser.Importer
	Trace    func(op value.Value)
	MaxDepth int

	outFlusher flushio.WriteFlusher
}

// Option configures a Machine at construction time, the functional-options
// pattern used throughout this module's ambient plumbing.
type Option func(*Machine)

// WithOutput sets the writer every `print`/`println` builtin targets.
func WithOutput(w io.Writer) Option {
	return func(m *Machine) { m.Out = w }
}

// WithInput sets the reader the `input` builtin reads a line from.
func WithInput(r io.Reader) Option {
	return func(m *Machine) { m.In = r }
}

// WithImporter installs the loader `import` statements delegate to.
func WithImporter(imp parser.Importer) Option {
	return func(m *Machine) { m.Import = imp }
}

// WithTrace installs a callback invoked before every operation executes,
// for the CLI's --trace diagnostic mode.
func WithTrace(fn func(op value.Value)) Option {
	return func(m *Machine) { m.Trace = fn }
}

// WithDictionary seeds the Machine with a pre-built Dictionary (typically
// the builtins table) instead of an empty one.
func WithDictionary(dict *value.Dictionary) Option {
	return func(m *Machine) { m.Dict = dict }
}

// WithMaxDepth caps the operand stack at n items (0, the default, means
// unbounded), guarding against runaway recursion or an unterminated loop.
func WithMaxDepth(n int) Option {
	return func(m *Machine) { m.MaxDepth = n }
}

// New constructs a Machine, applying opts over sane defaults: stdout,
// stdin, and a Dictionary seeded with the full builtin table. A
// WithDictionary option, if given, replaces the builtin-seeded default —
// applied last so opts can freely reorder Out/In/Dict relative to one
// another.
func New(opts ...Option) *Machine {
	m := &Machine{
		Stack: value.NewStack(),
		Out:   os.Stdout,
		In:    os.Stdin,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.outFlusher = flushio.NewWriteFlusher(m.Out)
	if m.Dict == nil {
		m.Dict = builtins.New(m.outFlusher, m.In)
	}
	return m
}

// Parse lexes and lowers source text named name, mutating m.Dict with any
// `word`/`var`/`import` it contains, and returns the resulting operation
// sequence without running it.
func (m *Machine) Parse(name string, r io.Reader) ([]value.Value, error) {
	var in source.Input
	in.Push(source.NamedReader{Reader: r, Name_: name})

	lex := lexer.New(&in)
	p := parser.New(lex)

	prog, err := p.ParseProgram()
	if err != nil {
		return nil, err
	}
	parser.ResolveScopes(prog)

	imp := m.Import
	if imp == nil {
		imp = noImporter{}
	}
	return parser.Lower(prog, m.Dict, imp)
}

// Run executes an operation sequence against the Machine's Stack,
// isolated in its own goroutine so a bug inside a builtin (or a WordReturn
// escaping further than it should) surfaces as an error rather than
// crashing the process.
func (m *Machine) Run(ops []value.Value) error {
	return panicerr.Recover("bok.Run", func() error {
		for _, op := range ops {
			if m.Trace != nil {
				m.Trace(op)
			}
			if c, ok := op.(value.Callable); ok {
				if err := c.Call(m.Stack); err != nil {
					return err
				}
			} else {
				m.Stack.Push(op)
			}
			if m.MaxDepth > 0 && m.Stack.Len() > m.MaxDepth {
				return value.ResourceLimitError{Limit: m.MaxDepth, Got: m.Stack.Len()}
			}
		}
		return nil
	})
}

// RunStatement parses and runs exactly one top-level statement's worth of
// source, clearing the operand Stack if it errors — the unwind-only-the-
// current-statement policy the REPL relies on between prompts.
func (m *Machine) RunStatement(name string, r io.Reader) error {
	if m.outFlusher != nil {
		defer m.outFlusher.Flush()
	}
	ops, err := m.Parse(name, r)
	if err != nil {
		return err
	}
	if err := m.Run(ops); err != nil {
		var exitSig value.ExitSignal
		if errors.As(err, &exitSig) {
			return exitSig
		}
		m.Stack.Clear()
		return err
	}
	return nil
}

type noImporter struct{}

func (noImporter) Import(path string, dict *value.Dictionary) error {
	return value.NameError{Name: "import disabled: " + path}
}
