package builtins

import (
	"fmt"
	"io"

	"github.com/kr/pretty"

	"github.com/boklang/bok/internal/value"
)

func registerControl(d *value.Dictionary, out io.Writer) {
	reg(d, "error", "( str -- ) raise an explicit error carrying the given message", func(s *value.Stack) error {
		v, err := s.Pop()
		if err != nil {
			return err
		}
		msg, ok := v.(value.Str)
		if !ok {
			return value.TypeMismatchError{Op: "error", Got: v, Want: "str"}
		}
		return value.RaisedError{Message: string(msg)}
	})
	reg(d, "assert", "( bool -- ) raise AssertionError if the popped value is falsy", func(s *value.Stack) error {
		v, err := s.Pop()
		if err != nil {
			return err
		}
		if !value.Truthy(v) {
			return value.AssertionError{}
		}
		return nil
	})
	reg(d, "return", "( -- ) unwind the currently executing word to its caller", func(s *value.Stack) error {
		panic(value.WordReturnSignal{})
	})
	reg(d, "exit", "( n -- ) terminate the interpreter with exit code n", func(s *value.Stack) error {
		v, err := s.Pop()
		if err != nil {
			return err
		}
		n, ok := v.(value.Int)
		if !ok {
			return value.TypeMismatchError{Op: "exit", Got: v, Want: "int"}
		}
		panic(value.ExitSignal{Code: int(n)})
	})
	reg(d, "dump", "( -- ) pretty-print the operand stack and the dictionary", func(s *value.Stack) error {
		pretty.Fprintf(out, "stack:\n%# v\ndictionary:\n%# v\n", s.Snapshot(), d.Names())
		return nil
	})
	reg(d, "help", "( quote -- ) print the docstring of the single word held in quote", func(s *value.Stack) error {
		v, err := s.Pop()
		if err != nil {
			return err
		}
		l, ok := v.(*value.List)
		if !ok || !l.IsQuotation() {
			return value.ArgumentError{Message: "help expects a quotation holding exactly one word"}
		}
		var found value.Callable
		count := 0
		for _, it := range l.Items {
			if c, ok := it.(value.Callable); ok {
				found = c
				count++
			}
		}
		if count != 1 {
			return value.ArgumentError{Message: "help expects a quotation holding exactly one word"}
		}
		doc, _ := value.Docstring(found)
		fmt.Fprintln(out, value.Dedent(doc))
		return nil
	})
}
