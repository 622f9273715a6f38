package builtins

import (
	"bufio"
	"fmt"
	"io"

	"github.com/boklang/bok/internal/value"
)

func registerIO(d *value.Dictionary, out io.Writer, in io.Reader) {
	var buffered *bufio.Reader
	if in != nil {
		buffered = bufio.NewReader(in)
	}

	reg(d, "print", "( a -- ) print without a trailing newline", func(s *value.Stack) error {
		v, err := s.Pop()
		if err != nil {
			return err
		}
		fmt.Fprint(out, value.Display(v))
		return nil
	})
	reg(d, "println", "( a -- ) print with a trailing newline", func(s *value.Stack) error {
		v, err := s.Pop()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, value.Display(v))
		return nil
	})
	reg(d, "stack", "( -- ) pretty-print the whole operand stack", func(s *value.Stack) error {
		fmt.Fprintln(out, value.FormatStack(s.Snapshot()))
		return nil
	})
	reg(d, "input", "( -- str ) read one line from the input stream", func(s *value.Stack) error {
		if buffered == nil {
			return value.ArgumentError{Message: "no input stream configured"}
		}
		line, err := buffered.ReadString('\n')
		if err != nil && line == "" {
			return value.ArgumentError{Message: "input: " + err.Error()}
		}
		for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
			line = line[:len(line)-1]
		}
		s.Push(value.Str(line))
		return nil
	})
}
