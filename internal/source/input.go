// Package source provides a named, line-tracked rune reader queue used by
// the lexer to read program text while keeping position information for
// error messages.
package source

import (
	"bytes"
	"fmt"
	"io"

	"github.com/boklang/bok/internal/runeio"
)

// Location names a line within a named input stream.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Line combines a Location with the bytes scanned so far on it.
type Line struct {
	Location
	bytes.Buffer
}

func (il Line) String() string { return fmt.Sprintf("%v %q", il.Location, il.Buffer.String()) }

// Input implements sequential rune reading through a Queue of one or more
// input streams, feeding the next stream once the current one is exhausted.
// Both the current (Scan) and last completed (Last) line are tracked so a
// ParseError can report "file:line" context.
type Input struct {
	rr    runeio.Reader
	Queue []io.Reader
	Last  Line
	Scan  Line
}

// Push appends a reader to the end of the input queue, to be read once all
// prior readers are exhausted.
func (in *Input) Push(r io.Reader) { in.Queue = append(in.Queue, r) }

// ReadRune reads one rune from the current input stream, appending it to the
// in-progress Scan line and rolling Scan over to Last after a line feed.
func (in *Input) ReadRune() (rune, int, error) {
	if in.rr == nil && !in.nextIn() {
		return 0, 0, io.EOF
	}

	r, n, err := in.rr.ReadRune()
	if r == '\n' {
		in.nextLine()
	} else if r != 0 {
		in.Scan.WriteRune(r)
	}

	if r != 0 {
		return r, n, nil
	}
	if err == io.EOF && in.nextIn() {
		err = nil
	}
	return 0, n, err
}

// ReadRuneLoop reads the next non-NUL rune, transparently advancing through
// the Queue on each exhausted stream. Returns io.EOF once the Queue and
// current stream are both exhausted.
func (in *Input) ReadRuneLoop() (rune, error) {
	for {
		r, _, err := in.ReadRune()
		if r != 0 {
			return r, nil
		}
		if err != nil {
			return 0, err
		}
	}
}

func (in *Input) nextLine() {
	in.Last.Reset()
	in.Last.Name = in.Scan.Name
	in.Last.Line = in.Scan.Line
	in.Last.Write(in.Scan.Bytes())
	in.Scan.Reset()
	in.Scan.Line++
}

func (in *Input) nextIn() bool {
	in.nextLine()
	if in.rr != nil {
		if cl, ok := in.rr.(io.Closer); ok {
			cl.Close()
		}
		in.rr = nil
	}
	if len(in.Queue) > 0 {
		r := in.Queue[0]
		in.Queue = in.Queue[1:]
		in.rr = runeio.NewReader(r)
		in.Scan.Name = nameOf(r)
		in.Scan.Line = 1
	}
	return in.rr != nil
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}

// NamedReader wraps an io.Reader with an explicit Name, for feeding inline
// text (e.g. the std library source, or a REPL line) through Input with a
// sensible location name.
type NamedReader struct {
	io.Reader
	Name_ string
}

// Name implements the Name() string convention nameOf looks for.
func (nr NamedReader) Name() string { return nr.Name_ }
