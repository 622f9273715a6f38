// Command bok is the interpreter's CLI: a REPL, a one-shot runner, and a
// handful of debug subcommands (lex, parse, words).
package main

import (
	"fmt"
	"os"

	"github.com/boklang/bok/cmd/bok/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cmd.ExitCode(err))
	}
}
