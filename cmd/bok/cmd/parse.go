package cmd

import (
	"fmt"
	"io"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/boklang/bok/internal/lexer"
	"github.com/boklang/bok/internal/parser"
	"github.com/boklang/bok/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a bok file or expression and print its scoped statement tree",
	Args:  cobra.MaximumNArgs(1),
	RunE:  parseScript,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "parse inline code instead of reading a file")
}

func parseScript(_ *cobra.Command, args []string) error {
	name, r, err := sourceFor(evalExpr, args)
	if err != nil {
		return err
	}
	if rc, ok := r.(io.Closer); ok {
		defer rc.Close()
	}

	var in source.Input
	in.Push(source.NamedReader{Reader: r, Name_: name})
	lex := lexer.New(&in)
	p := parser.New(lex)

	prog, err := p.ParseProgram()
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	parser.ResolveScopes(prog)

	for _, stmt := range prog.Statements {
		fmt.Printf("%# v\n", pretty.Formatter(stmt))
	}
	return nil
}
