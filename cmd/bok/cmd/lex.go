package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/boklang/bok/internal/lexer"
	"github.com/boklang/bok/internal/source"
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a bok file or expression and print the token stream",
	Args:  cobra.MaximumNArgs(1),
	RunE:  lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading a file")
}

func lexScript(_ *cobra.Command, args []string) error {
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

	for {
		tok, err := lex.Next()
		if err != nil {
			return fmt.Errorf("lex: %w", err)
		}
		fmt.Printf("%-10s %-12q @%s\n", tok.Kind, tok.Text, tok.Pos)
		if tok.Kind == lexer.EOF {
			return nil
		}
	}
}

func sourceFor(eval string, args []string) (string, io.Reader, error) {
	if eval != "" {
		return "<eval>", strings.NewReader(eval), nil
	}
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return "", nil, fmt.Errorf("%w", err)
		}
		return args[0], f, nil
	}
	return "", nil, fmt.Errorf("provide a file path or -e for inline code")
}
