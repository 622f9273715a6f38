package cmd

import (
	"fmt"
	"os"

	"github.com/maruel/natural"
	"github.com/spf13/cobra"

	"github.com/boklang/bok/internal/builtins"
	"github.com/boklang/bok/internal/value"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "List every builtin word, naturally sorted, with docstrings",
	Args:  cobra.NoArgs,
	RunE:  listWords,
}

func init() {
	rootCmd.AddCommand(wordsCmd)
}

func listWords(_ *cobra.Command, _ []string) error {
	d := builtins.New(os.Stdout, nil)
	names := d.Names()
	natural.Sort(names)

	for _, name := range names {
		c, _ := d.Get(name)
		doc, ok := value.Docstring(c)
		if ok {
			fmt.Printf("%-12s %s\n", name, doc)
		} else {
			fmt.Println(name)
		}
	}
	return nil
}
