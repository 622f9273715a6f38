package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/boklang/bok/internal/config"
	"github.com/boklang/bok/internal/flushio"
	"github.com/boklang/bok/internal/importer"
	"github.com/boklang/bok/internal/logio"
	"github.com/boklang/bok/internal/machine"
	"github.com/boklang/bok/internal/value"
)

var (
	evalExpr  string
	traceFlag bool
	dumpFlag  bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a bok program from a file or an inline expression",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "run inline code instead of reading a file")
	runCmd.Flags().BoolVar(&traceFlag, "trace", false, "trace every executed word to stderr")
	runCmd.Flags().BoolVar(&dumpFlag, "dump", false, "pretty-print the final stack and dictionary to stderr")
}

func runScript(_ *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	var src *os.File
	var name string
	if evalExpr != "" {
		name = "<eval>"
	} else if len(args) == 1 {
		name = args[0]
		f, err := os.Open(name)
		if err != nil {
			return fmt.Errorf("run: %w", err)
		}
		defer f.Close()
		src = f
	} else {
		return fmt.Errorf("run: provide a file path or -e for inline code")
	}

	var opts []machine.Option
	opts = append(opts, machine.WithImporter(importer.New(cfg.LibraryPath)))
	if cfg.MemLimit > 0 {
		opts = append(opts, machine.WithMaxDepth(cfg.MemLimit))
	}
	if traceFlag || cfg.Trace {
		var logger logio.Logger
		logger.SetOutput(logio.NopCloser(os.Stderr))
		tracef := logger.Leveledf("TRACE")
		opts = append(opts, machine.WithTrace(func(op value.Value) {
			tracef("%s", op.Repr())
		}))
		// Tee program output into the same leveled stream as the trace
		// lines, so OUT and TRACE lines stay in the order they occurred
		// instead of racing across separate stdout/stderr streams.
		outf := logger.Leveledf("OUT")
		opts = append(opts, machine.WithOutput(flushio.WriteFlushers(
			flushio.NewWriteFlusher(os.Stdout),
			flushio.NewWriteFlusher(&logio.Writer{Logf: outf}),
		)))
	}
	m := machine.New(opts...)

	var runErr error
	if evalExpr != "" {
		runErr = m.RunStatement(name, strings.NewReader(evalExpr))
	} else {
		runErr = m.RunStatement(name, src)
	}

	if dumpFlag {
		pretty.Fprintf(os.Stderr, "stack:\n%# v\ndictionary:\n%# v\n", m.Stack.Snapshot(), m.Dict.SortedNames())
	}
	return runErr
}
