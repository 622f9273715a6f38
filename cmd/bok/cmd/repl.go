package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/boklang/bok/internal/config"
	"github.com/boklang/bok/internal/flushio"
	"github.com/boklang/bok/internal/importer"
	"github.com/boklang/bok/internal/logio"
	"github.com/boklang/bok/internal/machine"
	"github.com/boklang/bok/internal/panicerr"
	"github.com/boklang/bok/internal/value"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive bok session",
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "bok> ",
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "bye",
	})
	if err != nil {
		return fmt.Errorf("repl: %w", err)
	}
	defer rl.Close()

	errStyle := termenv.String("Error:").Foreground(termenv.ANSIRed).Bold()

	var opts []machine.Option
	opts = append(opts, machine.WithImporter(importer.New(cfg.LibraryPath)))
	if cfg.MemLimit > 0 {
		opts = append(opts, machine.WithMaxDepth(cfg.MemLimit))
	}
	if cfg.Trace {
		var logger logio.Logger
		logger.SetOutput(logio.NopCloser(cmd.ErrOrStderr()))
		tracef := logger.Leveledf("TRACE")
		opts = append(opts, machine.WithTrace(func(op value.Value) {
			tracef("%s", op.Repr())
		}))
		outf := logger.Leveledf("OUT")
		opts = append(opts, machine.WithOutput(flushio.WriteFlushers(
			flushio.NewWriteFlusher(cmd.OutOrStdout()),
			flushio.NewWriteFlusher(&logio.Writer{Logf: outf}),
		)))
	}
	m := machine.New(opts...)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if runErr := m.RunStatement("<repl>", strings.NewReader(line)); runErr != nil {
			var exitSig value.ExitSignal
			if errors.As(runErr, &exitSig) {
				return exitSig
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", errStyle, describeReplError(runErr))
		}
	}
}

func describeReplError(err error) string {
	if panicerr.IsPanic(err) {
		return fmt.Sprintf("internal error: %v", err)
	}
	return err.Error()
}
