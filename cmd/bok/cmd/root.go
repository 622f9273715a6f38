package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/boklang/bok/internal/panicerr"
	"github.com/boklang/bok/internal/value"
)

// Version is overwritten by -ldflags at release build time.
var Version = "0.1.0-dev"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:     "bok",
	Short:   "A concatenative, stack-based scripting language",
	Version: Version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a bok.yaml config file")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExitCode maps an error returned from Execute to a process exit code:
// 0 for no error, the requested code for an ExitSignal (the `exit` word),
// 2 for a recovered panic/internal error, 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitSig value.ExitSignal
	if errors.As(err, &exitSig) {
		return exitSig.Code
	}
	if panicerr.IsPanic(err) {
		return 2
	}
	return 1
}
