// Command angelrt exposes the runtime primitives on the command line and
// runs conformance suites against them.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool

	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "angelrt",
	Short: "Runtime primitives for translated programs",
	Long: `angelrt drives the runtime support library from the shell.

Each subcommand calls one primitive (print, seq, split, read) exactly as a
translated program would. The conform subcommand replays a YAML suite of
golden cases and exits non-zero if any case disagrees.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(printCmd)
	rootCmd.AddCommand(seqCmd)
	rootCmd.AddCommand(splitCmd)
	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(conformCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
