// Package commands implements the tandupscan command-line driver: a thin,
// non-core collaborator that builds engine.RunConfig values from flags and
// writes the resulting record.RunSummary to stdout or a file. No domain
// validation lives here; engine.RunConfig.Validate is the single source of
// truth, so the CLI can reject bad input but never silently accept it.
package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "tandupscan",
	Short: "tandupscan scores candidate tandem-duplication boundaries",
	Long: `tandupscan runs the Sankoff-parsimony tandem-duplication scoring
engine over a set of aligned sequences, reporting the lowest-cost candidate
segment-pairs as a fixed-width text table.`,
}

// Execute adds all child commands to the root command and parses flags.
// It is called by main.main and should be called exactly once.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	cobra.OnInitialize(initLogger)
}

func initLogger() {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		level = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// AddCommand allows subcommands defined in other files to register
// themselves against rootCmd from their own init().
func AddCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}
