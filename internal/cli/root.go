// Package cli wires the calculation engine behind a cobra command tree.
// The CLI is thin plumbing: it reads resolved input documents, runs the
// pure engine, and emits the metrics document as JSON.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bespaarplan/rekenkern/internal/config"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewRootCmd creates the root cobra command for the bespaarplan CLI.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bespaarplan",
		Short:   "Retrofit savings calculation engine",
		Long:    "Bespaarplan: compute financial and environmental projections for home-energy-retrofit proposals",
		Version: ver,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level, _ := cmd.Flags().GetString("log-level")
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				level = "debug"
			}
			// Console formatting only when a human is watching.
			config.InitLogger(level, isTerminal(os.Stderr))
			logger = config.GetLogger()
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("log-level", "info", "log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().String("factors", "", "YAML file with factor-table overrides")

	cmd.AddCommand(newCalculateCmd())
	cmd.AddCommand(newScenariosCmd())

	return cmd
}
