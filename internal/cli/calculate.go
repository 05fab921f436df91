package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bespaarplan/rekenkern/internal/config"
	"github.com/bespaarplan/rekenkern/internal/engine"
)

// newCalculateCmd builds the calculate command: read one or more input
// documents, run the engine on each, and write the metrics documents.
//
// Calculations for different proposals share no state, so multiple input
// files run concurrently.
func newCalculateCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "calculate <input.json> [more-inputs...]",
		Short: "Compute comprehensive metrics for proposal input documents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			factorsPath, _ := cmd.Flags().GetString("factors")
			factors, err := config.LoadFactors(factorsPath)
			if err != nil {
				return err
			}

			eng := engine.New(
				engine.WithFactors(factors),
				engine.WithLogger(logger),
			)

			// Single input goes to stdout; batches go to files so
			// the outputs stay separable.
			if len(args) == 1 && outDir == "" {
				return runOne(cmd, eng, args[0], "")
			}

			if outDir != "" {
				if err := os.MkdirAll(outDir, 0o755); err != nil {
					return fmt.Errorf("creating output directory: %w", err)
				}
			}

			var g errgroup.Group
			var mu sync.Mutex
			for _, path := range args {
				path := path
				g.Go(func() error {
					if outDir == "" {
						mu.Lock()
						defer mu.Unlock()
					}
					return runOne(cmd, eng, path, outDir)
				})
			}
			return g.Wait()
		},
	}

	cmd.Flags().StringVarP(&outDir, "out-dir", "o", "", "write each result to <out-dir>/<input>.metrics.json instead of stdout")

	return cmd
}

// runOne calculates a single input document and writes the result.
func runOne(cmd *cobra.Command, eng *engine.Engine, path, outDir string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading input %s: %w", path, err)
	}

	var input engine.Input
	if err := json.Unmarshal(data, &input); err != nil {
		return fmt.Errorf("parsing input %s: %w", path, err)
	}

	metrics, err := eng.Calculate(input)
	if err != nil {
		return fmt.Errorf("calculating %s: %w", path, err)
	}

	out, err := json.MarshalIndent(metrics, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result for %s: %w", path, err)
	}

	if outDir == "" {
		cmd.Println(string(out))
		return nil
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	target := filepath.Join(outDir, base+".metrics.json")
	if err := os.WriteFile(target, out, 0o644); err != nil {
		return fmt.Errorf("writing result %s: %w", target, err)
	}

	logger.Info().
		Str("component", "cli").
		Str("input", path).
		Str("output", target).
		Msg("metrics written")
	return nil
}
