package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bespaarplan/rekenkern/internal/config"
	"github.com/bespaarplan/rekenkern/internal/engine"
)

// newScenariosCmd builds the scenarios command: project a base annual
// saving under the conservative/moderate/high energy price trajectories.
func newScenariosCmd() *cobra.Command {
	var years int

	cmd := &cobra.Command{
		Use:   "scenarios <annual-saving-eur>",
		Short: "Project savings under energy price scenarios",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var annual float64
			if _, err := fmt.Sscanf(args[0], "%f", &annual); err != nil {
				return fmt.Errorf("parsing annual saving %q: %w", args[0], err)
			}

			factorsPath, _ := cmd.Flags().GetString("factors")
			factors, err := config.LoadFactors(factorsPath)
			if err != nil {
				return err
			}

			eng := engine.New(
				engine.WithFactors(factors),
				engine.WithLogger(logger),
			)

			out, err := json.MarshalIndent(eng.PriceScenarios(annual, years), "", "  ")
			if err != nil {
				return err
			}
			cmd.Println(string(out))
			return nil
		},
	}

	cmd.Flags().IntVar(&years, "years", 20, "projection horizon in years")

	return cmd
}
