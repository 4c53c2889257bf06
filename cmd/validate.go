package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/replenish/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configuration without solving",
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Problem.ToModel().Validate(); err != nil {
		return fmt.Errorf("problem: %w", err)
	}
	if err := cfg.Costs.ToModel().Validate(); err != nil {
		return fmt.Errorf("costs: %w", err)
	}
	cmd.Printf("configuration valid: %d periods, storage %d, bound policy %s\n",
		len(cfg.Problem.Demand), cfg.Problem.MaxStorage, cfg.Solver.Bound())
	return nil
}
