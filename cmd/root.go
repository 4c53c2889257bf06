package cmd

import (
	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "replenish",
	Short: "Deterministic replenishment planner",
	Long: "replenish computes the cost-optimal ordering schedule for a " +
		"finite-horizon inventory problem and compares it to a greedy baseline.",
	RunE: runSolve,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
	rootCmd.AddCommand(solveCmd, validateCmd)
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }
