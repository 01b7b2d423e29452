package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "valveflow",
		Short:         "valveflow finds the best valve opening plan",
		Long:          `valveflow searches a valve network for the largest pressure release one agent, or two agents sharing the clock, can achieve within a minute budget.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "YAML or TOML run configuration")
	root.PersistentFlags().String("log-level", "", "debug, info, warn or error")

	solve := newSolveCmd()
	root.AddCommand(solve, newGenCmd())
	// solve is the default action
	root.Args = solve.Args
	root.RunE = solve.RunE
	root.Flags().AddFlagSet(solve.Flags())

	return root
}
