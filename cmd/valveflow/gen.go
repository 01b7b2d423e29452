package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/valveflow/network"
	"github.com/katalvlaran/valveflow/topology"
)

func newGenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a valve network in the solve input format",
		Args:  cobra.NoArgs,
		RunE:  runGen,
	}
	f := cmd.Flags()
	f.String("shape", "grid", "path, cycle, star, grid, complete or random")
	f.Int("valves", 10, "valve count for every shape but grid")
	f.Int("rows", 3, "grid rows")
	f.Int("cols", 3, "grid columns")
	f.Float64("p", 0.3, "tunnel probability for the random shape")
	f.Int64("seed", 1, "random seed")
	f.Int("min-flow", 0, "smallest flow rate drawn")
	f.Int("max-flow", 25, "largest flow rate drawn")

	return cmd
}

func shapeConstructor(cmd *cobra.Command) (topology.Constructor, error) {
	f := cmd.Flags()
	shape, _ := f.GetString("shape")
	n, _ := f.GetInt("valves")
	switch shape {
	case "path":
		return topology.Path(n), nil
	case "cycle":
		return topology.Cycle(n), nil
	case "star":
		return topology.Star(n), nil
	case "complete":
		return topology.Complete(n), nil
	case "grid":
		rows, _ := f.GetInt("rows")
		cols, _ := f.GetInt("cols")
		return topology.Grid(rows, cols), nil
	case "random":
		p, _ := f.GetFloat64("p")
		return topology.RandomSparse(n, p), nil
	default:
		return nil, fmt.Errorf("unknown shape %q", shape)
	}
}

func runGen(cmd *cobra.Command, _ []string) error {
	ctor, err := shapeConstructor(cmd)
	if err != nil {
		return err
	}
	f := cmd.Flags()
	seed, _ := f.GetInt64("seed")
	lo, _ := f.GetInt("min-flow")
	hi, _ := f.GetInt("max-flow")

	net, err := topology.Build([]topology.Option{topology.WithSeed(seed), topology.WithUniformFlow(lo, hi)}, ctor)
	if err != nil {
		return err
	}

	return network.Write(cmd.OutOrStdout(), net)
}
