package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/valveflow/internal/cli"
	"github.com/katalvlaran/valveflow/internal/config"
	"github.com/katalvlaran/valveflow/internal/logging"
	"github.com/katalvlaran/valveflow/internal/metrics"
)

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [input]",
		Short: "Solve a valve network read from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSolve,
	}
	f := cmd.Flags()
	f.String("start", "", "valve both searches start at (default AA)")
	f.Int("single-budget", 0, "minutes for the one-agent search (default 30)")
	f.Int("dual-budget", 0, "minutes for the two-agent search (default 26)")
	f.String("distances", "", "all-pairs method: floyd-warshall or bfs")
	f.Int("max-states", 0, "cap on expanded states per search, 0 for none")
	f.String("timeout", "", "wall-clock limit for the whole run, e.g. 30s")
	f.String("metrics-out", "", "write Prometheus metrics to this textfile")

	return cmd
}

// loadConfig reads --config if given and applies every flag the user set.
func loadConfig(cmd *cobra.Command, args []string) (config.Config, error) {
	cfg := config.Default()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
	}
	if len(args) > 0 {
		cfg.Input = args[0]
	}

	cmd.Flags().Visit(func(fl *pflag.Flag) {
		switch fl.Name {
		case "log-level":
			cfg.LogLevel = fl.Value.String()
		case "start":
			cfg.Start = fl.Value.String()
		case "single-budget":
			cfg.SingleBudget, _ = cmd.Flags().GetInt(fl.Name)
		case "dual-budget":
			cfg.DualBudget, _ = cmd.Flags().GetInt(fl.Name)
		case "distances":
			cfg.Distances = fl.Value.String()
		case "max-states":
			cfg.MaxStates, _ = cmd.Flags().GetInt(fl.Name)
		case "timeout":
			cfg.Timeout = fl.Value.String()
		case "metrics-out":
			cfg.MetricsOut = fl.Value.String()
		}
	})

	return cfg, cfg.Validate()
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	level, _ := logging.ParseLevel(cfg.LogLevel) // validated by loadConfig
	log := logging.New(cmd.ErrOrStderr(), level)

	in, err := cli.OpenInput(cfg.Input)
	if err != nil {
		return err
	}
	defer in.Close()

	var rec *metrics.Recorder
	if cfg.MetricsOut != "" {
		rec = metrics.New()
	}

	rep, solveErr := cli.Solve(cmd.Context(), cfg, in, log, rec)
	if rec != nil {
		if err = rec.WriteTextfile(cfg.MetricsOut); err != nil {
			log.Warn("metrics not written", "path", cfg.MetricsOut, "error", err)
		}
	}
	if solveErr != nil {
		return solveErr
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "single: %d\n", rep.Single.Best)
	fmt.Fprintf(out, "dual: %d\n", rep.Dual.Best)
	log.Debug("run complete", "run_id", rep.RunID, slog.Int("valves", rep.Valves))

	return nil
}
