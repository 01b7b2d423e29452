// Package cli wires parsing, distances, search, logging and metrics into
// the single run performed by the valveflow command.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/valveflow/apsp"
	"github.com/katalvlaran/valveflow/internal/config"
	"github.com/katalvlaran/valveflow/internal/metrics"
	"github.com/katalvlaran/valveflow/network"
	"github.com/katalvlaran/valveflow/search"
)

// Report is the outcome of one run.
type Report struct {
	RunID  string
	Valves int
	Single search.Result
	Dual   search.Result
}

// OpenInput opens path for reading; "" and "-" mean stdin.
func OpenInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}

	return f, nil
}

// Solve parses the network from in and runs the single and dual searches
// configured by cfg. rec may be nil.
func Solve(ctx context.Context, cfg config.Config, in io.Reader, log *slog.Logger, rec *metrics.Recorder) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	timeout, _ := cfg.TimeoutDuration() // validated above
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	rep := Report{RunID: uuid.NewString()}
	log = log.With("run_id", rep.RunID)

	net, err := network.Parse(in)
	if err != nil {
		return rep, fmt.Errorf("parse network: %w", err)
	}
	rep.Valves = net.Len()
	start, err := net.ID(cfg.Start)
	if err != nil {
		return rep, fmt.Errorf("start valve: %w", err)
	}

	method, _ := apsp.ParseMethod(cfg.Distances) // validated above
	began := time.Now()
	dist, err := apsp.Compute(net, method)
	if err != nil {
		return rep, fmt.Errorf("distances: %w", err)
	}
	log.Debug("distances ready", "method", method.String(), "valves", net.Len(), "elapsed", time.Since(began))

	runs := []struct {
		mode   string
		fn     func(*network.Network, *apsp.Matrix, int, int, ...search.Option) (search.Result, error)
		budget int
		out    *search.Result
	}{
		{"single", search.Single, cfg.SingleBudget, &rep.Single},
		{"dual", search.Dual, cfg.DualBudget, &rep.Dual},
	}
	for _, run := range runs {
		opts := []search.Option{
			search.WithContext(ctx),
			search.WithMaxStates(cfg.MaxStates),
			search.WithLogger(log),
		}
		if rec != nil {
			opts = append(opts, rec.Options(run.mode)...)
		}

		began = time.Now()
		res, err := run.fn(net, dist, start, run.budget, opts...)
		elapsed := time.Since(began)
		*run.out = res
		if rec != nil {
			rec.Observe(run.mode, res, elapsed)
		}
		if err != nil {
			log.Error("search failed", "mode", run.mode, "best_so_far", res.Best, "error", err)
			return rep, fmt.Errorf("%s search: %w", run.mode, err)
		}
		log.Info("search finished",
			"mode", run.mode,
			"budget", run.budget,
			"best", res.Best,
			"expanded", res.Expanded,
			"elapsed", elapsed,
		)
	}

	return rep, nil
}
