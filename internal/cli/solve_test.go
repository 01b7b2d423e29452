package cli_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valveflow/internal/cli"
	"github.com/katalvlaran/valveflow/internal/config"
	"github.com/katalvlaran/valveflow/internal/logging"
	"github.com/katalvlaran/valveflow/internal/metrics"
	"github.com/katalvlaran/valveflow/network"
	"github.com/katalvlaran/valveflow/search"
)

func openSample(t *testing.T) *os.File {
	t.Helper()
	f, err := os.Open("testdata/sample.txt")
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	return f
}

func TestSolve_Sample(t *testing.T) {
	for _, method := range []string{"floyd-warshall", "bfs"} {
		cfg := config.Default()
		cfg.Distances = method
		rec := metrics.New()

		rep, err := cli.Solve(context.Background(), cfg, openSample(t), logging.NewNop(), rec)
		require.NoError(t, err, method)

		assert.Equal(t, 10, rep.Valves)
		assert.Equal(t, 1651, rep.Single.Best, method)
		assert.Equal(t, 1707, rep.Dual.Best, method)
		_, err = uuid.Parse(rep.RunID)
		assert.NoError(t, err)
	}
}

func TestSolve_NilRecorder(t *testing.T) {
	cfg := config.Default()
	cfg.SingleBudget, cfg.DualBudget = 10, 10
	rep, err := cli.Solve(context.Background(), cfg, openSample(t), logging.NewNop(), nil)
	require.NoError(t, err)
	assert.Positive(t, rep.Single.Best)
	assert.GreaterOrEqual(t, rep.Dual.Best, rep.Single.Best)
}

func TestSolve_Errors(t *testing.T) {
	ctx := context.Background()
	log := logging.NewNop()

	cfg := config.Default()
	cfg.Start = "ZZ"
	_, err := cli.Solve(ctx, cfg, openSample(t), log, nil)
	assert.ErrorIs(t, err, network.ErrUnknownValve)

	cfg = config.Default()
	cfg.SingleBudget = -1
	_, err = cli.Solve(ctx, cfg, openSample(t), log, nil)
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = cli.Solve(ctx, config.Default(), strings.NewReader("Valve AA leaks\n"), log, nil)
	assert.ErrorIs(t, err, network.ErrMalformedLine)

	cfg = config.Default()
	cfg.MaxStates = 5
	rep, err := cli.Solve(ctx, cfg, openSample(t), log, nil)
	assert.ErrorIs(t, err, search.ErrStateBudget)
	assert.Equal(t, 5, rep.Single.Expanded)
}

func TestOpenInput(t *testing.T) {
	rc, err := cli.OpenInput("-")
	require.NoError(t, err)
	require.NoError(t, rc.Close())

	_, err = cli.OpenInput(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	rc, err = cli.OpenInput("testdata/sample.txt")
	require.NoError(t, err)
	defer rc.Close()
	net, err := network.Parse(rc)
	require.NoError(t, err)
	assert.Equal(t, 10, net.Len())
}
