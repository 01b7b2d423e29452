package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valveflow/internal/config"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "AA", cfg.Start)
	assert.Equal(t, 30, cfg.SingleBudget)
	assert.Equal(t, 26, cfg.DualBudget)
	assert.Equal(t, "floyd-warshall", cfg.Distances)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "run.yaml", `
input: valves.txt
start: BB
single_budget: 20
distances: bfs
timeout: 1500ms
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "valves.txt", cfg.Input)
	assert.Equal(t, "BB", cfg.Start)
	assert.Equal(t, 20, cfg.SingleBudget)
	assert.Equal(t, 26, cfg.DualBudget, "absent keys keep defaults")
	assert.Equal(t, "bfs", cfg.Distances)

	d, err := cfg.TimeoutDuration()
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, d)
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "run.toml", `
start = "CC"
dual_budget = 12
max_states = 5000
log_level = "debug"
metrics_out = "/tmp/valveflow.prom"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "CC", cfg.Start)
	assert.Equal(t, 30, cfg.SingleBudget)
	assert.Equal(t, 12, cfg.DualBudget)
	assert.Equal(t, 5000, cfg.MaxStates)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/valveflow.prom", cfg.MetricsOut)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "bad.toml", "start = [unterminated"))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "bad.yml", "start: [unterminated"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	mutate := map[string]func(*config.Config){
		"empty start":      func(c *config.Config) { c.Start = "" },
		"negative single":  func(c *config.Config) { c.SingleBudget = -1 },
		"negative dual":    func(c *config.Config) { c.DualBudget = -1 },
		"negative states":  func(c *config.Config) { c.MaxStates = -1 },
		"unknown method":   func(c *config.Config) { c.Distances = "dijkstra" },
		"unknown level":    func(c *config.Config) { c.LogLevel = "loud" },
		"bad timeout":      func(c *config.Config) { c.Timeout = "soon" },
		"negative timeout": func(c *config.Config) { c.Timeout = "-1s" },
	}
	for name, fn := range mutate {
		cfg := config.Default()
		fn(&cfg)
		assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid, name)
	}
}
