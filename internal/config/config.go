// Package config loads the run configuration of the valveflow command.
//
// Files ending in .toml are decoded with BurntSushi/toml; anything else is
// treated as YAML. Command-line flags override file values.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/valveflow/apsp"
	"github.com/katalvlaran/valveflow/internal/logging"
)

// ErrInvalid is returned by Validate for an unusable configuration.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full set of run parameters.
type Config struct {
	// Input is the valve description file; "-" or "" reads stdin.
	Input string `yaml:"input" toml:"input"`

	// Start names the valve both searches begin at.
	Start string `yaml:"start" toml:"start"`

	// SingleBudget is the minute budget of the one-agent search.
	SingleBudget int `yaml:"single_budget" toml:"single_budget"`

	// DualBudget is the minute budget of the two-agent search.
	DualBudget int `yaml:"dual_budget" toml:"dual_budget"`

	// Distances selects the all-pairs method: floyd-warshall or bfs.
	Distances string `yaml:"distances" toml:"distances"`

	// MaxStates caps the expansions of each search; 0 means no cap.
	MaxStates int `yaml:"max_states" toml:"max_states"`

	// Timeout bounds the whole run, e.g. "30s"; empty or "0" means none.
	Timeout string `yaml:"timeout" toml:"timeout"`

	// LogLevel is debug, info, warn or error.
	LogLevel string `yaml:"log_level" toml:"log_level"`

	// MetricsOut, if set, receives Prometheus metrics in textfile format.
	MetricsOut string `yaml:"metrics_out" toml:"metrics_out"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Input:        "-",
		Start:        "AA",
		SingleBudget: 30,
		DualBudget:   26,
		Distances:    apsp.MethodFloydWarshall.String(),
		LogLevel:     "info",
	}
}

// Load reads path on top of Default. Keys absent from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return cfg, fmt.Errorf("read config file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err = toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("decode toml config %s: %w", path, err)
		}
	default:
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("decode yaml config %s: %w", path, err)
		}
	}

	return cfg, nil
}

// TimeoutDuration parses Timeout; empty means zero.
func (c Config) TimeoutDuration() (time.Duration, error) {
	if strings.TrimSpace(c.Timeout) == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: timeout %q: %v", ErrInvalid, c.Timeout, err)
	}

	return d, nil
}

// Validate reports the first unusable field.
func (c Config) Validate() error {
	switch {
	case c.Start == "":
		return fmt.Errorf("%w: start valve is empty", ErrInvalid)
	case c.SingleBudget < 0:
		return fmt.Errorf("%w: single_budget %d < 0", ErrInvalid, c.SingleBudget)
	case c.DualBudget < 0:
		return fmt.Errorf("%w: dual_budget %d < 0", ErrInvalid, c.DualBudget)
	case c.MaxStates < 0:
		return fmt.Errorf("%w: max_states %d < 0", ErrInvalid, c.MaxStates)
	}
	if _, err := apsp.ParseMethod(c.Distances); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	d, err := c.TimeoutDuration()
	if err != nil {
		return err
	}
	if d < 0 {
		return fmt.Errorf("%w: negative timeout %s", ErrInvalid, d)
	}

	return nil
}
