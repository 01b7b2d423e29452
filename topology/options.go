// SPDX-License-Identifier: MIT
// Package: valveflow/topology
//
// options.go - functional options, id schemes and flow policies.

package topology

import (
	"fmt"
	"math/rand"
)

// IDFn names the valve with the given creation index.
type IDFn func(idx int) string

// FlowFn returns the flow rate of the valve with creation index idx (idx ≥ 1).
type FlowFn func(idx int, rng *rand.Rand) int

// Option configures Build.
type Option func(*config)

type config struct {
	idFn   IDFn
	flowFn FlowFn
	rng    *rand.Rand
	// randFlow marks a flow policy that draws from rng.
	randFlow bool
	err      error
}

func newConfig(opts ...Option) config {
	cfg := config{
		idFn:   DoubleLetterID,
		flowFn: func(int, *rand.Rand) int { return 0 },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed attaches a seeded RNG for reproducible draws.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand attaches a caller-owned RNG. nil is ignored.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithIDScheme sets the valve naming scheme. nil is ignored.
func WithIDScheme(fn IDFn) Option {
	return func(c *config) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithFlowFn sets the flow policy. fn receives the configured RNG, which is
// nil unless WithSeed or WithRand is given. nil is ignored.
func WithFlowFn(fn FlowFn) Option {
	return func(c *config) {
		if fn != nil {
			c.flowFn = fn
			c.randFlow = false
		}
	}
}

// WithConstantFlow gives every valve but the first the flow v (v ≥ 0).
func WithConstantFlow(v int) Option {
	return func(c *config) {
		if v < 0 {
			c.err = fmt.Errorf("%w: constant flow %d < 0", ErrOptionViolation, v)
			return
		}
		c.flowFn = func(int, *rand.Rand) int { return v }
		c.randFlow = false
	}
}

// WithUniformFlow draws flows uniformly from [lo, hi]. Requires an RNG.
func WithUniformFlow(lo, hi int) Option {
	return func(c *config) {
		if lo < 0 || hi < lo {
			c.err = fmt.Errorf("%w: uniform flow [%d,%d]", ErrOptionViolation, lo, hi)
			return
		}
		c.flowFn = func(_ int, rng *rand.Rand) int { return lo + rng.Intn(hi-lo+1) }
		c.randFlow = true
	}
}

// DoubleLetterID names valves AA, AB, …, AZ, BA, … (676 names), then falls
// back to ExcelColumnID past ZZ.
func DoubleLetterID(idx int) string {
	if idx < 0 || idx >= 26*26 {
		return ExcelColumnID(idx)
	}

	return string([]byte{byte('A' + idx/26), byte('A' + idx%26)})
}

// ExcelColumnID returns spreadsheet column names: 0→"A", 25→"Z", 26→"AA".
// Negative indices map to "".
func ExcelColumnID(idx int) string {
	if idx < 0 {
		return ""
	}
	var out []byte
	for i := idx; i >= 0; i = i/26 - 1 {
		out = append(out, byte('A'+i%26))
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return string(out)
}
