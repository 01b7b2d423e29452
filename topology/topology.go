// SPDX-License-Identifier: MIT
// Package: valveflow/topology
//
// topology.go - Build entry point and the adjacency sketch shared by constructors.

package topology

import (
	"fmt"

	"github.com/katalvlaran/valveflow/network"
)

// Constructor adds valves and tunnels to a sketch.
type Constructor func(s *sketch, cfg config) error

// sketch is the mutable adjacency collected before validation.
type sketch struct {
	order []string
	exits map[string][]string
	seen  map[[2]string]bool
}

func newSketch() *sketch {
	return &sketch{exits: make(map[string][]string), seen: make(map[[2]string]bool)}
}

// valve ensures name exists; re-adding is a no-op.
func (s *sketch) valve(name string) {
	if _, ok := s.exits[name]; ok {
		return
	}
	s.order = append(s.order, name)
	s.exits[name] = nil
}

// link adds the tunnel a—b in both directions once. Self-tunnels are dropped.
func (s *sketch) link(a, b string) {
	s.valve(a)
	s.valve(b)
	if a == b || s.seen[[2]string{a, b}] {
		return
	}
	s.seen[[2]string{a, b}] = true
	s.seen[[2]string{b, a}] = true
	s.exits[a] = append(s.exits[a], b)
	s.exits[b] = append(s.exits[b], a)
}

// Build applies cons in order and returns the resulting network.
func Build(opts []Option, cons ...Constructor) (*network.Network, error) {
	cfg := newConfig(opts...)
	if cfg.err != nil {
		return nil, cfg.err
	}

	s := newSketch()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("topology: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("topology: %w", err)
		}
	}

	if cfg.rng == nil && cfg.randFlow && len(s.order) > 1 {
		return nil, fmt.Errorf("topology: flows: %w", ErrNeedRandSource)
	}
	b := network.NewBuilder()
	for idx, name := range s.order {
		flow := 0
		if idx > 0 {
			flow = cfg.flowFn(idx, cfg.rng)
		}
		if err := b.AddValve(name, flow, s.exits[name]...); err != nil {
			return nil, fmt.Errorf("topology: %w", err)
		}
	}

	return b.Build()
}
