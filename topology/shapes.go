// SPDX-License-Identifier: MIT
// Package: valveflow/topology
//
// shapes.go - Path, Cycle, Star, Grid, Complete and RandomSparse constructors.

package topology

import "fmt"

const (
	minPathValves     = 1
	minCycleValves    = 3
	minStarValves     = 2
	minGridDim        = 1
	minCompleteValves = 1
	minSparseValves   = 1
)

// Path links valves 0—1—…—(n-1).
func Path(n int) Constructor {
	return func(s *sketch, cfg config) error {
		if n < minPathValves {
			return fmt.Errorf("Path: n=%d < %d: %w", n, minPathValves, ErrTooFewValves)
		}
		s.valve(cfg.idFn(0))
		for i := 1; i < n; i++ {
			s.link(cfg.idFn(i-1), cfg.idFn(i))
		}

		return nil
	}
}

// Cycle is Path(n) closed by the tunnel (n-1)—0.
func Cycle(n int) Constructor {
	return func(s *sketch, cfg config) error {
		if n < minCycleValves {
			return fmt.Errorf("Cycle: n=%d < %d: %w", n, minCycleValves, ErrTooFewValves)
		}
		for i := 0; i < n; i++ {
			s.link(cfg.idFn(i), cfg.idFn((i+1)%n))
		}

		return nil
	}
}

// Star links hub 0 to each of the leaves 1..n-1.
func Star(n int) Constructor {
	return func(s *sketch, cfg config) error {
		if n < minStarValves {
			return fmt.Errorf("Star: n=%d < %d: %w", n, minStarValves, ErrTooFewValves)
		}
		hub := cfg.idFn(0)
		for i := 1; i < n; i++ {
			s.link(hub, cfg.idFn(i))
		}

		return nil
	}
}

// Grid builds a rows×cols 4-neighbourhood grid; valve r*cols+c sits at (r,c).
func Grid(rows, cols int) Constructor {
	return func(s *sketch, cfg config) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("Grid: rows=%d, cols=%d: %w", rows, cols, ErrTooFewValves)
		}
		at := func(r, c int) string { return cfg.idFn(r*cols + c) }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				s.valve(at(r, c))
				if c+1 < cols {
					s.link(at(r, c), at(r, c+1))
				}
				if r+1 < rows {
					s.link(at(r, c), at(r+1, c))
				}
			}
		}

		return nil
	}
}

// Complete links every pair of the n valves.
func Complete(n int) Constructor {
	return func(s *sketch, cfg config) error {
		if n < minCompleteValves {
			return fmt.Errorf("Complete: n=%d < %d: %w", n, minCompleteValves, ErrTooFewValves)
		}
		for i := 0; i < n; i++ {
			s.valve(cfg.idFn(i))
			for j := i + 1; j < n; j++ {
				s.link(cfg.idFn(i), cfg.idFn(j))
			}
		}

		return nil
	}
}

// RandomSparse links each pair of n valves independently with probability p.
// An RNG is required unless p is 0 or 1.
func RandomSparse(n int, p float64) Constructor {
	return func(s *sketch, cfg config) error {
		if n < minSparseValves {
			return fmt.Errorf("RandomSparse: n=%d < %d: %w", n, minSparseValves, ErrTooFewValves)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse: p=%.6f: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}
		for i := 0; i < n; i++ {
			s.valve(cfg.idFn(i))
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p == 1 || (p > 0 && cfg.rng.Float64() < p) {
					s.link(cfg.idFn(i), cfg.idFn(j))
				}
			}
		}

		return nil
	}
}
