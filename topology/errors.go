// SPDX-License-Identifier: MIT
// Package: valveflow/topology
//
// errors.go - sentinel errors for the topology package.

package topology

import "errors"

// Sentinel errors for network generation.
var (
	// ErrTooFewValves indicates a size parameter below the constructor minimum.
	ErrTooFewValves = errors.New("topology: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("topology: probability out of range")

	// ErrNeedRandSource indicates a stochastic step without WithSeed or WithRand.
	ErrNeedRandSource = errors.New("topology: rng is required")

	// ErrConstructFailed indicates a nil Constructor.
	ErrConstructFailed = errors.New("topology: construction failed")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("topology: invalid option value")
)
