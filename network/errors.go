// SPDX-License-Identifier: MIT
// Package: valveflow/network
//
// errors.go - sentinel errors for the network package.
//
// Callers branch with errors.Is; context is attached with %w at the call site.

package network

import "errors"

// Sentinel errors for network construction and lookup.
var (
	// ErrEmptyName is returned when a valve or tunnel names the empty string.
	ErrEmptyName = errors.New("network: empty valve name")

	// ErrNegativeFlow is returned for a valve with a flow rate below zero.
	ErrNegativeFlow = errors.New("network: negative flow rate")

	// ErrDuplicateValve is returned when the same valve is defined twice.
	ErrDuplicateValve = errors.New("network: duplicate valve definition")

	// ErrUnknownExit is returned when a tunnel leads to a valve that is never defined.
	ErrUnknownExit = errors.New("network: tunnel to undefined valve")

	// ErrCapacity is returned when the network has more valves than a
	// valveset.Set can track.
	ErrCapacity = errors.New("network: too many valves")

	// ErrUnknownValve is returned by lookups for absent names or ids.
	ErrUnknownValve = errors.New("network: unknown valve")

	// ErrMalformedLine is returned by Parse for a line it cannot match.
	ErrMalformedLine = errors.New("network: malformed line")
)
