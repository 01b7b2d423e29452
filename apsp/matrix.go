// SPDX-License-Identifier: MIT
// Package: valveflow/apsp
//
// matrix.go - Matrix storage, lookups and the Method dispatcher.

package apsp

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/valveflow/network"
)

// Unreachable marks a pair with no connecting path.
const Unreachable = math.MaxInt

// Sentinel errors for distance computation.
var (
	// ErrNilNetwork is returned when a nil network is supplied.
	ErrNilNetwork = errors.New("apsp: network is nil")

	// ErrUnknownMethod is returned by Compute for an unsupported Method.
	ErrUnknownMethod = errors.New("apsp: unknown method")
)

// Method selects the algorithm used by Compute.
type Method int

const (
	// MethodFloydWarshall runs the O(n³) triple-loop relaxation.
	MethodFloydWarshall Method = iota
	// MethodBFS runs one breadth-first search per source valve.
	MethodBFS
)

// String returns the configuration name of m.
func (m Method) String() string {
	switch m {
	case MethodFloydWarshall:
		return "floyd-warshall"
	case MethodBFS:
		return "bfs"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps a configuration name to a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "", "floyd-warshall", "floyd":
		return MethodFloydWarshall, nil
	case "bfs":
		return MethodBFS, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// Matrix is a read-only n×n table of tunnel counts.
// It is safe to share between any number of readers.
type Matrix struct {
	n    int
	data []int // row-major: data[i*n+j]
}

// newMatrix returns an n×n matrix with 0 on the diagonal and Unreachable elsewhere.
func newMatrix(n int) *Matrix {
	m := &Matrix{n: n, data: make([]int, n*n)}
	for i := range m.data {
		m.data[i] = Unreachable
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 0
	}

	return m
}

// Len returns the matrix order (number of valves).
func (m *Matrix) Len() int { return m.n }

// At returns dist[i][j]. ok is false when j cannot be reached from i or
// either index lies outside the matrix; d is then meaningless.
func (m *Matrix) At(i, j int) (d int, ok bool) {
	if i < 0 || j < 0 || i >= m.n || j >= m.n {
		return 0, false
	}
	d = m.data[i*m.n+j]

	return d, d != Unreachable
}

// Reachable reports whether a path leads from i to j.
func (m *Matrix) Reachable(i, j int) bool {
	_, ok := m.At(i, j)

	return ok
}

// Compute builds the distance matrix of net with the selected method.
func Compute(net *network.Network, method Method) (*Matrix, error) {
	switch method {
	case MethodFloydWarshall:
		return FloydWarshall(net)
	case MethodBFS:
		return BreadthFirst(net)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownMethod, method)
	}
}
