// SPDX-License-Identifier: MIT
// Package: valveflow/apsp
//
// Purpose:
//   - Dense all-pairs tunnel counts with a fixed k → i → j loop order.
//   - In place on the flat buffer, O(n³) time, O(1) extra space.
//
// Contract:
//   - Unreachable means "no path"; it never takes part in an addition.

package apsp

import "github.com/katalvlaran/valveflow/network"

// FloydWarshall computes all-pairs tunnel counts over net.
//
// Initialisation: 0 on the diagonal, 1 for every listed exit, Unreachable
// elsewhere. Relaxation order is fixed (k → i → j) and only strict
// improvements are written, so results are deterministic.
// Time O(n³), extra space O(1) beyond the matrix itself.
func FloydWarshall(net *network.Network) (*Matrix, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	n := net.Len()
	m := newMatrix(n)

	var (
		id, exit int
		exits    []int
	)
	for id = 0; id < n; id++ {
		exits = net.Exits(id)
		for _, exit = range exits {
			if exit != id {
				m.data[id*n+exit] = 1
			}
		}
	}

	floydWarshallInPlace(m)

	return m, nil
}

// floydWarshallInPlace runs the closure on m's flat buffer.
// Unreachable operands are skipped, so the sentinel never takes part in an addition.
func floydWarshallInPlace(m *Matrix) {
	n := m.n
	data := m.data

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand int
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if ik == Unreachable {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if kj == Unreachable {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}
}
