package apsp

import "github.com/katalvlaran/valveflow/network"

// walker holds the reusable buffers of a single-source BFS.
type walker struct {
	net     *network.Network
	queue   []int
	visited []bool
}

// BreadthFirst computes all-pairs tunnel counts with one BFS per source.
// Every tunnel has length 1, so BFS depth is the shortest distance.
func BreadthFirst(net *network.Network) (*Matrix, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	n := net.Len()
	m := newMatrix(n)
	w := &walker{
		net:     net,
		queue:   make([]int, 0, n),
		visited: make([]bool, n),
	}
	for src := 0; src < n; src++ {
		w.walk(src, m.data[src*n:(src+1)*n])
	}

	return m, nil
}

// walk fills row with the depth of every vertex reachable from src.
func (w *walker) walk(src int, row []int) {
	for i := range w.visited {
		w.visited[i] = false
	}
	w.queue = append(w.queue[:0], src)
	w.visited[src] = true
	row[src] = 0

	for len(w.queue) > 0 {
		cur := w.queue[0]
		w.queue = w.queue[1:]
		for _, nbr := range w.net.Exits(cur) {
			if nbr < 0 || nbr >= len(w.visited) || w.visited[nbr] {
				continue
			}
			w.visited[nbr] = true
			row[nbr] = row[cur] + 1
			w.queue = append(w.queue, nbr)
		}
	}
}
