// Package apsp computes all-pairs shortest tunnel counts over a valve network.
//
// What
//
//   - Matrix holds dist[i][j], the minimum number of tunnels walked from
//     valve i to valve j, in a flat row-major buffer.
//   - FloydWarshall fills it with the classic k → i → j relaxation.
//   - BreadthFirst fills it with one BFS per source; on unit-length tunnels
//     both methods agree exactly.
//
// Contract
//
//   - dist[i][i] == 0.
//   - Unreachable pairs hold the Unreachable sentinel. At reports ok=false
//     for them; callers must never do arithmetic on an unchecked value.
//   - dist[i][j] ≤ dist[i][k] + dist[k][j] for all reachable triples.
//
// Complexity (n = valves, e = tunnels)
//
//   - FloydWarshall: Time O(n³), Memory O(n²).
//   - BreadthFirst:  Time O(n·(n+e)), Memory O(n²).
//
// Errors
//
//   - ErrNilNetwork if the network pointer is nil.
//   - ErrUnknownMethod for an unsupported Method.
package apsp
