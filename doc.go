// Package valveflow finds the largest total pressure a valve network can
// release within a minute budget, for one agent or two agents sharing the
// clock.
//
// Layout:
//
//	valveset/ — 64-bit set of valve ids
//	network/  — valve network model, builder, text parser and writer
//	apsp/     — all-pairs shortest walking times (Floyd–Warshall, BFS)
//	search/   — single-agent and dual-agent exhaustive search
//	topology/ — generated networks: path, cycle, star, grid, complete, random
//	cmd/valveflow/ — CLI: solve and gen
//
// Quick example, a line A(0)—B(10)—C(20) with 5 minutes:
//
//	A───B───C
//
// Opening B on the way (3 minutes of 10) and then C (1 minute of 20) gives
// 50. Heading for C first gives 2 minutes of 20 and leaves no time for B.
//
//	go install github.com/katalvlaran/valveflow/cmd/valveflow@latest
package valveflow
