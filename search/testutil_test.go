package search_test

import (
	"math/rand"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valveflow/apsp"
	"github.com/katalvlaran/valveflow/network"
	"github.com/katalvlaran/valveflow/topology"
)

// fixture bundles a network with its distance matrix.
type fixture struct {
	net  *network.Network
	dist *apsp.Matrix
}

func newFixture(t testing.TB, net *network.Network) fixture {
	t.Helper()
	dist, err := apsp.FloydWarshall(net)
	require.NoError(t, err)

	return fixture{net: net, dist: dist}
}

func loadSample(t testing.TB) fixture {
	t.Helper()
	f, err := os.Open("testdata/sample.txt")
	require.NoError(t, err)
	defer f.Close()
	net, err := network.Parse(f)
	require.NoError(t, err)

	return newFixture(t, net)
}

// valveDef is a compact valve definition for table tests.
type valveDef struct {
	name  string
	flow  int
	exits []string
}

func build(t testing.TB, defs ...valveDef) fixture {
	t.Helper()
	b := network.NewBuilder()
	for _, d := range defs {
		require.NoError(t, b.AddValve(d.name, d.flow, d.exits...))
	}
	net, err := b.Build()
	require.NoError(t, err)

	return newFixture(t, net)
}

// lineABC is A(0)—B(10)—C(20).
func lineABC(t testing.TB) fixture {
	return build(t,
		valveDef{"A", 0, []string{"B"}},
		valveDef{"B", 10, []string{"A", "C"}},
		valveDef{"C", 20, []string{"B"}},
	)
}

// randomFixture builds n valves joined by undirected tunnels with probability p.
// Valve 0 always has zero flow so it can serve as a neutral start.
func randomFixture(t testing.TB, rng *rand.Rand, n int, p float64) fixture {
	t.Helper()
	flows := []int{0, 0, 1, 2, 3, 5, 8}
	pick := func(_ int, r *rand.Rand) int { return flows[r.Intn(len(flows))] }
	net, err := topology.Build(
		[]topology.Option{topology.WithRand(rng), topology.WithFlowFn(pick)},
		topology.RandomSparse(n, p),
	)
	require.NoError(t, err)

	return newFixture(t, net)
}

// bruteSingle plays every minute explicitly: wait, walk one tunnel, or open.
func bruteSingle(net *network.Network, start, budget int) int {
	type key struct {
		t, pos int
		opened uint64
	}
	memo := make(map[key]int)
	var rec func(t, pos int, opened uint64) int
	rec = func(t, pos int, opened uint64) int {
		if t == 0 {
			return 0
		}
		k := key{t, pos, opened}
		if v, ok := memo[k]; ok {
			return v
		}
		best := rec(t-1, pos, opened)
		if f := net.Flow(pos); f > 0 && opened&(1<<pos) == 0 {
			best = max(best, f*(t-1)+rec(t-1, pos, opened|1<<pos))
		}
		for _, nb := range net.Exits(pos) {
			best = max(best, rec(t-1, nb, opened))
		}
		memo[k] = best

		return best
	}

	return rec(budget, start, 0)
}

// bruteDual plays every minute for two agents acting simultaneously.
func bruteDual(net *network.Network, start, budget int) int {
	type action struct {
		open bool
		to   int
	}
	type key struct {
		t, p, q int
		opened  uint64
	}
	memo := make(map[key]int)
	actions := func(pos int, opened uint64) []action {
		out := []action{{to: pos}}
		for _, nb := range net.Exits(pos) {
			out = append(out, action{to: nb})
		}
		if net.Flow(pos) > 0 && opened&(1<<pos) == 0 {
			out = append(out, action{open: true, to: pos})
		}
		return out
	}
	var rec func(t, p, q int, opened uint64) int
	rec = func(t, p, q int, opened uint64) int {
		if t == 0 {
			return 0
		}
		k := key{t, p, q, opened}
		if v, ok := memo[k]; ok {
			return v
		}
		best := 0
		for _, a := range actions(p, opened) {
			for _, b := range actions(q, opened) {
				next, gain := opened, 0
				for _, act := range []action{a, b} {
					if act.open && next&(1<<act.to) == 0 {
						next |= 1 << act.to
						gain += net.Flow(act.to) * (t - 1)
					}
				}
				best = max(best, gain+rec(t-1, a.to, b.to, next))
			}
		}
		memo[k] = best

		return best
	}

	return rec(budget, start, start, 0)
}
