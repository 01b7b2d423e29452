package apsp_test

import (
	"math/rand"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valveflow/apsp"
	"github.com/katalvlaran/valveflow/network"
	"github.com/katalvlaran/valveflow/topology"
)

func loadSample(t *testing.T) *network.Network {
	t.Helper()
	f, err := os.Open("testdata/sample.txt")
	require.NoError(t, err)
	defer f.Close()
	net, err := network.Parse(f)
	require.NoError(t, err)

	return net
}

// randomNetwork builds n valves with undirected tunnels added with probability p.
func randomNetwork(t *testing.T, rng *rand.Rand, n int, p float64) *network.Network {
	t.Helper()
	net, err := topology.Build(
		[]topology.Option{topology.WithRand(rng), topology.WithUniformFlow(0, 4)},
		topology.RandomSparse(n, p),
	)
	require.NoError(t, err)

	return net
}

func TestFloydWarshall_NilNetwork(t *testing.T) {
	_, err := apsp.FloydWarshall(nil)
	assert.ErrorIs(t, err, apsp.ErrNilNetwork)
	_, err = apsp.BreadthFirst(nil)
	assert.ErrorIs(t, err, apsp.ErrNilNetwork)
	_, err = apsp.Compute(nil, apsp.MethodBFS)
	assert.ErrorIs(t, err, apsp.ErrNilNetwork)
}

func TestFloydWarshall_Sample(t *testing.T) {
	net := loadSample(t)
	m, err := apsp.FloydWarshall(net)
	require.NoError(t, err)
	require.Equal(t, 10, m.Len())

	id := func(name string) int {
		v, err := net.ID(name)
		require.NoError(t, err)
		return v
	}
	cases := []struct {
		from, to string
		want     int
	}{
		{"AA", "AA", 0},
		{"AA", "DD", 1},
		{"AA", "CC", 2},
		{"AA", "HH", 5},
		{"JJ", "HH", 7},
		{"HH", "JJ", 7},
		{"BB", "EE", 3},
	}
	for _, tc := range cases {
		d, ok := m.At(id(tc.from), id(tc.to))
		assert.True(t, ok, "%s→%s", tc.from, tc.to)
		assert.Equal(t, tc.want, d, "%s→%s", tc.from, tc.to)
	}
}

func TestFloydWarshall_Disconnected(t *testing.T) {
	b := network.NewBuilder()
	require.NoError(t, b.AddValve("A", 0, "B"))
	require.NoError(t, b.AddValve("B", 3, "A"))
	require.NoError(t, b.AddValve("C", 9))
	net, err := b.Build()
	require.NoError(t, err)

	for _, method := range []apsp.Method{apsp.MethodFloydWarshall, apsp.MethodBFS} {
		m, err := apsp.Compute(net, method)
		require.NoError(t, err)

		d, ok := m.At(0, 1)
		assert.True(t, ok)
		assert.Equal(t, 1, d)

		assert.False(t, m.Reachable(0, 2), method.String())
		assert.False(t, m.Reachable(2, 1), method.String())
		d, ok = m.At(2, 2)
		assert.True(t, ok)
		assert.Equal(t, 0, d)
		_, ok = m.At(0, 3)
		assert.False(t, ok, "out of range is never reachable")
	}
}

func TestFloydWarshall_EmptyNetwork(t *testing.T) {
	net, err := network.NewBuilder().Build()
	require.NoError(t, err)
	m, err := apsp.FloydWarshall(net)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())
	assert.False(t, m.Reachable(0, 0))
}

func TestFloydWarshall_TriangleAndSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(16))
	for trial := 0; trial < 20; trial++ {
		net := randomNetwork(t, rng, 2+rng.Intn(12), 0.25)
		m, err := apsp.FloydWarshall(net)
		require.NoError(t, err)

		n := m.Len()
		for i := 0; i < n; i++ {
			d, ok := m.At(i, i)
			require.True(t, ok)
			require.Equal(t, 0, d)
			for j := 0; j < n; j++ {
				dij, okij := m.At(i, j)
				dji, okji := m.At(j, i)
				require.Equal(t, okij, okji)
				if okij {
					require.Equal(t, dij, dji)
				}
				for k := 0; k < n; k++ {
					dik, okik := m.At(i, k)
					dkj, okkj := m.At(k, j)
					if !okik || !okkj {
						continue
					}
					require.True(t, okij, "i→k→j path implies i→j")
					require.LessOrEqual(t, dij, dik+dkj, "trial %d (%d,%d,%d)", trial, i, j, k)
				}
			}
		}
	}
}

func TestBreadthFirst_AgreesWithFloydWarshall(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		net := randomNetwork(t, rng, 1+rng.Intn(20), 0.15)
		fw, err := apsp.FloydWarshall(net)
		require.NoError(t, err)
		bf, err := apsp.BreadthFirst(net)
		require.NoError(t, err)

		for i := 0; i < fw.Len(); i++ {
			for j := 0; j < fw.Len(); j++ {
				a, okA := fw.At(i, j)
				b, okB := bf.At(i, j)
				require.Equal(t, okA, okB, "trial %d (%d,%d)", trial, i, j)
				if okA {
					require.Equal(t, a, b, "trial %d (%d,%d)", trial, i, j)
				}
			}
		}
	}
}

func TestCompute_GridIsManhattan(t *testing.T) {
	const rows, cols = 3, 4
	net, err := topology.Build(nil, topology.Grid(rows, cols))
	require.NoError(t, err)

	for _, method := range []apsp.Method{apsp.MethodFloydWarshall, apsp.MethodBFS} {
		m, err := apsp.Compute(net, method)
		require.NoError(t, err)
		for i := 0; i < rows*cols; i++ {
			for j := 0; j < rows*cols; j++ {
				d, ok := m.At(i, j)
				require.True(t, ok)
				want := abs(i/cols-j/cols) + abs(i%cols-j%cols)
				require.Equal(t, want, d, "%s (%d,%d)", method, i, j)
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

func TestParseMethod(t *testing.T) {
	m, err := apsp.ParseMethod("bfs")
	require.NoError(t, err)
	assert.Equal(t, apsp.MethodBFS, m)

	m, err = apsp.ParseMethod("")
	require.NoError(t, err)
	assert.Equal(t, apsp.MethodFloydWarshall, m)
	assert.Equal(t, "floyd-warshall", m.String())

	_, err = apsp.ParseMethod("dijkstra")
	assert.ErrorIs(t, err, apsp.ErrUnknownMethod)

	_, err = apsp.Compute(loadSample(t), apsp.Method(9))
	assert.ErrorIs(t, err, apsp.ErrUnknownMethod)
}
