package fixtures_test

import (
	"testing"

	"github.com/katalvlaran/vcolor/fixtures"
	"github.com/stretchr/testify/require"
)

func TestPathShape(t *testing.T) {
	g, err := fixtures.Path(5)
	require.NoError(t, err)
	require.Equal(t, 5, g.N())
	require.Equal(t, 1, g.Degree(0))
	require.Equal(t, 2, g.Degree(2))

	_, err = fixtures.Path(1)
	require.ErrorIs(t, err, fixtures.ErrTooFewVertices)
}

func TestCycleShape(t *testing.T) {
	g, err := fixtures.Cycle(5)
	require.NoError(t, err)
	for v := 0; v < 5; v++ {
		require.Equal(t, 2, g.Degree(v))
	}

	_, err = fixtures.Cycle(2)
	require.ErrorIs(t, err, fixtures.ErrTooFewVertices)
}

func TestStarShape(t *testing.T) {
	g, err := fixtures.Star(6)
	require.NoError(t, err)
	require.Equal(t, 5, g.Degree(0))
	require.Equal(t, 1, g.Degree(3))
}

func TestCompleteShape(t *testing.T) {
	g, err := fixtures.Complete(4)
	require.NoError(t, err)
	for v := 0; v < 4; v++ {
		require.Equal(t, 3, g.Degree(v))
	}
}

func TestTwoDisjointEdgesShape(t *testing.T) {
	g, err := fixtures.TwoDisjointEdges()
	require.NoError(t, err)
	require.Equal(t, 4, g.N())
	require.Equal(t, 1, g.Degree(0))
	require.Equal(t, 1, g.Degree(2))
}

func TestRandomUndirectedIsSymmetric(t *testing.T) {
	g, err := fixtures.RandomUndirected(50, 0.1, 7)
	require.NoError(t, err)

	for v := 0; v < g.N(); v++ {
		for i := 0; i < g.Degree(v); i++ {
			u := g.Neighbor(v, i)
			found := false
			for j := 0; j < g.Degree(u); j++ {
				if g.Neighbor(u, j) == v {
					found = true

					break
				}
			}
			require.True(t, found, "edge %d-%d not mirrored", v, u)
		}
	}
}

func TestRandomUndirectedDeterministic(t *testing.T) {
	a, err := fixtures.RandomUndirected(30, 0.2, 99)
	require.NoError(t, err)
	b, err := fixtures.RandomUndirected(30, 0.2, 99)
	require.NoError(t, err)

	require.Equal(t, a.M(), b.M())
	for v := 0; v < a.N(); v++ {
		require.Equal(t, a.Degree(v), b.Degree(v))
	}
}
