package coloring_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/vcolor/assess"
	"github.com/katalvlaran/vcolor/coloring"
	"github.com/katalvlaran/vcolor/fixtures"
	"github.com/stretchr/testify/require"
)

func TestOptimisticColorsStar(t *testing.T) {
	g, err := fixtures.Star(10)
	require.NoError(t, err)

	e, err := coloring.NewOptimistic(g, nil)
	require.NoError(t, err)

	_, err = e.Run(context.Background())
	require.NoError(t, err)

	require.True(t, assess.Assess(g, e.Colors()).Success())
}

func TestOptimisticConvergesOnRandomGraph(t *testing.T) {
	g, err := fixtures.RandomUndirected(120, 0.05, 11)
	require.NoError(t, err)

	e, err := coloring.NewOptimistic(g, nil)
	require.NoError(t, err)

	_, err = e.Run(context.Background())
	require.NoError(t, err)

	require.True(t, assess.Assess(g, e.Colors()).Success())
}
