package coloring_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/vcolor/assess"
	"github.com/katalvlaran/vcolor/coloring"
	"github.com/katalvlaran/vcolor/fixtures"
	"github.com/stretchr/testify/require"
)

func TestPartitionedColorsPath(t *testing.T) {
	g, err := fixtures.Path(20)
	require.NoError(t, err)

	e, err := coloring.NewPartitioned(g)
	require.NoError(t, err)

	_, err = e.Run(context.Background())
	require.NoError(t, err)

	require.True(t, assess.Assess(g, e.Colors()).Success())
}

func TestPartitionedConvergesOnRandomGraph(t *testing.T) {
	g, err := fixtures.RandomUndirected(200, 0.03, 8)
	require.NoError(t, err)

	e, err := coloring.NewPartitioned(g)
	require.NoError(t, err)

	_, err = e.Run(context.Background())
	require.NoError(t, err)

	require.True(t, assess.Assess(g, e.Colors()).Success())
}
