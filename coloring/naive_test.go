package coloring_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/vcolor/assess"
	"github.com/katalvlaran/vcolor/coloring"
	"github.com/katalvlaran/vcolor/fixtures"
	"github.com/stretchr/testify/require"
)

func TestNaiveColorsTriangle(t *testing.T) {
	g, err := fixtures.Complete(3)
	require.NoError(t, err)

	e, err := coloring.NewNaive(g, nil)
	require.NoError(t, err)

	_, err = e.Run(context.Background())
	require.NoError(t, err)

	report := assess.Assess(g, e.Colors())
	require.True(t, report.Success())
	require.Equal(t, uint32(2), report.MaxColorUsed)
}

func TestNaiveConvergesFromRandomInit(t *testing.T) {
	g, err := fixtures.RandomUndirected(80, 0.1, 3)
	require.NoError(t, err)

	e, err := coloring.NewNaive(g, func(v int) uint32 { return uint32(v % 7) })
	require.NoError(t, err)

	result, err := e.Run(context.Background())
	require.NoError(t, err)
	require.Greater(t, result.Iterations, 0)

	require.True(t, assess.Assess(g, e.Colors()).Success())
}
