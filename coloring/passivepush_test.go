package coloring_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/vcolor/assess"
	"github.com/katalvlaran/vcolor/coloring"
	"github.com/katalvlaran/vcolor/fixtures"
	"github.com/stretchr/testify/require"
)

func TestPassivePushColorsCompleteGraph(t *testing.T) {
	g, err := fixtures.Complete(6)
	require.NoError(t, err)

	e, err := coloring.NewPassivePush(g)
	require.NoError(t, err)

	_, err = e.Run(context.Background())
	require.NoError(t, err)

	report := assess.Assess(g, e.Colors())
	require.True(t, report.Success())
	require.Equal(t, uint32(5), report.MaxColorUsed)
}

func TestPassivePushPruneColorsCompleteGraph(t *testing.T) {
	g, err := fixtures.Complete(6)
	require.NoError(t, err)

	e, err := coloring.NewPassivePushPrune(g)
	require.NoError(t, err)

	_, err = e.Run(context.Background())
	require.NoError(t, err)

	report := assess.Assess(g, e.Colors())
	require.True(t, report.Success())
	require.Equal(t, uint32(5), report.MaxColorUsed)
}

func TestPassivePushPruneConvergesOnRandomGraph(t *testing.T) {
	g, err := fixtures.RandomUndirected(150, 0.04, 21)
	require.NoError(t, err)

	e, err := coloring.NewPassivePushPrune(g)
	require.NoError(t, err)

	_, err = e.Run(context.Background())
	require.NoError(t, err)

	require.True(t, assess.Assess(g, e.Colors()).Success())
}
