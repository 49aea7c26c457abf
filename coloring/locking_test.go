package coloring_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/vcolor/assess"
	"github.com/katalvlaran/vcolor/coloring"
	"github.com/katalvlaran/vcolor/fixtures"
	"github.com/stretchr/testify/require"
)

func TestLockingFullColorsCycle(t *testing.T) {
	g, err := fixtures.Cycle(9)
	require.NoError(t, err)

	e, err := coloring.NewLocking(g, nil, 1)
	require.NoError(t, err)

	_, err = e.Run(context.Background())
	require.NoError(t, err)

	require.True(t, assess.Assess(g, e.Colors()).Success())
}

func TestLockingRCColorsCycle(t *testing.T) {
	g, err := fixtures.Cycle(9)
	require.NoError(t, err)

	e, err := coloring.NewLockingRC(g, nil, 1)
	require.NoError(t, err)

	_, err = e.Run(context.Background())
	require.NoError(t, err)

	require.True(t, assess.Assess(g, e.Colors()).Success())
}

func TestLockingConvergesOnRandomGraph(t *testing.T) {
	g, err := fixtures.RandomUndirected(100, 0.08, 5)
	require.NoError(t, err)

	full, err := coloring.NewLocking(g, nil, 42)
	require.NoError(t, err)
	_, err = full.Run(context.Background())
	require.NoError(t, err)
	require.True(t, assess.Assess(g, full.Colors()).Success())

	rc, err := coloring.NewLockingRC(g, nil, 42)
	require.NoError(t, err)
	_, err = rc.Run(context.Background())
	require.NoError(t, err)
	require.True(t, assess.Assess(g, rc.Colors()).Success())
}
