package coloring_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/vcolor/assess"
	"github.com/katalvlaran/vcolor/coloring"
	"github.com/katalvlaran/vcolor/colorstore"
	"github.com/katalvlaran/vcolor/fixtures"
	"github.com/katalvlaran/vcolor/graph"
	"github.com/stretchr/testify/require"
)

// namedEngine lets the scenario and property tests below drive all seven
// disciplines through one loop instead of seven copy-pasted bodies.
type namedEngine struct {
	name   string
	run    func(ctx context.Context) (coloring.Result, error)
	colors func() colorstore.Reader
}

func allEngines(t *testing.T, g graph.View) []namedEngine {
	t.Helper()

	naive, err := coloring.NewNaive(g, nil)
	require.NoError(t, err)
	optimistic, err := coloring.NewOptimistic(g, nil)
	require.NoError(t, err)
	lockFull, err := coloring.NewLocking(g, nil, 1)
	require.NoError(t, err)
	lockRC, err := coloring.NewLockingRC(g, nil, 1)
	require.NoError(t, err)
	push, err := coloring.NewPassivePush(g)
	require.NoError(t, err)
	pushPrune, err := coloring.NewPassivePushPrune(g)
	require.NoError(t, err)
	partitioned, err := coloring.NewPartitioned(g)
	require.NoError(t, err)

	return []namedEngine{
		{"naive", naive.Run, func() colorstore.Reader { return naive.Colors() }},
		{"optimistic", optimistic.Run, func() colorstore.Reader { return optimistic.Colors() }},
		{"locking-full", lockFull.Run, func() colorstore.Reader { return lockFull.Colors() }},
		{"locking-rc", lockRC.Run, func() colorstore.Reader { return lockRC.Colors() }},
		{"passive-push", push.Run, func() colorstore.Reader { return push.Colors() }},
		{"passive-push-prune", pushPrune.Run, func() colorstore.Reader { return pushPrune.Colors() }},
		{"partitioned", partitioned.Run, func() colorstore.Reader { return partitioned.Colors() }},
	}
}

func assertAllSucceed(t *testing.T, g graph.View, maxColorWant uint32) {
	t.Helper()

	for _, eng := range allEngines(t, g) {
		_, err := eng.run(context.Background())
		require.NoError(t, err, eng.name)

		report := assess.Assess(g, eng.colors())
		require.Truef(t, report.Success(), "%s: conflicts=%d non_minimal=%d", eng.name, report.Conflicts, report.NonMinimal)
		require.LessOrEqualf(t, report.MaxColorUsed, maxColorWant, "%s used more colors than expected", eng.name)
	}
}

// S1: triangle K3 needs exactly 3 colors.
func TestScenarioTriangle(t *testing.T) {
	g, err := fixtures.Complete(3)
	require.NoError(t, err)
	assertAllSucceed(t, g, 2)
}

// S2: path P4 needs at most 2 colors.
func TestScenarioPath(t *testing.T) {
	g, err := fixtures.Path(4)
	require.NoError(t, err)
	assertAllSucceed(t, g, 1)
}

// S3: star S5 needs at most 2 colors regardless of leaf count.
func TestScenarioStar(t *testing.T) {
	g, err := fixtures.Star(5)
	require.NoError(t, err)
	assertAllSucceed(t, g, 1)
}

// S4: complete graph K4 needs exactly 4 colors.
func TestScenarioComplete(t *testing.T) {
	g, err := fixtures.Complete(4)
	require.NoError(t, err)
	assertAllSucceed(t, g, 3)
}

// S5: two disjoint edges need at most 2 colors.
func TestScenarioTwoDisjointEdges(t *testing.T) {
	g, err := fixtures.TwoDisjointEdges()
	require.NoError(t, err)
	assertAllSucceed(t, g, 1)
}

// S6: even cycle C4 is bipartite, needs at most 2 colors.
func TestScenarioEvenCycle(t *testing.T) {
	g, err := fixtures.Cycle(4)
	require.NoError(t, err)
	assertAllSucceed(t, g, 1)
}
