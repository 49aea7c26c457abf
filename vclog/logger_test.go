package vclog_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/katalvlaran/vcolor/vclog"
	"github.com/stretchr/testify/require"
)

func TestDiscardIsSilent(t *testing.T) {
	require.NotPanics(t, func() {
		vclog.Discard.Iteration(vclog.IterationStats{})
		vclog.Discard.Verdict(vclog.Verdict{})
	})
}

func TestWriterIteration(t *testing.T) {
	var buf bytes.Buffer
	l := vclog.NewWriter(&buf)

	l.Iteration(vclog.IterationStats{
		Iteration:      3,
		ActiveVertices: 10,
		ActiveEdges:    20,
		Modified:       4,
		Elapsed:        5 * time.Millisecond,
	})

	out := buf.String()
	require.Contains(t, out, "iteration 3")
	require.Contains(t, out, "active_v=10")
	require.Contains(t, out, "modified=4")
}

func TestWriterVerdict(t *testing.T) {
	var buf bytes.Buffer
	l := vclog.NewWriter(&buf)

	l.Verdict(vclog.Verdict{Success: false, Conflicts: 2, DisciplineTag: "naive"})
	require.Contains(t, buf.String(), "FAILED")
	require.Contains(t, buf.String(), "naive")
	require.Contains(t, buf.String(), "conflicts=2")
}
