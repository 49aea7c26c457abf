package scheduler_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/vcolor/scheduler"
	"github.com/stretchr/testify/require"
)

func TestScheduleAllThenBeginIteration(t *testing.T) {
	b := scheduler.New(70) // spans two words
	require.False(t, b.AnyScheduled())

	b.ScheduleAll()
	require.True(t, b.AnyScheduled())

	b.BeginIteration()
	require.True(t, b.IsScheduled(0))
	require.True(t, b.IsScheduled(69))
}

func TestGenerationSwapContract(t *testing.T) {
	b := scheduler.New(70)
	b.ScheduleAll()
	b.BeginIteration()

	// Everything scheduled in ScheduleAll is now visible as "current".
	for v := 0; v < 70; v++ {
		require.True(t, b.IsScheduled(v), "vertex %d should be scheduled", v)
	}
	require.Equal(t, 70, b.NumScheduled())

	// The next generation must be empty immediately after the swap
	// (spec §8 property 4).
	require.False(t, b.AnyScheduled())
}

func TestScheduleDuringIterationVisibleNextRound(t *testing.T) {
	b := scheduler.New(10)
	b.ScheduleAll()
	b.BeginIteration()

	b.Schedule(3)
	b.Schedule(7)
	require.True(t, b.AnyScheduled())
	// IsScheduled reflects the CURRENT generation, which is everything
	// from the prior ScheduleAll; the two explicit Schedule(3)/Schedule(7)
	// calls land in the *next* generation and are not visible yet.
	for v := 0; v < 10; v++ {
		require.True(t, b.IsScheduled(v))
	}

	b.BeginIteration()
	require.True(t, b.IsScheduled(3))
	require.True(t, b.IsScheduled(7))
	require.False(t, b.IsScheduled(0))
	require.Equal(t, 2, b.NumScheduled())
}

func TestConcurrentSchedule(t *testing.T) {
	const n = 500
	b := scheduler.New(n)

	var wg sync.WaitGroup
	wg.Add(n)
	for v := 0; v < n; v++ {
		go func(vertex int) {
			defer wg.Done()
			b.Schedule(vertex)
		}(v)
	}
	wg.Wait()

	require.True(t, b.AnyScheduled())
	b.BeginIteration()
	require.Equal(t, n, b.NumScheduled())
}

func TestEmptyBitsetNeverScheduled(t *testing.T) {
	b := scheduler.New(0)
	require.False(t, b.AnyScheduled())
	b.ScheduleAll()
	require.False(t, b.AnyScheduled())
}
