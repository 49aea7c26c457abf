// File: engine.go
// Role: the shared driver loop every discipline except Partitioned plugs
// a step function into (spec §4.4's common skeleton).
package coloring

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/vcolor/graph"
	"github.com/katalvlaran/vcolor/parallelfor"
	"github.com/katalvlaran/vcolor/scheduler"
	"github.com/katalvlaran/vcolor/vclog"
)

// Options configures an engine. Built exclusively through the With*
// functions below, following the teacher's functional-option pattern
// (builder.BuilderOption, bfs.Option).
type Options struct {
	logger     vclog.Logger
	verbose    bool
	rounds     int
	maxWorkers int
	seed       int64
}

// Option mutates an Options value under construction.
type Option func(*Options)

// WithLogger installs the diagnostic sink an engine writes iteration and
// verdict lines through. The default is vclog.Discard.
func WithLogger(l vclog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithVerbose records a verbosity flag in Options. No engine and no caller
// in this module reads it: engines write diagnostics only through
// o.logger (see WithLogger).
func WithVerbose(v bool) Option {
	return func(o *Options) { o.verbose = v }
}

// WithRounds records a repeat-run count in Options. Run does not consult
// it, and the CLI's -r flag drives its own round loop without passing
// this option.
func WithRounds(n int) Option {
	return func(o *Options) { o.rounds = n }
}

// WithMaxWorkers bounds the number of parallelfor.Range workers an
// engine's driver loop uses. 0 (the default) selects
// runtime.GOMAXPROCS(0).
func WithMaxWorkers(n int) Option {
	return func(o *Options) { o.maxWorkers = n }
}

// WithSeed records a seed in Options. No discipline reads it: the locking
// engines take their priority-permutation seed as a constructor argument.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

func newOptions(opts []Option) Options {
	o := Options{logger: vclog.Discard}
	for _, apply := range opts {
		apply(&o)
	}

	return o
}

// Result reports the outcome of a completed Run.
type Result struct {
	Iterations int
	Elapsed    time.Duration
}

// step is what every discipline supplies: color v according to its own
// synchronization rule, publish the result, schedule whichever neighbors
// the discipline decides need re-examination, and report whether v's
// color actually changed this round.
type step func(v int) (changed bool)

// run drives the shared skeleton: seed S = V, then alternate
// BeginIteration/parallel-body rounds until nothing is scheduled. g
// supplies per-vertex degree for the active-edge diagnostic; sched is the
// double-buffered bitset the discipline's own step schedules into.
func run(ctx context.Context, g graph.View, sched *scheduler.Bitset, opts Options, do step) (Result, error) {
	start := time.Now()
	sched.ScheduleAll()

	iter := 0
	for sched.AnyScheduled() {
		iter++
		sched.BeginIteration()

		activeVertices := sched.NumScheduled()
		activeEdges := 0
		for v := 0; v < g.N(); v++ {
			if sched.IsScheduled(v) {
				activeEdges += g.Degree(v)
			}
		}

		var modified int32
		iterStart := time.Now()
		err := parallelfor.Range(ctx, g.N(), opts.maxWorkers, func(v int) error {
			if !sched.IsScheduled(v) {
				return nil
			}
			if do(v) {
				atomic.AddInt32(&modified, 1)
			}

			return nil
		})
		if err != nil {
			return Result{Iterations: iter, Elapsed: time.Since(start)}, err
		}

		opts.logger.Iteration(vclog.IterationStats{
			Iteration:      iter,
			ActiveVertices: activeVertices,
			ActiveEdges:    activeEdges,
			Modified:       int(modified),
			Elapsed:        time.Since(iterStart),
		})
	}

	return Result{Iterations: iter, Elapsed: time.Since(start)}, nil
}

// firstFit returns the smallest c in [0, limit] with !forbidden[c].
// Callers size forbidden to limit+1 and are responsible for the theorem
// (spec §4.4) that guarantees such a c exists — a graph with Δ = deg(v)
// always leaves at least one of [0, deg(v)+1] free among v's neighbors.
func firstFit(forbidden []bool, limit int) uint32 {
	for c := 0; c <= limit; c++ {
		if !forbidden[c] {
			return uint32(c)
		}
	}

	// Unreachable given the theorem above; limit is always a safe fallback
	// since forbidden has limit+1 slots and pigeonhole guarantees one is free.
	return uint32(limit)
}
