// File: naive.go
// Role: the no-synchronization discipline (spec §4.4.1), grounded on
// original_source/src/coloring_asynch_naive.cc.
package coloring

import (
	"context"

	"github.com/katalvlaran/vcolor/colorstore"
	"github.com/katalvlaran/vcolor/graph"
	"github.com/katalvlaran/vcolor/scheduler"
)

// Naive colors each scheduled vertex from an unsynchronized snapshot of
// its neighbors' colors: plain atomic loads to read, a plain atomic store
// to publish, no validation of the write. Two vertices racing on adjacent
// cells in the same round can both commit before either sees the other's
// new color, so a single round is not guaranteed conflict-free — the
// fixed point still converges to a proper coloring because any conflict
// this creates schedules both endpoints for the next round (spec's
// "safe default: reschedule all neighbors on change").
type Naive struct {
	g     graph.View
	store *colorstore.Store
	sched *scheduler.Bitset
	opts  Options
}

// NewNaive constructs a Naive engine over g, seeding colors with init (nil
// defaults every vertex to color 0).
func NewNaive(g graph.View, init func(v int) uint32, opts ...Option) (*Naive, error) {
	store, err := colorstore.NewStore(g.N(), init)
	if err != nil {
		return nil, err
	}

	return &Naive{
		g:     g,
		store: store,
		sched: scheduler.New(g.N()),
		opts:  newOptions(opts),
	}, nil
}

// Colors exposes the underlying color store for the assessor.
func (e *Naive) Colors() *colorstore.Store { return e.store }

// Run drives the engine to a fixed point.
func (e *Naive) Run(ctx context.Context) (Result, error) {
	return run(ctx, e.g, e.sched, e.opts, e.step)
}

func (e *Naive) step(v int) bool {
	deg := e.g.Degree(v)
	limit := deg + 1
	forbidden := make([]bool, limit+1)
	for i := 0; i < deg; i++ {
		u := e.g.Neighbor(v, i)
		if c := e.store.Read(u); int(c) <= limit {
			forbidden[c] = true
		}
	}

	old := e.store.Read(v)
	newColor := firstFit(forbidden, limit)
	if newColor == old {
		return false
	}
	e.store.Store(v, newColor)

	for i := 0; i < deg; i++ {
		e.sched.Schedule(e.g.Neighbor(v, i))
	}

	return true
}
