// File: optimistic.go
// Role: the CAS-validated discipline (spec §4.4.2), grounded on
// original_source/src/asynch_occ.cc.
package coloring

import (
	"context"

	"github.com/katalvlaran/vcolor/colorstore"
	"github.com/katalvlaran/vcolor/graph"
	"github.com/katalvlaran/vcolor/scheduler"
)

// Optimistic computes a candidate color from a snapshot of neighbor
// colors, then publishes it with a single compare-and-swap conditioned on
// v's own color being unchanged since the snapshot was taken. The
// original source additionally races the publish against a parallel
// per-neighbor "potential color" array; spec §4.4.2 simplifies this to
// validating against neighbors' already-committed colors, which this
// engine follows (see DESIGN.md).
type Optimistic struct {
	g     graph.View
	store *colorstore.Store
	sched *scheduler.Bitset
	opts  Options
}

// NewOptimistic constructs an Optimistic engine over g.
func NewOptimistic(g graph.View, init func(v int) uint32, opts ...Option) (*Optimistic, error) {
	store, err := colorstore.NewStore(g.N(), init)
	if err != nil {
		return nil, err
	}

	return &Optimistic{
		g:     g,
		store: store,
		sched: scheduler.New(g.N()),
		opts:  newOptions(opts),
	}, nil
}

// Colors exposes the underlying color store for the assessor.
func (e *Optimistic) Colors() *colorstore.Store { return e.store }

// Run drives the engine to a fixed point.
func (e *Optimistic) Run(ctx context.Context) (Result, error) {
	return run(ctx, e.g, e.sched, e.opts, e.step)
}

func (e *Optimistic) step(v int) bool {
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
	candidate := firstFit(forbidden, limit)
	if candidate == old {
		return false
	}

	// Validate against neighbors' current committed colors: if any
	// neighbor already holds the candidate, another goroutine moved into
	// it since the snapshot above and the write must be abandoned.
	for i := 0; i < deg; i++ {
		u := e.g.Neighbor(v, i)
		if e.store.Read(u) == candidate {
			e.sched.Schedule(v)

			return false
		}
	}

	if !e.store.CAS(v, old, candidate) {
		// v's own cell moved since the snapshot; retry next round.
		e.sched.Schedule(v)

		return false
	}

	// Only neighbors whose color exceeds v's old value could have been
	// blocked by v holding old; anything at or below old was already free.
	for i := 0; i < deg; i++ {
		u := e.g.Neighbor(v, i)
		if e.store.Read(u) > old {
			e.sched.Schedule(u)
		}
	}

	return true
}
