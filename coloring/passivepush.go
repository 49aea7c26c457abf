// File: passivepush.go
// Role: the neighbor-count-maintenance discipline (spec §4.4.4), grounded
// on original_source/src/asynch_push_passive.cc.
package coloring

import (
	"context"

	"github.com/katalvlaran/vcolor/colorstore"
	"github.com/katalvlaran/vcolor/graph"
	"github.com/katalvlaran/vcolor/scheduler"
)

// PassivePush maintains, for every vertex v, count[v][c] = the number of
// v's neighbors currently holding color c. A vertex's first-fit search is
// then a scan over its own counter row rather than a re-read of every
// neighbor's cell; when v changes color it pushes the delta into each
// neighbor's row instead of waiting for the neighbor to notice on its own
// next visit.
type PassivePush struct {
	g      graph.View
	color  *colorstore.Store
	counts *colorstore.CountStore
	sched  *scheduler.Bitset
	opts   Options
}

// NewPassivePush constructs a PassivePush engine over g. Every vertex
// starts at color 0, matching the original source's uninitialized-array
// convention (no RandomizeColors call in the reference driver), with
// counts initialized to match: count[v][0] = deg(v).
func NewPassivePush(g graph.View, opts ...Option) (*PassivePush, error) {
	color, err := colorstore.NewStore(g.N(), func(int) uint32 { return 0 })
	if err != nil {
		return nil, err
	}

	width := graph.MaxDegree(g) + 2
	counts, err := colorstore.NewCountStore(g.N(), width)
	if err != nil {
		return nil, err
	}
	for v := 0; v < g.N(); v++ {
		counts.Set(v, 0, int32(g.Degree(v)))
	}

	return &PassivePush{
		g:      g,
		color:  color,
		counts: counts,
		sched:  scheduler.New(g.N()),
		opts:   newOptions(opts),
	}, nil
}

// Colors exposes the underlying color store for the assessor.
func (e *PassivePush) Colors() *colorstore.Store { return e.color }

// Run drives the engine to a fixed point.
func (e *PassivePush) Run(ctx context.Context) (Result, error) {
	return run(ctx, e.g, e.sched, e.opts, e.step)
}

func (e *PassivePush) step(v int) bool {
	deg := e.g.Degree(v)
	limit := deg + 1

	old := e.color.Read(v)
	var newColor uint32
	for c := 0; c <= limit; c++ {
		if e.counts.Count(v, c) == 0 {
			newColor = uint32(c)

			break
		}
	}
	if newColor == old {
		return false
	}
	e.color.Store(v, newColor)

	for i := 0; i < deg; i++ {
		u := e.g.Neighbor(v, i)
		e.counts.Push(u, int(old), int(newColor))
		if e.counts.Count(u, int(old)) == 0 || e.color.Read(u) == newColor {
			e.sched.Schedule(u)
		}
	}

	return true
}
