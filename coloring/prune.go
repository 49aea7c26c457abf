// File: prune.go
// Role: the serial-prune elaboration on top of passive push (spec §4.4.4),
// grounded on original_source/src/serial_prune.cc for the monotone
// minimalColor lower bound, the degree-bounded initial color, and the
// per-vertex active-neighbor list, and on
// katalvlaran-lvlath/gridgraph/expand.go for the container/list usage
// pattern.
package coloring

import (
	"container/list"
	"context"
	"sync"

	"github.com/katalvlaran/vcolor/colorstore"
	"github.com/katalvlaran/vcolor/graph"
	"github.com/katalvlaran/vcolor/scheduler"
)

// prunedVertex tracks the mutable bookkeeping a single vertex needs beyond
// its color and neighbor-color counts: the set of neighbors still worth
// pushing updates to, and the lowest color index proven forbidden forever.
type prunedVertex struct {
	mu      sync.Mutex
	active  *list.List
	elemOf  map[int]*list.Element
	minimal uint32
}

// PassivePushPrune extends PassivePush with a per-vertex active-neighbor
// list and a monotone minimalColor lower bound. When a vertex settles on
// a color exactly equal to its own lower bound, that color can never
// again become available to it (the lower bound only rises), so the
// vertex has reached its final value: it removes itself from every
// neighbor's active list (they will never need to push it another
// update) and, where safe, raises each neighbor's own lower bound past
// the color it now permanently occupies.
type PassivePushPrune struct {
	g        graph.View
	color    *colorstore.Store
	counts   *colorstore.CountStore
	vertices []*prunedVertex
	sched    *scheduler.Bitset
	opts     Options
}

// NewPassivePushPrune constructs a PassivePushPrune engine over g, seeded
// the way serial_prune.cc does: every vertex starts at color(v) = deg(v)
// rather than 0. That high starting point is what gives the reduce-only
// scan in step (searching only below the vertex's current color) a
// non-empty range to search on the very first iteration — a vertex with d
// neighbors has d+1 candidate colors in [0, d], so if its d neighbors
// occupy d distinct colors below d there is nothing left to search, but
// otherwise at least one slot under d is free and the scan finds it.
func NewPassivePushPrune(g graph.View, opts ...Option) (*PassivePushPrune, error) {
	initial := make([]uint32, g.N())
	for v := range initial {
		initial[v] = uint32(g.Degree(v))
	}

	color, err := colorstore.NewStore(g.N(), func(v int) uint32 { return initial[v] })
	if err != nil {
		return nil, err
	}

	width := graph.MaxDegree(g) + 2
	counts, err := colorstore.NewCountStore(g.N(), width)
	if err != nil {
		return nil, err
	}

	vertices := make([]*prunedVertex, g.N())
	for v := 0; v < g.N(); v++ {
		deg := g.Degree(v)

		pv := &prunedVertex{
			active: list.New(),
			elemOf: make(map[int]*list.Element, deg),
		}
		for i := 0; i < deg; i++ {
			u := g.Neighbor(v, i)
			pv.elemOf[u] = pv.active.PushBack(u)

			// u's initial color counts toward v's row exactly once, since
			// initial contributes count[v][color(u)]++ for each neighbor u.
			c := int(initial[u])
			counts.Set(v, c, counts.Count(v, c)+1)
		}
		vertices[v] = pv
	}

	return &PassivePushPrune{
		g:        g,
		color:    color,
		counts:   counts,
		vertices: vertices,
		sched:    scheduler.New(g.N()),
		opts:     newOptions(opts),
	}, nil
}

// Colors exposes the underlying color store for the assessor.
func (e *PassivePushPrune) Colors() *colorstore.Store { return e.color }

// Run drives the engine to a fixed point.
func (e *PassivePushPrune) Run(ctx context.Context) (Result, error) {
	return run(ctx, e.g, e.sched, e.opts, e.step)
}

func (e *PassivePushPrune) step(v int) bool {
	pv := e.vertices[v]

	pv.mu.Lock()
	minimal := pv.minimal
	pv.mu.Unlock()

	old := e.color.Read(v)
	var newColor uint32
	found := false
	for c := int(minimal); c < int(old); c++ {
		if e.counts.Count(v, c) == 0 {
			newColor = uint32(c)
			found = true

			break
		}
	}
	if !found {
		return false
	}

	settled := newColor == minimal
	e.color.Store(v, newColor)

	pv.mu.Lock()
	active := make([]int, 0, pv.active.Len())
	for el := pv.active.Front(); el != nil; el = el.Next() {
		active = append(active, el.Value.(int))
	}
	pv.mu.Unlock()

	for _, u := range active {
		e.counts.Push(u, int(old), int(newColor))
		if e.counts.Count(u, int(old)) == 0 || e.color.Read(u) == newColor {
			e.sched.Schedule(u)
		}

		if !settled {
			continue
		}

		// v will never change again: it no longer needs a place in u's
		// active list, and u's own lower bound can advance past the color
		// v now permanently occupies.
		nu := e.vertices[u]
		nu.mu.Lock()
		if el, ok := nu.elemOf[v]; ok {
			nu.active.Remove(el)
			delete(nu.elemOf, v)
		}
		if nu.minimal == newColor {
			nu.minimal = newColor + 1
		}
		nu.mu.Unlock()
	}

	return true
}
