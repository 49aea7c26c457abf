// File: ensure_undirected.go
package assess

import (
	"context"
	"sync/atomic"

	"github.com/katalvlaran/vcolor/graph"
	"github.com/katalvlaran/vcolor/parallelfor"
)

// EnsureUndirected checks that every vertex's in-degree equals its
// out-degree and that every arc u->v in g has a mirror v->u, returning
// graph.ErrNotUndirected on the first asymmetry found (CLI exit code 2,
// spec §7).
func EnsureUndirected(g graph.View) error {
	inDegree := make([]int, g.N())
	for v := 0; v < g.N(); v++ {
		for i := 0; i < g.Degree(v); i++ {
			inDegree[g.Neighbor(v, i)]++
		}
	}
	for v, in := range inDegree {
		if in != g.Degree(v) {
			return graph.ErrNotUndirected
		}
	}

	var bad int32

	_ = parallelfor.Range(context.Background(), g.N(), 0, func(v int) error {
		if atomic.LoadInt32(&bad) != 0 {
			return nil
		}
		deg := g.Degree(v)
		for i := 0; i < deg; i++ {
			u := g.Neighbor(v, i)
			if !hasArc(g, u, v) {
				atomic.StoreInt32(&bad, 1)

				return nil
			}
		}

		return nil
	})

	if atomic.LoadInt32(&bad) != 0 {
		return graph.ErrNotUndirected
	}

	return nil
}

// hasArc reports whether g has an arc from -> to, by linear scan. This
// works for any View implementation regardless of whether its neighbor
// lists are sorted.
func hasArc(g graph.View, from, to int) bool {
	deg := g.Degree(from)
	for i := 0; i < deg; i++ {
		if g.Neighbor(from, i) == to {
			return true
		}
	}

	return false
}
