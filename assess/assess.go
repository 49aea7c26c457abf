// File: assess.go
// Role: the post-run correctness check (spec §4.5, §8 properties 1-2).
package assess

import (
	"context"
	"sync/atomic"

	"github.com/katalvlaran/vcolor/colorstore"
	"github.com/katalvlaran/vcolor/graph"
	"github.com/katalvlaran/vcolor/parallelfor"
)

// Report summarizes an Assess run.
type Report struct {
	Conflicts    int
	NonMinimal   int
	MaxColorUsed uint32
	MaxDegree    int
}

// Success reports whether the coloring satisfies both invariants: no
// conflicting edge (I1) and every vertex holds the smallest color free
// among its final neighbor colors (I2).
func (r Report) Success() bool { return r.Conflicts == 0 && r.NonMinimal == 0 }

// Assess checks every vertex's final color against its neighbors' final
// colors, counting conflicts and non-minimal assignments in parallel.
func Assess(g graph.View, s colorstore.Reader) Report {
	var conflicts, nonMinimal int32
	var maxColor uint32

	// Best-effort: a background context is fine here, Assess never fails
	// mid-scan and has nothing to cancel.
	_ = parallelfor.Range(context.Background(), g.N(), 0, func(v int) error {
		deg := g.Degree(v)
		cv := s.Read(v)

		forEachAtomicMax(&maxColor, cv)

		limit := deg + 1
		forbidden := make([]bool, limit+1)
		for i := 0; i < deg; i++ {
			u := g.Neighbor(v, i)
			cu := s.Read(u)
			if u > v && cu == cv {
				atomic.AddInt32(&conflicts, 1)
			}
			if int(cu) <= limit {
				forbidden[cu] = true
			}
		}

		minimal := uint32(0)
		for c := 0; c <= limit; c++ {
			if !forbidden[c] {
				minimal = uint32(c)

				break
			}
		}
		if minimal != cv {
			atomic.AddInt32(&nonMinimal, 1)
		}

		return nil
	})

	return Report{
		Conflicts:    int(conflicts),
		NonMinimal:   int(nonMinimal),
		MaxColorUsed: atomic.LoadUint32(&maxColor),
		MaxDegree:    graph.MaxDegree(g),
	}
}

// forEachAtomicMax raises *dst to v if v is larger, via a CAS-retry loop.
func forEachAtomicMax(dst *uint32, v uint32) {
	for {
		old := atomic.LoadUint32(dst)
		if v <= old {
			return
		}
		if atomic.CompareAndSwapUint32(dst, old, v) {
			return
		}
	}
}

// MaxDegree returns Δ = max_v deg(v), re-exported here so callers working
// exclusively with the assess package don't need a separate import of
// graph for this one utility (spec §4.5's "Utilities: max_degree(G)").
func MaxDegree(g graph.View) int { return graph.MaxDegree(g) }
