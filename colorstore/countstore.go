// File: countstore.go
// Role: per-vertex neighbor-color counters for the passive-push discipline
// (spec §4.4.4): count[v][c] = number of neighbors of v currently holding
// color c.
package colorstore

import "sync/atomic"

// CountStore holds one counter row per vertex, each row wide enough to
// index every color a first-fit search could ever propose (Δ+2, per the
// theorem in spec §4.4 that a valid color always exists in [0, deg(v)+1]).
type CountStore struct {
	counts [][]int32
}

// NewCountStore allocates a CountStore for n vertices, each row of the
// given width.
func NewCountStore(n, width int) (*CountStore, error) {
	if n < 0 || width < 0 {
		return nil, ErrSize
	}

	counts := make([][]int32, n)
	for v := range counts {
		counts[v] = make([]int32, width)
	}

	return &CountStore{counts: counts}, nil
}

// Count atomically reads count[v][c].
func (s *CountStore) Count(v, c int) int32 { return atomic.LoadInt32(&s.counts[v][c]) }

// Width returns the number of color slots tracked per vertex.
func (s *CountStore) Width(v int) int { return len(s.counts[v]) }

// Set directly assigns count[v][c]. Used only during single-threaded
// setup, before any vertex is scheduled — the steady-state counter
// mutation path is always Push.
func (s *CountStore) Set(v, c int, val int32) { atomic.StoreInt32(&s.counts[v][c], val) }

// Push atomically applies a color change of one of v's neighbors from
// oldColor to newColor to v's counter row: count[v][oldColor]-- then
// count[v][newColor]++.
//
// The original source implements this with two manual CAS-retry loops;
// atomic.AddInt32 is the direct, idiomatic Go equivalent of a
// fetch-and-add CAS loop and is used here instead (see DESIGN.md).
func (s *CountStore) Push(v, oldColor, newColor int) {
	atomic.AddInt32(&s.counts[v][oldColor], -1)
	atomic.AddInt32(&s.counts[v][newColor], 1)
}
