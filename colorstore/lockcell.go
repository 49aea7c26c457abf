// File: lockcell.go
// Role: the reader/writer-locked color cell used by the wound-wait
// discipline (spec §4.4.3), plus its owning LockStore.
package colorstore

import "sync"

// LockCell carries a color, an embedded reader/writer lock, and the two
// tie-break fields (degree, priority) the wound-wait discipline compares
// lexicographically.
//
// LockCell is a non-copyable aggregate by convention: LockStore holds
// []*LockCell, never []LockCell, so a cell is never relocated while a
// goroutine holds its lock (spec §9's ownership-contract design note).
type LockCell struct {
	mu       sync.RWMutex
	color    uint32
	priority uint32
	degree   uint32
}

// LockStore owns one LockCell per vertex.
type LockStore struct {
	cells []*LockCell
}

// NewLockStore allocates n LockCells. degree(v) supplies the cached degree
// field, priorities supplies each cell's unique tie-break rank (see
// NewPriorityPermutation), and init seeds the starting color.
func NewLockStore(n int, degree func(v int) int, priorities []uint32, init func(v int) uint32) (*LockStore, error) {
	if n < 0 {
		return nil, ErrSize
	}
	if len(priorities) != n {
		return nil, ErrSize
	}

	cells := make([]*LockCell, n)
	for v := 0; v < n; v++ {
		c := &LockCell{priority: priorities[v]}
		if degree != nil {
			c.degree = uint32(degree(v))
		}
		if init != nil {
			c.color = init(v)
		}
		cells[v] = c
	}

	return &LockStore{cells: cells}, nil
}

// N returns the number of cells.
func (s *LockStore) N() int { return len(s.cells) }

// LockW acquires the write lock on v (blocking).
func (s *LockStore) LockW(v int) { s.cells[v].mu.Lock() }

// UnlockW releases a write lock held on v.
//
// The original interface (spec §4.2) exposes a single unlock(v) for both
// lock kinds, matching pthread_rwlock_unlock's kind-agnostic signature.
// sync.RWMutex requires the caller to know which kind it holds, so this
// package exposes UnlockW/UnlockR instead of a single Unlock — an
// intentional, documented deviation (see DESIGN.md's Open Questions).
func (s *LockStore) UnlockW(v int) { s.cells[v].mu.Unlock() }

// TryLockR attempts to acquire a read lock on v without blocking,
// reporting whether it succeeded. This is the wound-wait discipline's
// non-blocking probe of a neighbor's cell.
func (s *LockStore) TryLockR(v int) bool { return s.cells[v].mu.TryRLock() }

// UnlockR releases a read lock held on v.
func (s *LockStore) UnlockR(v int) { s.cells[v].mu.RUnlock() }

// ColorLocked returns the color of v. The caller must already hold a read
// or write lock on v.
func (s *LockStore) ColorLocked(v int) uint32 { return s.cells[v].color }

// SetColorLocked publishes a new color for v. The caller must already
// hold the write lock on v.
func (s *LockStore) SetColorLocked(v int, val uint32) { s.cells[v].color = val }

// Priority returns v's static tie-break priority.
func (s *LockStore) Priority(v int) uint32 { return s.cells[v].priority }

// Degree returns v's cached degree.
func (s *LockStore) Degree(v int) int { return int(s.cells[v].degree) }

// Less reports whether v loses the wound-wait tie-break against u: the
// lexicographic comparison of (degree, priority) mandated by spec §9 (the
// commented-out priority-only alternative in the original source is not
// used, per the spec's explicit mandate).
func (s *LockStore) Less(v, u int) bool {
	cv, cu := s.cells[v], s.cells[u]
	if cv.degree != cu.degree {
		return cv.degree < cu.degree
	}

	return cv.priority < cu.priority
}

// Read acquires a read lock, snapshots the color, and releases it. Used
// for uncontended post-run reads (the assessor), never inside a hot
// coloring iteration.
func (s *LockStore) Read(v int) uint32 {
	c := s.cells[v]
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.color
}
