// File: locking.go
// Role: the wound-wait reader/writer-locked discipline (spec §4.4.3), full
// and read-commit (RC) sub-variants. Grounded on
// original_source/include/coloring_base_locks.h; the parallel driver in
// original_source/src/asynch_locksCM_incomplete.cc is treated as
// non-authoritative per spec §9 and is used only for the intended shape.
package coloring

import (
	"context"
	"runtime"

	"github.com/katalvlaran/vcolor/colorstore"
	"github.com/katalvlaran/vcolor/graph"
	"github.com/katalvlaran/vcolor/scheduler"
)

// Locking write-locks v, then acquires a read lock on each neighbor in
// adjacency order. A lock attempt that finds a neighbor's cell already
// held loses the wound-wait tie-break check: the lexicographically
// smaller (degree, priority) side dies, releasing everything it holds and
// restarting from scratch. Full holds every acquired read lock until v's
// own write completes; the read-commit sub-variant (NewLockingRC,
// stepReadCommit below) releases each neighbor's read lock immediately
// after sampling its color.
type Locking struct {
	g     graph.View
	store *colorstore.LockStore
	sched *scheduler.Bitset
	opts  Options

	readCommit bool
}

// newLocking constructs a Locking engine over g: the read-commit
// sub-variant when readCommit is true, the "hold everything" full variant
// otherwise. NewLocking and NewLockingRC below are its exported wrappers.
func newLocking(g graph.View, init func(v int) uint32, seed int64, readCommit bool, opts []Option) (*Locking, error) {
	priorities := colorstore.NewPriorityPermutation(g.N(), seed)
	store, err := colorstore.NewLockStore(g.N(), g.Degree, priorities, init)
	if err != nil {
		return nil, err
	}

	return &Locking{
		g:          g,
		store:      store,
		sched:      scheduler.New(g.N()),
		opts:       newOptions(opts),
		readCommit: readCommit,
	}, nil
}

// NewLocking constructs the full wound-wait engine, which holds every
// acquired neighbor read lock until v's own color has been written.
func NewLocking(g graph.View, init func(v int) uint32, seed int64, opts ...Option) (*Locking, error) {
	return newLocking(g, init, seed, false, opts)
}

// NewLockingRC constructs the read-commit sub-variant, which releases
// each neighbor's read lock immediately after sampling its color instead
// of holding the full set until v commits.
func NewLockingRC(g graph.View, init func(v int) uint32, seed int64, opts ...Option) (*Locking, error) {
	return newLocking(g, init, seed, true, opts)
}

// Colors exposes the underlying lock store for the assessor.
func (e *Locking) Colors() *colorstore.LockStore { return e.store }

// Run drives the engine to a fixed point.
func (e *Locking) Run(ctx context.Context) (Result, error) {
	if e.readCommit {
		return run(ctx, e.g, e.sched, e.opts, e.stepReadCommit)
	}

	return run(ctx, e.g, e.sched, e.opts, e.stepFull)
}

func (e *Locking) stepFull(v int) bool {
	deg := e.g.Degree(v)
	for {
		e.store.LockW(v)

		acquired := make([]int, 0, deg)
		neighColors := make([]uint32, deg)
		died := false
		for i := 0; i < deg; i++ {
			u := e.g.Neighbor(v, i)
			for {
				if e.store.TryLockR(u) {
					neighColors[i] = e.store.ColorLocked(u)
					acquired = append(acquired, u)

					break
				}
				if e.store.Less(v, u) {
					died = true

					break
				}
				runtime.Gosched()
			}
			if died {
				break
			}
		}

		if died {
			e.store.UnlockW(v)
			// Signed, explicit-bound reverse release: acquired locks must
			// come off in the reverse order they went on.
			for j := len(acquired) - 1; j >= 0; j-- {
				e.store.UnlockR(acquired[j])
			}
			runtime.Gosched()

			continue
		}

		limit := deg + 1
		forbidden := make([]bool, limit+1)
		for _, c := range neighColors {
			if int(c) <= limit {
				forbidden[c] = true
			}
		}

		old := e.store.ColorLocked(v)
		newColor := firstFit(forbidden, limit)
		changed := newColor != old
		if changed {
			e.store.SetColorLocked(v, newColor)
		}

		e.store.UnlockW(v)
		for j := len(acquired) - 1; j >= 0; j-- {
			e.store.UnlockR(acquired[j])
		}

		if changed {
			for i := 0; i < deg; i++ {
				e.sched.Schedule(e.g.Neighbor(v, i))
			}
		}

		return changed
	}
}

func (e *Locking) stepReadCommit(v int) bool {
	deg := e.g.Degree(v)
	for {
		e.store.LockW(v)

		limit := deg + 1
		forbidden := make([]bool, limit+1)
		died := false
		for i := 0; i < deg; i++ {
			u := e.g.Neighbor(v, i)
			for {
				if e.store.TryLockR(u) {
					c := e.store.ColorLocked(u)
					e.store.UnlockR(u)
					if int(c) <= limit {
						forbidden[c] = true
					}

					break
				}
				if e.store.Less(v, u) {
					died = true

					break
				}
				runtime.Gosched()
			}
			if died {
				break
			}
		}

		if died {
			e.store.UnlockW(v)
			runtime.Gosched()

			continue
		}

		old := e.store.ColorLocked(v)
		newColor := firstFit(forbidden, limit)
		changed := newColor != old
		if changed {
			e.store.SetColorLocked(v, newColor)
		}
		e.store.UnlockW(v)

		if changed {
			for i := 0; i < deg; i++ {
				e.sched.Schedule(e.g.Neighbor(v, i))
			}
		}

		return changed
	}
}
