// File: priority.go
// Role: replaces the original's process-wide "next priority" counter
// (spec §9 design note) with an explicit, stateless builder.
package colorstore

import "math/rand"

// NewPriorityPermutation returns a permutation of [0, n) to use as unique
// vertex tie-break priorities for the wound-wait locking discipline.
//
// The original source assigns priorities via a package-level counter
// incremented in each cell's constructor — effectively "priority(v) = v"
// in construction order, guarded by hidden global mutable state. This
// builder produces the same guarantee (a bijection to [0, n), so ties are
// always fully broken) without a global. It always shuffles when n >= 2;
// callers who want the original's construction-order behavior use
// IdentityPriorities instead.
func NewPriorityPermutation(n int, seed int64) []uint32 {
	perm := IdentityPriorities(n)
	if n < 2 {
		return perm
	}

	rng := rand.New(rand.NewSource(seed))
	// Fisher-Yates shuffle.
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}

	return perm
}

// IdentityPriorities returns priority(v) = v for v in [0, n), matching the
// original's un-shuffled construction-order assignment.
func IdentityPriorities(n int) []uint32 {
	perm := make([]uint32, n)
	for i := range perm {
		perm[i] = uint32(i)
	}

	return perm
}
