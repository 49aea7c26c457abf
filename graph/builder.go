// File: builder.go
// Role: the only mutable, lock-guarded type in the package — accumulates
// edges and freezes them into an immutable Graph.
package graph

import (
	"fmt"
	"sort"
	"sync"
)

// Builder accumulates directed arcs under a single mutex, mirroring the
// teacher library's lock-per-mutable-structure discipline (core.Graph uses
// two locks because it protects two independently-shaped catalogs;
// Builder protects one adjacency table, so one mutex suffices).
//
// A Builder is safe for concurrent AddEdge/AddDirectedEdge calls from
// multiple goroutines while loading; Build freezes it into a Graph that no
// longer needs locking.
type Builder struct {
	mu   sync.Mutex
	adj  [][]int32
	m    int
	done bool
}

// NewBuilder allocates a Builder for exactly n vertices, numbered [0, n).
func NewBuilder(n int) (*Builder, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}

	return &Builder{adj: make([][]int32, n)}, nil
}

// AddDirectedEdge records a single arc u->v. It does not add the mirror
// arc v->u; callers building an undirected graph should use AddEdge, or
// call AddDirectedEdge twice themselves (graphio uses the single-arc form
// directly so that a malformed, asymmetric input file can be detected by
// assess.EnsureUndirected rather than silently repaired).
func (b *Builder) AddDirectedEdge(u, v int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.done {
		return fmt.Errorf("graph: AddDirectedEdge after Build")
	}
	if u < 0 || u >= len(b.adj) || v < 0 || v >= len(b.adj) {
		return ErrVertexOutOfRange
	}

	b.adj[u] = append(b.adj[u], int32(v))
	b.m++

	return nil
}

// AddEdge records an undirected edge {u,v} as a pair of mirrored arcs
// (a single arc if u == v, matching a self-loop's single incidence).
func (b *Builder) AddEdge(u, v int) error {
	if err := b.AddDirectedEdge(u, v); err != nil {
		return err
	}
	if u == v {
		return nil
	}

	return b.AddDirectedEdge(v, u)
}

// Build sorts each vertex's neighbor list ascending and freezes the
// accumulated arcs into an immutable Graph. Build may be called only once;
// subsequent Add* calls return an error.
//
// Complexity: O(N + M log M) for the per-vertex sorts.
func (b *Builder) Build() *Graph {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.done = true
	adj := make([][]int32, len(b.adj))
	for v, neighbors := range b.adj {
		sorted := make([]int32, len(neighbors))
		copy(sorted, neighbors)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		adj[v] = sorted
	}

	return &Graph{adj: adj, m: b.m}
}
