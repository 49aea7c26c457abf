// File: fixtures.go
// Role: deterministic graph constructors for the coloring scenarios and
// property tests (spec §8).
package fixtures

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/vcolor/graph"
)

const (
	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minCompleteNodes = 1
)

// Path builds a simple path P_n: vertices 0..n-1 connected in a line.
func Path(n int) (*graph.Graph, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("fixtures.Path: n=%d: %w", n, ErrTooFewVertices)
	}

	b, err := graph.NewBuilder(n)
	if err != nil {
		return nil, err
	}
	for i := 1; i < n; i++ {
		if err := b.AddEdge(i-1, i); err != nil {
			return nil, err
		}
	}

	return b.Build(), nil
}

// Cycle builds a simple cycle C_n: vertices 0..n-1 connected in a ring.
func Cycle(n int) (*graph.Graph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("fixtures.Cycle: n=%d: %w", n, ErrTooFewVertices)
	}

	b, err := graph.NewBuilder(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if err := b.AddEdge(i, (i+1)%n); err != nil {
			return nil, err
		}
	}

	return b.Build(), nil
}

// Star builds a star S_n: vertex 0 is the hub, vertices 1..n-1 are leaves.
func Star(n int) (*graph.Graph, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("fixtures.Star: n=%d: %w", n, ErrTooFewVertices)
	}

	b, err := graph.NewBuilder(n)
	if err != nil {
		return nil, err
	}
	for i := 1; i < n; i++ {
		if err := b.AddEdge(0, i); err != nil {
			return nil, err
		}
	}

	return b.Build(), nil
}

// Complete builds the complete graph K_n: every pair of distinct vertices
// is connected.
func Complete(n int) (*graph.Graph, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("fixtures.Complete: n=%d: %w", n, ErrTooFewVertices)
	}

	b, err := graph.NewBuilder(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := b.AddEdge(i, j); err != nil {
				return nil, err
			}
		}
	}

	return b.Build(), nil
}

// TwoDisjointEdges builds the four-vertex, two-edge graph {0-1, 2-3} with
// no other connections — scenario S5 in spec §8.
func TwoDisjointEdges() (*graph.Graph, error) {
	b, err := graph.NewBuilder(4)
	if err != nil {
		return nil, err
	}
	if err := b.AddEdge(0, 1); err != nil {
		return nil, err
	}
	if err := b.AddEdge(2, 3); err != nil {
		return nil, err
	}

	return b.Build(), nil
}

// RandomUndirected builds an Erdős–Rényi G(n, p) undirected graph: every
// unordered pair {i, j} is connected independently with probability p,
// using the seeded PRNG for reproducibility across property-test runs.
func RandomUndirected(n int, p float64, seed int64) (*graph.Graph, error) {
	b, err := graph.NewBuilder(n)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				if err := b.AddEdge(i, j); err != nil {
					return nil, err
				}
			}
		}
	}

	return b.Build(), nil
}
