package graph

import "errors"

// Sentinel errors for graph construction and validation.
var (
	// ErrNegativeSize indicates NewBuilder was called with a negative vertex count.
	ErrNegativeSize = errors.New("graph: negative vertex count")

	// ErrVertexOutOfRange indicates an edge endpoint falls outside [0, N).
	ErrVertexOutOfRange = errors.New("graph: vertex out of range")

	// ErrNotUndirected indicates a graph failed the in-degree == out-degree
	// undirectedness check (spec §3 precondition, §7 input violation).
	ErrNotUndirected = errors.New("graph: not undirected")
)
