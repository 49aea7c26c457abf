// Package graph provides the read-only adjacency view that the coloring
// engines iterate over, plus a minimal thread-safe Builder used to
// construct one.
//
// A Graph is deliberately narrow: vertices are the dense integer range
// [0, N), and the only queries a coloring discipline ever needs are N, M,
// Degree(v), and the i-th neighbor of v. This mirrors the "excluded"
// compressed adjacency representation described in the specification —
// this package is a minimal, unoptimized stand-in for it, not a
// replacement for a production CSR loader.
//
// Graph itself is immutable once built and is therefore safe for
// unsynchronized concurrent reads by every coloring engine; Builder is the
// only mutable, lock-guarded type in the package.
package graph
