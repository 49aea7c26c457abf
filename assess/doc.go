// Package assess checks a finished coloring against the two correctness
// invariants every discipline must converge to — conflict-free (I1) and
// first-fit minimal (I2) — and provides the small utilities
// (EnsureUndirected, MaxDegree, RandomizeColors) the CLI and the
// disciplines' setup code share.
package assess
