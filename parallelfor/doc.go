// Package parallelfor provides the data-parallel loop primitive the
// coloring engines drive their iterations with (spec §5's scheduling
// model): a bounded fan-out over [0, n) built on golang.org/x/sync/errgroup,
// standing in for the work-stealing pool the specification abstracts away
// as an external collaborator.
package parallelfor
