// Package vcolor is a library of concurrent greedy first-fit
// vertex-coloring engines for shared-memory graphs.
//
// A coloring assigns each vertex the smallest non-negative integer not
// already held by any of its neighbors. vcolor implements that rule under
// several concurrency disciplines, all convergent to the same class of
// fixed points but trading off differently between contention, staleness
// tolerance, and synchronization cost:
//
//	naive        — unsynchronized loads/stores, self-healing via rescheduling
//	optimistic   — snapshot-and-CAS publication
//	locking      — wound-wait reader/writer locking, full and read-commit
//	passive push — per-vertex neighbor-color counters, plus a serial-prune variant
//	partitioned  — bucket-by-color-class, exclusive per-bucket ownership
//
// Everything lives under subpackages:
//
//	graph       — the read-only adjacency view every discipline iterates over
//	colorstore  — the color cell shapes (lock-free, RW-locked, counter-based)
//	scheduler   — the double-buffered active-vertex bitset
//	parallelfor — the bounded data-parallel loop the engines drive iterations with
//	coloring    — the disciplines themselves
//	assess      — post-run conflict and minimality checking
//	graphio     — minimal text and binary graph loaders
//	fixtures    — deterministic graph constructors for tests
//	vclog       — the diagnostic logging interface
//	cmd/vcolor  — the CLI driver
package vcolor
