// Package colorstore holds the per-vertex color cells the coloring engines
// race on, in the three shapes spec §3/§4.2 requires: a lock-free atomic
// Store for the naive and optimistic disciplines, a LockStore carrying an
// embedded reader/writer lock plus tie-break fields for the wound-wait
// discipline, and a CountStore of per-neighbor-color counters for the
// passive-push discipline.
package colorstore
