// Package coloring implements the family of concurrent greedy first-fit
// vertex-coloring engines: naive, optimistic/CAS, locking wound-wait (full
// and read-commit), passive push (plain and serial-prune), and partitioned
// recursive. Every variant except partitioned shares the driver loop in
// engine.go and differs only in its step function's synchronization
// discipline; partitioned runs its own loop over color buckets.
package coloring
