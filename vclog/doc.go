// Package vclog defines the diagnostic sink coloring engines and the CLI
// write per-iteration and final-verdict lines through, plus a default
// io.Writer-backed implementation and a silent Discard logger for library
// use.
package vclog
