// Package fixtures builds small, deterministic graph topologies for tests
// and CLI examples — the coloring-domain replacement for the teacher
// library's builder package, trimmed to the handful of shapes the
// specification's scenarios and property tests actually need.
package fixtures
