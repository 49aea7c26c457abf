// Package graphio loads a graph.Graph from the two minimal on-disk
// formats the CLI accepts: a text edge-list and a tiny fixed binary
// layout. Both are intentionally small — spec §6.3 frames this as a
// stand-in for the excluded, production-grade compressed loader, not a
// replacement for one.
package graphio
