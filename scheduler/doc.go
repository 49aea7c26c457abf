// Package scheduler implements the double-buffered bitset contract of
// spec §4.3/§6.2: a set of "currently scheduled" vertices, plus a "next"
// generation that concurrent Schedule calls populate while the current
// generation is being iterated.
package scheduler
