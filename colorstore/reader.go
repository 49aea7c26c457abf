// File: reader.go
package colorstore

// Reader is the read-only view of a color store the assessor consumes.
// Store, LockStore, and any future cell shape satisfy it with their
// existing Read(v) method, so assess.Assess never needs to know which
// discipline produced the coloring it is checking.
type Reader interface {
	Read(v int) uint32
}

var (
	_ Reader = (*Store)(nil)
	_ Reader = (*LockStore)(nil)
)
