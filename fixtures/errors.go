// File: errors.go
package fixtures

import "errors"

// ErrTooFewVertices is returned by constructors given fewer vertices than
// their shape requires (mirrors the teacher builder package's sentinel of
// the same name and role).
var ErrTooFewVertices = errors.New("fixtures: too few vertices")
