// File: randomize.go
package assess

import (
	"math/rand"

	"github.com/katalvlaran/vcolor/colorstore"
	"github.com/katalvlaran/vcolor/graph"
)

// RandomizeColors seeds store with a uniform-random color in [0, deg(v)]
// per vertex, one of the three initialization strategies spec §4.5 names
// (the other two, zero and Δ, are simple enough to pass directly as a
// Store's init function without a helper).
func RandomizeColors(g graph.View, store *colorstore.Store, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	for v := 0; v < g.N(); v++ {
		store.Store(v, uint32(rng.Intn(g.Degree(v)+1)))
	}
}
