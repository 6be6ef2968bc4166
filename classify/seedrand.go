package classify

import (
	"math/rand"

	farm "github.com/dgryski/go-farm"
)

// SeedFromName derives a deterministic PRNG seeded from a read (or pair)
// name. NewFromName uses it so that Coordinate Materializer subsampling is
// reproducible across repeated runs over the same input file without every
// caller having to thread its own seed through.
func SeedFromName(name string) *rand.Rand {
	h := farm.Hash64WithSeed([]byte(name), 0)
	return rand.New(rand.NewSource(int64(h)))
}
