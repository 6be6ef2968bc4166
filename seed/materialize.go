package seed

import (
	"math/rand"

	"github.com/grailbio/taxoclass/index"
)

// Materialize fills hit.Coords with up to remaining concrete reference
// coordinates drawn from hit.Range, and returns the number materialized.
//
// remaining is the caller's per-read coordinate budget (maxGenomeHitSize
// minus whatever has already been materialized for this read). When
// hit.Range spans more occurrences than remaining, Index.WalkSA itself draws
// a random subsample using rnd -- but a subsample is only unbiased if the
// order it comes back in is also random, so Materialize reshuffles the
// result whenever the caller's budget is the binding constraint (i.e.
// whenever the range was larger than what could be retrieved), rather than
// trusting the Index implementation to have randomized the return order
// itself.
func Materialize(idx index.Index, hit *PartialHit, remaining int, rnd *rand.Rand) int {
	if remaining <= 0 {
		hit.Coords = hit.Coords[:0]
		return 0
	}
	hit.Coords = idx.WalkSA(hit.Range, remaining, rnd)
	if hit.Range.Size() > uint64(remaining) {
		rnd.Shuffle(len(hit.Coords), func(i, j int) {
			hit.Coords[i], hit.Coords[j] = hit.Coords[j], hit.Coords[i]
		})
	}
	return len(hit.Coords)
}
