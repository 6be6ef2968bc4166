package seed

import (
	"github.com/grailbio/taxoclass/index"
	"github.com/grailbio/taxoclass/read"
)

// Increment is the re-seeding step used to decide how far the cursor moves
// after a PartialHit longer than Increment bases: short of minHitLen, the
// driver backs up and retries the overlap; otherwise it steps one base past
// the match to pick up the next independent seed.
const Increment = 10

// RunBidirectional drives the Partial-Match Searcher alternately over the
// forward and reverse-complement strands of rd, interleaving calls so that
// neither strand can run far ahead of the other. hits[0] accumulates the
// forward-strand seeds, hits[1] the reverse-complement ones.
//
// The interleaving is bounded by a progress-balance rule: once one strand's
// cursor leads the other's by more than maxDiff = max(rdlen/2, 2*minHitLen),
// the trailing strand is marked done without further searching, since it has
// already fallen far enough behind that finishing it cannot change the
// strand selection.
func RunBidirectional(idx index.Index, rd read.Read, minHitLen int, hits *[2]ReadBWTHit) {
	rdlen := rd.Len()
	hits[0].Clear(true)
	hits[1].Clear(false)
	if rdlen < minHitLen {
		hits[0].Done = true
		hits[1].Done = true
		return
	}

	maxDiff := rdlen / 2
	if d := 2 * minHitLen; d > maxDiff {
		maxDiff = d
	}

	for !hits[0].Done || !hits[1].Done {
		for s := 0; s < 2; s++ {
			h := &hits[s]
			if h.Done {
				continue
			}
			strandSeq := rd.Seq(read.Strand(s))
			PartialSearch(idx, strandSeq, minHitLen, h.Cursor, h)

			last := &h.Hits[len(h.Hits)-1]
			if last.Len > Increment {
				if last.Len < minHitLen {
					h.Cursor -= Increment
					if h.Cursor < 0 {
						h.Cursor = 0
					}
				} else {
					h.Cursor++
				}
			}
			if h.Cursor+minHitLen >= rdlen {
				h.Done = true
			}
		}

		if hits[0].Cursor > hits[1].Cursor+maxDiff {
			hits[1].Done = true
		} else if hits[1].Cursor > hits[0].Cursor+maxDiff {
			hits[0].Done = true
		}
	}
}
