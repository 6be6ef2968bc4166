// Package seed implements the Partial-Match Searcher, Bidirectional Search
// Driver, Strand Selector, and Coordinate Materializer: everything the
// Classifier Kernel needs to turn one strand of one read into a sequence of
// maximal-match seeds with materialized reference coordinates.
package seed

import "github.com/grailbio/taxoclass/index"

// PartialHit (BWTHit in the source) is one maximal-match interval against
// the index on a given strand.
type PartialHit struct {
	// BWOff is the start position of the match measured from the right end
	// of the remaining query. Its exact semantics are implementation-defined
	// by the Searcher; callers use it only to reconstruct the read span.
	BWOff int
	// Len is the match length in bases.
	Len int
	// Range is the SA range of the match; Range.Size() occurrences exist in
	// the reference collection.
	Range index.Range
	// Coords is lazily filled by Materialize.
	Coords []index.Coord
}

// ReadBWTHit is the ordered sequence of PartialHits for one strand of one
// mate, together with search progress.
type ReadBWTHit struct {
	Hits []PartialHit
	// Done is set once the strand has no more bases worth seeding.
	Done bool
	// Cursor is the next unsearched read position.
	Cursor int
	// Forward records the strand this hit sequence was searched on
	// (_fw in the source).
	Forward bool
}

// Clear resets hit for reuse on a new read, keeping the Hits backing array.
func (rh *ReadBWTHit) Clear(forward bool) {
	rh.Hits = rh.Hits[:0]
	rh.Done = false
	rh.Cursor = 0
	rh.Forward = forward
}

func (rh *ReadBWTHit) appendHit(n PartialHit) *PartialHit {
	i := len(rh.Hits)
	if i < cap(rh.Hits) {
		rh.Hits = rh.Hits[:i+1]
	} else {
		rh.Hits = append(rh.Hits, PartialHit{})
	}
	rh.Hits[i] = n
	rh.Hits[i].Coords = rh.Hits[i].Coords[:0]
	return &rh.Hits[i]
}
