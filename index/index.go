// Package index defines the contract the seed-voting classifier kernel
// expects from the (externally supplied) FM-index: narrowing an SA range by
// one base at a time, and materializing a bounded, optionally-subsampled set
// of reference coordinates from a range. Index construction itself -- the
// suffix-array backtracking, BWT step, bitpacked reference storage -- is out
// of scope for this package; refstore builds the bundled naive implementation
// from a reference FASTA.
package index

import "math/rand"

// Range is a half-open SA interval [Top, Bot). Bot>Top iff the match the
// range represents still has at least one occurrence in the reference
// collection.
//
// depth is unexported bookkeeping private to whichever Index implementation
// produced the Range; the kernel never inspects it, only carries it forward
// across ExtendRight calls and reads Top/Bot at the end of a seed search, per
// the Index Adapter contract's "implementation-defined semantics".
type Range struct {
	Top, Bot uint64
	depth    int
}

// Empty reports whether the range has no occurrences left.
func (r Range) Empty() bool { return r.Bot <= r.Top }

// Size is the number of reference occurrences spanned by the range.
func (r Range) Size() uint64 {
	if r.Empty() {
		return 0
	}
	return r.Bot - r.Top
}

// Coord is one concrete reference position, materialized from an SA range.
type Coord struct {
	RefID     uint32
	RefOffset uint64
	Strand    bool
}

// Index is the opaque FM-index-like collaborator the classifier kernel
// drives. Implementations are memory-resident; no operation suspends, and
// any I/O failure is fatal (see classify package's corruption handling).
type Index interface {
	// FullRange returns the SA range matching the empty query, i.e. the
	// starting point for a new seed search.
	FullRange() Range

	// ExtendRight narrows r by one base. Returns an empty range when no
	// occurrences of the extended query remain.
	ExtendRight(r Range, base byte) Range

	// WalkSA materializes up to maxElements concrete reference positions
	// from r. When r.Size() > maxElements, the returned subset is drawn at
	// random from the full range using rnd. An empty result is not an
	// error.
	WalkSA(r Range, maxElements int, rnd *rand.Rand) []Coord

	// ReferenceCount returns the number of reference sequences indexed.
	ReferenceCount() int

	// ReferenceName resolves a reference ID to its name, as supplied at
	// index construction time.
	ReferenceName(refID uint32) string
}
