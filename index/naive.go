package index

import (
	"math/rand"
	"sort"
)

// NaiveIndex is a minimal, uncompressed Index implementation: a generalized
// suffix array over the concatenation of all reference sequences, built and
// searched with plain sort/binary-search. It exists only to give tests (and
// callers without a production FM-index handy) a concrete, correct Index to
// drive the classifier kernel against -- the real index (suffix-array
// backtracking, BWT step, bitpacked reference) is an external collaborator
// per the package doc, and this is not an attempt to approximate its
// performance characteristics.
type NaiveIndex struct {
	concat       string
	suffixStarts []int  // sorted by suffix; index is the SA position.
	refOfStart   []int  // refID for suffixStarts[i], parallel array.
	refOffsets   []int  // start offset of refOfStart[i] within its reference.
	refNames     []string
	refBounds    []int // refBounds[i], refBounds[i+1] is the [start,end) of reference i within concat.
}

// NewNaiveIndex builds a NaiveIndex over the given references, in order.
// Reference names and sequences must be non-empty.
func NewNaiveIndex(names []string, seqs []string) *NaiveIndex {
	if len(names) != len(seqs) {
		panic("index.NewNaiveIndex: names/seqs length mismatch")
	}
	idx := &NaiveIndex{refNames: append([]string(nil), names...)}
	var buf []byte
	idx.refBounds = make([]int, len(seqs)+1)
	type startInfo struct{ refID, offset int }
	var starts []int
	var infos []startInfo
	for refID, seq := range seqs {
		idx.refBounds[refID] = len(buf)
		for off := 0; off < len(seq); off++ {
			starts = append(starts, len(buf)+off)
			infos = append(infos, startInfo{refID, off})
		}
		buf = append(buf, seq...)
		buf = append(buf, 0) // sentinel: sorts before any ACGTN base, stops matches at the boundary.
	}
	idx.refBounds[len(seqs)] = len(buf)
	idx.concat = string(buf)

	order := make([]int, len(starts))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return idx.concat[starts[order[a]]:] < idx.concat[starts[order[b]]:]
	})

	idx.suffixStarts = make([]int, len(order))
	idx.refOfStart = make([]int, len(order))
	idx.refOffsets = make([]int, len(order))
	for i, o := range order {
		idx.suffixStarts[i] = starts[o]
		idx.refOfStart[i] = infos[o].refID
		idx.refOffsets[i] = infos[o].offset
	}
	return idx
}

func (idx *NaiveIndex) charAt(pos int) byte {
	if pos < 0 || pos >= len(idx.concat) {
		return 0
	}
	return idx.concat[pos]
}

// FullRange implements Index.
func (idx *NaiveIndex) FullRange() Range {
	return Range{Top: 0, Bot: uint64(len(idx.suffixStarts)), depth: 0}
}

// ExtendRight implements Index.
func (idx *NaiveIndex) ExtendRight(r Range, base byte) Range {
	if r.Empty() {
		return r
	}
	n := int(r.Bot - r.Top)
	lo := sort.Search(n, func(i int) bool {
		pos := idx.suffixStarts[int(r.Top)+i] + r.depth
		return idx.charAt(pos) >= base
	})
	hi := sort.Search(n, func(i int) bool {
		pos := idx.suffixStarts[int(r.Top)+i] + r.depth
		return idx.charAt(pos) > base
	})
	return Range{Top: r.Top + uint64(lo), Bot: r.Top + uint64(hi), depth: r.depth + 1}
}

// WalkSA implements Index.
func (idx *NaiveIndex) WalkSA(r Range, maxElements int, rnd *rand.Rand) []Coord {
	if r.Empty() || maxElements <= 0 {
		return nil
	}
	size := int(r.Size())
	if size <= maxElements {
		coords := make([]Coord, size)
		for i := 0; i < size; i++ {
			sa := int(r.Top) + i
			coords[i] = Coord{RefID: uint32(idx.refOfStart[sa]), RefOffset: uint64(idx.refOffsets[sa])}
		}
		return coords
	}
	// Range larger than the cap: draw a random subsample of the full range,
	// uniformly, without replacement (reservoir-free since size is known).
	perm := rnd.Perm(size)[:maxElements]
	coords := make([]Coord, maxElements)
	for i, p := range perm {
		sa := int(r.Top) + p
		coords[i] = Coord{RefID: uint32(idx.refOfStart[sa]), RefOffset: uint64(idx.refOffsets[sa])}
	}
	return coords
}

// ReferenceCount implements Index.
func (idx *NaiveIndex) ReferenceCount() int { return len(idx.refNames) }

// ReferenceName implements Index.
func (idx *NaiveIndex) ReferenceName(refID uint32) string { return idx.refNames[refID] }
