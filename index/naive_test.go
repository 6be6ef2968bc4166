package index_test

import (
	"math/rand"
	"testing"

	"github.com/grailbio/taxoclass/index"
	"github.com/grailbio/testutil/expect"
)

func TestExtendRightExactMatch(t *testing.T) {
	idx := index.NewNaiveIndex([]string{"r0"}, []string{"ACGTACGT"})
	r := idx.FullRange()
	for _, b := range []byte("ACGT") {
		r = idx.ExtendRight(r, b)
		expect.EQ(t, r.Empty(), false)
	}
	expect.EQ(t, r.Size(), uint64(2)) // "ACGT" occurs at offsets 0 and 4.
}

func TestExtendRightNoMatch(t *testing.T) {
	idx := index.NewNaiveIndex([]string{"r0"}, []string{"ACGTACGT"})
	r := idx.FullRange()
	r = idx.ExtendRight(r, 'T')
	r = idx.ExtendRight(r, 'T')
	expect.EQ(t, r.Empty(), true)
}

func TestWalkSAExactCount(t *testing.T) {
	idx := index.NewNaiveIndex([]string{"r0", "r1"}, []string{"AAAA", "AAAA"})
	r := idx.FullRange()
	r = idx.ExtendRight(r, 'A')
	coords := idx.WalkSA(r, 100, rand.New(rand.NewSource(1)))
	expect.EQ(t, len(coords), 8)
}

func TestWalkSASubsampleRespectsCap(t *testing.T) {
	idx := index.NewNaiveIndex([]string{"r0"}, []string{"AAAAAAAAAA"})
	r := idx.FullRange()
	r = idx.ExtendRight(r, 'A')
	coords := idx.WalkSA(r, 3, rand.New(rand.NewSource(1)))
	expect.EQ(t, len(coords), 3)
}

func TestReferenceNameAndCount(t *testing.T) {
	idx := index.NewNaiveIndex([]string{"r0", "r1"}, []string{"ACGT", "TTTT"})
	expect.EQ(t, idx.ReferenceCount(), 2)
	expect.EQ(t, idx.ReferenceName(0), "r0")
	expect.EQ(t, idx.ReferenceName(1), "r1")
}
