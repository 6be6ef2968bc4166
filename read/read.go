// Package read defines the Read data model consumed by the seed-voting
// classifier kernel: a base sequence over {A,C,G,T,N} together with its
// reverse-complement view. A Read is immutable for the duration of one
// classification.
package read

import (
	gunsafe "github.com/grailbio/base/unsafe"
	"github.com/grailbio/taxoclass/biosimd"
)

// Strand selects which orientation of a Read a search operates on.
type Strand int

const (
	// Forward is the read as sequenced.
	Forward Strand = 0
	// ReverseComplement is the reverse complement of the read.
	ReverseComplement Strand = 1
)

// Read is one sequenced fragment (one mate of a pair, or a singleton).
// Immutable during classification; Seq and RC share no backing array with
// caller-owned buffers once constructed via New.
type Read struct {
	Name string
	seq  string
	rc   string
}

// New builds a Read from a raw base sequence, computing the
// reverse-complement eagerly so that both strands are available without
// per-seed allocation during the hot classification loop.
func New(name, seq string) Read {
	buf := make([]byte, len(seq))
	biosimd.ReverseComp8NoValidate(buf, gunsafe.StringToBytes(seq))
	return Read{Name: name, seq: seq, rc: gunsafe.BytesToString(buf)}
}

// Len returns the number of bases in the read (same for both strands).
func (r Read) Len() int { return len(r.seq) }

// Seq returns the strand's base sequence, forward as sequenced or the
// precomputed reverse complement.
func (r Read) Seq(s Strand) string {
	if s == Forward {
		return r.seq
	}
	return r.rc
}

// Base returns the base at position i of the given strand.
func (r Read) Base(s Strand, i int) byte { return r.Seq(s)[i] }

// Pair is at most two mates of one fragment. Singleton reads use Mates[0]
// with Mates[1] left zero-valued and Count()==1.
type Pair struct {
	Mates [2]Read
	n     int
}

// NewSingleton wraps a single Read as a one-mate Pair.
func NewSingleton(r Read) Pair { return Pair{Mates: [2]Read{r}, n: 1} }

// NewPair wraps two mates.
func NewPair(r1, r2 Read) Pair { return Pair{Mates: [2]Read{r1, r2}, n: 2} }

// Count returns 1 for a singleton, 2 for a pair.
func (p Pair) Count() int { return p.n }
