package seed

import "github.com/grailbio/taxoclass/index"

// PartialSearch extends a single maximal exact match starting at readPos in
// seq, appending the resulting PartialHit to rh and updating rh.Cursor and
// rh.Done.
//
// It repeatedly calls idx.ExtendRight until the SA range empties or the read
// is exhausted, then records whatever was matched -- including a
// zero-length match, which still carries useful bw_off/range information
// for the caller (a seed that fails to extend at all is not silently
// dropped).
func PartialSearch(idx index.Index, seq string, minHitLen int, readPos int, rh *ReadBWTHit) {
	rdlen := len(seq)
	r := idx.FullRange()
	pos := readPos
	for pos < rdlen {
		next := idx.ExtendRight(r, seq[pos])
		if next.Empty() {
			break
		}
		r = next
		pos++
	}
	matchLen := pos - readPos
	rh.appendHit(PartialHit{
		BWOff: rdlen - pos,
		Len:   matchLen,
		Range: r,
	})

	if matchLen > 0 {
		rh.Cursor = readPos + matchLen
	} else {
		rh.Cursor = readPos + 1
	}
	if rdlen-rh.Cursor < minHitLen {
		rh.Done = true
	}
}
