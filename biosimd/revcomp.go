// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package biosimd

// revComp8Table maps every byte value to its reverse-complement under the
// usual ACGT/acgt/N convention; a byte with no defined complement maps to
// itself so callers can run this over already-validated ASCII sequence
// without a separate legality check.
var revComp8Table = [256]byte{
	65: 'T', 67: 'G', 71: 'C', 84: 'A',
	97: 't', 99: 'g', 103: 'c', 116: 'a',
}

func init() {
	for i := range revComp8Table {
		if revComp8Table[i] == 0 {
			revComp8Table[i] = byte(i)
		}
	}
}

// ReverseComp8NoValidate writes the reverse complement of src into dst,
// which must be at least as long as src. It does not validate that src
// contains only recognized bases; unrecognized bytes pass through
// unchanged in reversed position.
func ReverseComp8NoValidate(dst, src []byte) {
	n := len(src)
	for i := 0; i < n; i++ {
		dst[i] = revComp8Table[src[n-1-i]]
	}
}
