// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package biosimd_test

import (
	"bytes"
	"testing"

	"github.com/grailbio/taxoclass/biosimd"
)

// revCompSlow is a naive reference implementation used to cross-check
// ReverseComp8NoValidate.
func revCompSlow(src []byte) []byte {
	comp := map[byte]byte{'A': 'T', 'T': 'A', 'C': 'G', 'G': 'C', 'a': 't', 't': 'a', 'c': 'g', 'g': 'c'}
	dst := make([]byte, len(src))
	for i, b := range src {
		out, ok := comp[b]
		if !ok {
			out = b
		}
		dst[len(src)-1-i] = out
	}
	return dst
}

func TestReverseComp8NoValidate(t *testing.T) {
	cases := [][]byte{
		nil,
		[]byte(""),
		[]byte("A"),
		[]byte("ACGT"),
		[]byte("acgtACGT"),
		[]byte("ACGTNNNacgtn"),
		[]byte("GATTACAgattaca"),
	}
	for _, src := range cases {
		want := revCompSlow(src)
		got := make([]byte, len(src))
		biosimd.ReverseComp8NoValidate(got, src)
		if !bytes.Equal(got, want) {
			t.Errorf("ReverseComp8NoValidate(%q): got %q, want %q", src, got, want)
		}
	}
}

func TestReverseComp8NoValidateDoubleIsIdentity(t *testing.T) {
	src := []byte("ACGTacgtNNNNgattaca")
	once := make([]byte, len(src))
	twice := make([]byte, len(src))
	biosimd.ReverseComp8NoValidate(once, src)
	biosimd.ReverseComp8NoValidate(twice, once)
	if !bytes.Equal(twice, src) {
		t.Errorf("reverse-complementing twice: got %q, want %q", twice, src)
	}
}
