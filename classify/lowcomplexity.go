package classify

// acgtnIndex maps A, C, G, T to {0,1,2,3}; everything else (including N) to 4.
var acgtnIndex [256]uint8

func init() {
	for i := range acgtnIndex {
		acgtnIndex[i] = 4
	}
	acgtnIndex['a'], acgtnIndex['A'] = 0, 0
	acgtnIndex['c'], acgtnIndex['C'] = 1, 1
	acgtnIndex['g'], acgtnIndex['G'] = 2, 2
	acgtnIndex['t'], acgtnIndex['T'] = 3, 3
}

func countACGTN(seq string) [5]int {
	var counts [5]int
	for i := 0; i < len(seq); i++ {
		counts[acgtnIndex[seq[i]]]++
	}
	return counts
}

// isLowComplexity reports whether seq is dominated by at most two base
// types: if the two most frequent base classes together exceed frac of the
// sequence length, the read carries little taxonomic signal and is dropped
// before seeding.  frac <= 0 disables the filter.
func isLowComplexity(seq string, frac float64) bool {
	if frac <= 0 {
		return false
	}
	if len(seq) == 0 {
		return true
	}
	counts := countACGTN(seq)
	max, max2 := -1, -1
	for _, c := range counts {
		if c > max {
			max, max2 = c, max
		} else if c > max2 {
			max2 = c
		}
	}
	return float64(max+max2)/float64(len(seq)) > frac
}
