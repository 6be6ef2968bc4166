package seed

// Select picks which strand's ReadBWTHit the Classifier Kernel should
// consume, by comparing the mean length of each strand's qualifying
// PartialHits (length >= minHitLen). Ties -- including the all-zero case,
// where neither strand produced a qualifying hit -- favor the
// reverse-complement strand (index 1), matching the source's _fw==0
// inverted-strand convention: strand 1 wins unless strand 0 is strictly
// better.
func Select(hits *[2]ReadBWTHit, minHitLen int) (selected int, totalHitLength [2]int) {
	var count [2]int
	for s := 0; s < 2; s++ {
		for i := range hits[s].Hits {
			h := &hits[s].Hits[i]
			if h.Len >= minHitLen {
				totalHitLength[s] += h.Len
				count[s]++
			}
		}
	}
	mean := func(s int) float64 {
		if count[s] == 0 {
			return 0
		}
		return float64(totalHitLength[s]) / float64(count[s])
	}
	if mean(0) > mean(1) {
		return 0, totalHitLength
	}
	return 1, totalHitLength
}
