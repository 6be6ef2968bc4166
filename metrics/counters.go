// Package metrics holds the write-only counters the classifier kernel
// surfaces, in the same flat-struct-of-named-fields shape as
// markduplicates.Metrics: plain int64 fields incremented directly by the
// owning goroutine, with no synchronization, since each Classifier (and its
// Counters) is private to one worker thread.
package metrics

import "fmt"

// Counters accumulates monotonically-increasing classifier statistics across
// reads. Callers that shard reads across worker threads should give each
// thread's Classifier its own Counters and sum them after the run.
type Counters struct {
	// SARangeSizeWalked is the cumulative size of every SA range passed to
	// Index.WalkSA.
	SARangeSizeWalked int64
	// CoordsMaterialized is the number of reference coordinates returned by
	// Index.WalkSA across all reads.
	CoordsMaterialized int64
	// ReadsClassified counts reads (or pairs) the kernel ran to completion.
	ReadsClassified int64
	// HitsPerRead sums the number of qualifying PartialHits consumed across
	// reads, for computing a mean hits/read.
	HitsPerRead int64
	// EarlyTerminations counts reads where the dominance bound fired before
	// all selected-strand hits were processed.
	EarlyTerminations int64
	// ShortHitsSkipped counts PartialHits shorter than MinHitLen that were
	// carried through a ReadBWTHit but ignored by the tally.
	ShortHitsSkipped int64
	// UnparsableTaxa counts materialized coordinates whose reference name
	// could not be parsed into a (genus, species) pair.
	UnparsableTaxa int64
	// LowComplexitySkipped counts reads dropped by the low-complexity
	// pre-filter before seeding.
	LowComplexitySkipped int64
}

// String renders the counters as a tab-separated line, in the same spirit as
// markduplicates.Metrics.String.
func (c *Counters) String() string {
	return fmt.Sprintf("%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d",
		c.ReadsClassified, c.HitsPerRead, c.SARangeSizeWalked, c.CoordsMaterialized,
		c.EarlyTerminations, c.ShortHitsSkipped, c.UnparsableTaxa, c.LowComplexitySkipped)
}
