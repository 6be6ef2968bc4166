package classify_test

import (
	"math/rand"
	"testing"

	"github.com/grailbio/taxoclass/classify"
	"github.com/grailbio/taxoclass/index"
	"github.com/grailbio/taxoclass/metrics"
	"github.com/grailbio/taxoclass/read"
	"github.com/grailbio/testutil/expect"
)

// taxonTable is a tiny TaxonLookup fixture: refID i belongs to taxa[i].
type taxonTable []struct{ genus, species uint32 }

func (tt taxonTable) lookup(refID uint32) (uint32, uint32, bool) {
	if int(refID) >= len(tt) {
		return 0, 0, false
	}
	return tt[refID].genus, tt[refID].species, true
}

func newClassifier(names, seqs []string, taxa taxonTable, opts classify.Opts) *classify.Classifier {
	idx := index.NewNaiveIndex(names, seqs)
	counters := &metrics.Counters{}
	rnd := rand.New(rand.NewSource(42))
	return classify.New(idx, taxa.lookup, rnd, counters, opts)
}

// S1: a read that matches exactly one reference should vote for exactly one
// species.
func TestClassifySingleExactSpeciesHit(t *testing.T) {
	seq := "ACGTACGTACGTACGTACGTACGT"
	c := newClassifier(
		[]string{"ref0"}, []string{seq},
		taxonTable{{genus: 1, species: 100}},
		classify.Opts{MinHitLen: 20, MaxGenomeHitSize: 100, ReportMode: classify.ReportAllTaxa},
	)

	var reports []classify.Report
	err := c.Classify(read.New("r1", seq), func(r classify.Report) { reports = append(reports, r) })
	expect.NoError(t, err)
	expect.EQ(t, len(reports), 1)
	expect.EQ(t, reports[0].GenusID, uint32(1))
	expect.EQ(t, reports[0].SpeciesID, uint32(100))
	expect.EQ(t, reports[0].Score > 0, true)
}

// S2: a read matching two species of the same genus should report both,
// with the genus contribution shared between them.
func TestClassifyTwoSpeciesOneGenus(t *testing.T) {
	seq := "ACGTACGTACGTACGTACGTACGT"
	c := newClassifier(
		[]string{"ref0", "ref1"}, []string{seq, seq},
		taxonTable{{genus: 1, species: 100}, {genus: 1, species: 101}},
		classify.Opts{MinHitLen: 20, MaxGenomeHitSize: 100, ReportMode: classify.ReportAllTaxa},
	)

	var reports []classify.Report
	err := c.Classify(read.New("r1", seq), func(r classify.Report) { reports = append(reports, r) })
	expect.NoError(t, err)
	expect.EQ(t, len(reports), 2)
	expect.EQ(t, reports[0].GenusID, uint32(1))
	expect.EQ(t, reports[1].GenusID, uint32(1))
}

// A read too short to reach MinHitLen anywhere should classify cleanly to
// no reports at all, rather than erroring.
func TestClassifyNoQualifyingHits(t *testing.T) {
	c := newClassifier(
		[]string{"ref0"}, []string{"ACGTACGTACGTACGTACGTACGT"},
		taxonTable{{genus: 1, species: 100}},
		classify.Opts{MinHitLen: 30, MaxGenomeHitSize: 100, ReportMode: classify.ReportAllTaxa},
	)
	var reports []classify.Report
	err := c.Classify(read.New("r1", "ACGTACGTACGTACGTACGTACGT"), func(r classify.Report) { reports = append(reports, r) })
	expect.NoError(t, err)
	expect.EQ(t, len(reports), 0)
}

// A low-complexity read is skipped entirely before seeding.
func TestClassifyLowComplexitySkipped(t *testing.T) {
	c := newClassifier(
		[]string{"ref0"}, []string{"AAAAAAAAAAAAAAAAAAAAAAAA"},
		taxonTable{{genus: 1, species: 100}},
		classify.Opts{MinHitLen: 10, MaxGenomeHitSize: 100, LowComplexityFraction: 0.9, ReportMode: classify.ReportAllTaxa},
	)
	var reports []classify.Report
	err := c.Classify(read.New("r1", "AAAAAAAAAAAAAAAAAAAAAAAA"), func(r classify.Report) { reports = append(reports, r) })
	expect.NoError(t, err)
	expect.EQ(t, len(reports), 0)
}

// ReportTopGenusOnly emits only the dominant genus.
func TestClassifyReportTopGenusOnly(t *testing.T) {
	seqA := "ACGTACGTACGTACGTACGTACGTACGTACGT"
	seqB := "TTGGCCAATTGGCCAATTGGCCAA"
	c := newClassifier(
		[]string{"ref0", "ref1"}, []string{seqA, seqB},
		taxonTable{{genus: 1, species: 100}, {genus: 2, species: 200}},
		classify.Opts{MinHitLen: 20, MaxGenomeHitSize: 100, ReportMode: classify.ReportTopGenusOnly},
	)
	var reports []classify.Report
	err := c.Classify(read.New("r1", seqA), func(r classify.Report) { reports = append(reports, r) })
	expect.NoError(t, err)
	expect.EQ(t, len(reports), 1)
	expect.EQ(t, reports[0].GenusID, uint32(1))
}

// A coordinate cap smaller than the number of occurrences should still
// classify without error, materializing only up to the cap.
func TestClassifyCoordinateCap(t *testing.T) {
	seq := "AAAAAAAAAAAAAAAAAAAAAAAA"
	names := make([]string, 10)
	seqs := make([]string, 10)
	taxa := make(taxonTable, 10)
	for i := range names {
		names[i] = "ref"
		seqs[i] = seq
		taxa[i] = struct{ genus, species uint32 }{genus: 1, species: uint32(100 + i)}
	}
	c := newClassifier(names, seqs, taxa, classify.Opts{MinHitLen: 10, MaxGenomeHitSize: 5, ReportMode: classify.ReportAllTaxa})
	var reports []classify.Report
	err := c.Classify(read.New("r1", seq), func(r classify.Report) { reports = append(reports, r) })
	expect.NoError(t, err)
	expect.EQ(t, len(reports) <= 5, true)
}

// ClassifyPair accumulates evidence from both mates into one report. One mate
// alone scores genus w + species w = 2w, so a score above 2w needs both.
func TestClassifyPairAccumulatesAcrossMates(t *testing.T) {
	seq := "ACGTACGTACGTACGTACGTACGT"
	c := newClassifier(
		[]string{"ref0"}, []string{seq},
		taxonTable{{genus: 1, species: 100}},
		classify.Opts{MinHitLen: 20, MaxGenomeHitSize: 100, ReportMode: classify.ReportAllTaxa},
	)
	var reports []classify.Report
	pair := read.NewPair(read.New("r1/1", seq), read.New("r1/2", seq))
	err := c.ClassifyPair(pair, func(r classify.Report) { reports = append(reports, r) })
	expect.NoError(t, err)
	expect.EQ(t, len(reports), 1)
	expect.EQ(t, reports[0].Score > 2*tallyWeightFor(len(seq)), true)
}

func tallyWeightFor(l int) float64 {
	d := float64(l - 15)
	return d * d
}
