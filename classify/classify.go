// Package classify implements the Classifier Kernel: the orchestration that
// drives the Partial-Match Searcher, Strand Selector and Coordinate
// Materializer over each mate of a read (or pair), accumulates weighted
// votes into a Taxon Tally, and reports the taxa the read is evidence for.
package classify

import (
	"math/rand"
	"sort"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/taxoclass/index"
	"github.com/grailbio/taxoclass/metrics"
	"github.com/grailbio/taxoclass/read"
	"github.com/grailbio/taxoclass/seed"
	"github.com/grailbio/taxoclass/tally"
)

// TaxonLookup resolves a materialized reference ID to the (genus, species)
// pair it belongs to. ok is false when the reference carries no recognizable
// taxon, e.g. a malformed name in the reference store.
type TaxonLookup func(refID uint32) (genusID, speciesID uint32, ok bool)

// Report is one output row: a taxon and the read's (or pair's) combined
// evidence for it.
type Report struct {
	GenusID   uint32
	SpeciesID uint32
	Score     float64
}

// Classifier runs the seed-voting kernel for a stream of reads against one
// Index. It is not safe for concurrent use: callers sharding work across
// goroutines should give each goroutine its own Classifier (and Counters),
// sharing only the read-only Index and TaxonLookup.
type Classifier struct {
	opts     Opts
	idx      index.Index
	lookup   TaxonLookup
	rnd      *rand.Rand
	counters *metrics.Counters

	hits     [2]seed.ReadBWTHit
	genusMap tally.GenusMap
	sortIdx  []int

	nextHi int64

	genomeHitCnt               int
	bestScore, secondBestScore float64
	bestGenus, bestSpecies     uint32
	bestSet                    bool
}

// New builds a Classifier. rnd seeds the Coordinate Materializer's
// subsampling and must not be shared with another concurrently-running
// Classifier.
func New(idx index.Index, lookup TaxonLookup, rnd *rand.Rand, counters *metrics.Counters, opts Opts) *Classifier {
	return &Classifier{opts: opts, idx: idx, lookup: lookup, rnd: rnd, counters: counters}
}

// NewFromName builds a Classifier the way New does, but derives its
// Coordinate Materializer seed from name via SeedFromName instead of taking
// a *rand.Rand directly. It is meant for callers that shard a batch of
// reads (or read pairs) across goroutines by name or shard key and want
// every shard's subsampling to be reproducible from that key alone, without
// managing a pool of PRNGs themselves.
func NewFromName(idx index.Index, lookup TaxonLookup, name string, counters *metrics.Counters, opts Opts) *Classifier {
	return New(idx, lookup, SeedFromName(name), counters, opts)
}

// Classify runs the kernel over a single (unpaired) read.
func (c *Classifier) Classify(r read.Read, sink func(Report)) (err error) {
	return c.ClassifyPair(read.NewSingleton(r), sink)
}

// ClassifyPair runs the kernel over one or both mates of pair, emitting one
// Report per surviving taxon (or, under ReportTopGenusOnly, per species of
// each top-scoring genus) to sink.
//
// A panic from the underlying Index -- the only failure mode the Index
// Adapter contract allows, since every Index method is documented as
// fatal-on-corruption rather than error-returning -- is recovered here and
// turned into an error, so one corrupt read cannot bring down a batch run.
func (c *Classifier) ClassifyPair(p read.Pair, sink func(Report)) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.E("classify: index panicked, treating read as unclassifiable:", r)
		}
	}()

	c.genusMap.Clear()
	c.nextHi = 0
	c.genomeHitCnt = 0
	c.bestScore, c.secondBestScore = 0, 0
	c.bestSet = false

	anyMate := false
	for m := 0; m < p.Count(); m++ {
		mate := p.Mates[m]
		if isLowComplexity(mate.Seq(read.Forward), c.opts.LowComplexityFraction) {
			c.counters.LowComplexitySkipped++
			continue
		}
		anyMate = true
		isLastMate := m == p.Count()-1
		c.classifyMate(mate, isLastMate)
	}
	c.counters.ReadsClassified++
	if !anyMate {
		return nil
	}

	c.report(sink)
	return nil
}

// classifyMate runs the bidirectional seed search over one mate, selects its
// better strand, and feeds every qualifying PartialHit's materialized
// coordinates into the tally, applying the dominance early-termination bound
// only when isLastMate (so a pair's evidence is never cut short before both
// mates have had a chance to contribute).
func (c *Classifier) classifyMate(rd read.Read, isLastMate bool) {
	seed.RunBidirectional(c.idx, rd, c.opts.MinHitLen, &c.hits)
	selected, totalHitLength := seed.Select(&c.hits, c.opts.MinHitLen)
	rh := &c.hits[selected]

	c.sortIdx = c.sortIdx[:0]
	for i := range rh.Hits {
		c.sortIdx = append(c.sortIdx, i)
	}
	sort.Slice(c.sortIdx, func(a, b int) bool {
		ha, hb := &rh.Hits[c.sortIdx[a]], &rh.Hits[c.sortIdx[b]]
		sa, sb := ha.Range.Size(), hb.Range.Size()
		if sa != sb {
			return sa < sb
		}
		return ha.Len > hb.Len
	})

	usedPortion := 0
	for _, hi := range c.sortIdx {
		h := &rh.Hits[hi]
		if h.Len < c.opts.MinHitLen {
			c.counters.ShortHitsSkipped++
			continue
		}

		remaining := c.opts.MaxGenomeHitSize - c.genomeHitCnt
		if remaining <= 0 {
			break
		}
		n := seed.Materialize(c.idx, h, remaining, c.rnd)
		c.counters.SARangeSizeWalked += int64(h.Range.Size())
		usedPortion += h.Len
		if n == 0 {
			continue
		}

		thisHi := c.nextHi
		c.nextHi++
		w := tally.Weight(h.Len)
		for i := range h.Coords {
			if c.genomeHitCnt >= c.opts.MaxGenomeHitSize {
				break
			}
			c.counters.CoordsMaterialized++
			genusID, speciesID, ok := c.lookup(h.Coords[i].RefID)
			if !ok {
				c.counters.UnparsableTaxa++
				continue
			}
			newScore := c.genusMap.Add(genusID, speciesID, thisHi, w)
			c.genomeHitCnt++
			if newScore > 0 {
				c.updateBestScores(genusID, speciesID, newScore)
			}
		}
		c.counters.HitsPerRead++

		if isLastMate {
			remainingLength := totalHitLength[selected] - usedPortion
			if c.bestScore > c.secondBestScore+tally.Weight(remainingLength) {
				c.counters.EarlyTerminations++
				return
			}
		}
		if c.genomeHitCnt >= c.opts.MaxGenomeHitSize {
			return
		}
	}
}

// updateBestScores maintains the top-2 species weighted counts seen so far
// across the whole pair, incrementally: when the species currently holding
// bestScore improves further, its own growth must not bump the old
// bestScore into secondBestScore, since that would credit a second,
// nonexistent competitor.
func (c *Classifier) updateBestScores(genusID, speciesID uint32, newScore float64) {
	if c.bestSet && genusID == c.bestGenus && speciesID == c.bestSpecies {
		c.bestScore = newScore
		return
	}
	if newScore > c.bestScore {
		c.secondBestScore = c.bestScore
		c.bestScore = newScore
		c.bestGenus, c.bestSpecies = genusID, speciesID
		c.bestSet = true
	} else if newScore > c.secondBestScore {
		c.secondBestScore = newScore
	}
}

func (c *Classifier) report(sink func(Report)) {
	switch c.opts.ReportMode {
	case ReportTopGenusOnly:
		best := -1
		for i := range c.genusMap.Genera {
			if best < 0 || c.genusMap.Genera[i].WeightedCount > c.genusMap.Genera[best].WeightedCount {
				best = i
			}
		}
		if best < 0 {
			return
		}
		top := c.genusMap.Genera[best].WeightedCount
		for i := range c.genusMap.Genera {
			g := &c.genusMap.Genera[i]
			if g.WeightedCount != top {
				continue
			}
			for j := range g.Species {
				sink(Report{GenusID: g.ID, SpeciesID: g.Species[j].ID, Score: g.WeightedCount + g.Species[j].WeightedCount})
			}
		}
	case ReportAllTaxa:
		for i := range c.genusMap.Genera {
			g := &c.genusMap.Genera[i]
			for j := range g.Species {
				sink(Report{GenusID: g.ID, SpeciesID: g.Species[j].ID, Score: g.WeightedCount + g.Species[j].WeightedCount})
			}
		}
	default:
		log.Error.Printf("classify: unknown report mode %d, defaulting to all-taxa", c.opts.ReportMode)
		for i := range c.genusMap.Genera {
			g := &c.genusMap.Genera[i]
			for j := range g.Species {
				sink(Report{GenusID: g.ID, SpeciesID: g.Species[j].ID, Score: g.WeightedCount + g.Species[j].WeightedCount})
			}
		}
	}
}
