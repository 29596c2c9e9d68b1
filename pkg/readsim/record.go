// 19 Oct 2026

// Package readsim makes fake rows for a nanopore style sequencing summary.
// Each row gets a read identifier, a length, a mean q-score and a barcode,
// all drawn independently. The only coupling is that a read passes
// filtering if its q-score reaches the threshold.
package readsim

import (
	"math/rand/v2"
)

// Record is one row of the sequencing summary.
type Record struct {
	ReadID          string
	PassesFiltering bool
	SequenceLength  uint32
	MeanQscore      float32
	Barcode         string
}

// Generator owns the random source and the samplers for one run.
type Generator struct {
	rnd       *rand.Rand
	threshold float32
	common    string // the dominant barcode
	uuids     bool
	length    lengthSampler
	qscore    qscoreSampler
	barcode   barcodeSampler
}

// seedMix is xor'd with the seed for the second PCG word.
const seedMix = 0x9e3779b97f4a7c15

// NewRand returns a random source started from seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^seedMix))
}

// NewRandUnseeded returns a random source that will differ on every run.
func NewRandUnseeded() *rand.Rand {
	return NewRand(rand.Uint64())
}

// NewGenerator checks the parameters and sets up the samplers. The
// generator takes over rnd. Nothing else should draw from it.
func NewGenerator(p *Params, threshold float32, common string, rnd *rand.Rand) (*Generator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	g := &Generator{rnd: rnd, threshold: threshold, common: common}
	var err error
	if g.length, err = newLengthSampler(p); err != nil {
		return nil, err
	}
	if g.qscore, err = newQscoreSampler(p); err != nil {
		return nil, err
	}
	if g.barcode, err = newBarcodeSampler(p); err != nil {
		return nil, err
	}
	return g, nil
}

// SetUUID switches read identifiers to version 4 uuids.
func (g *Generator) SetUUID(b bool) { g.uuids = b }

// Passes says whether a read with mean q-score q passes filtering.
func Passes(q, threshold float32) bool { return q >= threshold }

// Next makes one record. The draws happen in a fixed order, identifier,
// length, q-score, barcode, so a seeded run can be repeated.
func (g *Generator) Next() Record {
	var rec Record
	if g.uuids {
		rec.ReadID = UUIDReadID(g.rnd)
	} else {
		rec.ReadID = ReadID(g.rnd)
	}
	rec.SequenceLength = g.length.sample(g.rnd)
	rec.MeanQscore = g.qscore.sample(g.rnd)
	rec.Barcode = g.barcode.sample(g.rnd, g.common)
	rec.PassesFiltering = Passes(rec.MeanQscore, g.threshold)
	return rec
}
