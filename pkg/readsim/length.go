// 19 Oct 2026

package readsim

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// lengthSampler draws read lengths from a gamma distribution.
// A shape a little above 1 gives the long right tail of real runs.
// It only holds the parameters. The random source is passed in on
// every call.
type lengthSampler struct {
	shape    float64
	rate     float64 // 1 / scale, which is what distuv calls Beta
	min, max uint32
}

// newLengthSampler checks the parameters once, so we do not find out
// about a broken distribution after writing half a file.
func newLengthSampler(p *Params) (lengthSampler, error) {
	if !(p.LenShape > 0) || !(p.MeanLength > 0) {
		return lengthSampler{}, fmt.Errorf("%w: gamma shape %v, mean %v", ErrBadParam, p.LenShape, p.MeanLength)
	}
	if p.MinLength > p.MaxLength {
		return lengthSampler{}, fmt.Errorf("%w: length range [%d, %d]", ErrBadParam, p.MinLength, p.MaxLength)
	}
	scale := p.MeanLength / p.LenShape
	return lengthSampler{shape: p.LenShape, rate: 1 / scale, min: p.MinLength, max: p.MaxLength}, nil
}

// sample truncates the gamma value to an integer and clamps it.
// The float is clamped first since converting a float bigger than
// the largest uint32 is not defined.
func (ls lengthSampler) sample(rnd *rand.Rand) uint32 {
	g := distuv.Gamma{Alpha: ls.shape, Beta: ls.rate, Src: rnd}
	x := g.Rand()
	switch {
	case !(x < float64(ls.max)):
		return ls.max
	case x < float64(ls.min):
		return ls.min
	}
	return uint32(x)
}
