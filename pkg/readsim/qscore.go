// 19 Oct 2026

package readsim

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// qscoreSampler draws a mean q-score from a normal distribution and
// then bends it. Values below the mean are pushed further down
// (multiply by skew), values above are squeezed (divide by skew).
// This gives a long tail of poor reads and a short tail of good ones.
type qscoreSampler struct {
	mean, sd float64
	min, max float64
	skew     float64
	shift    float64
}

func newQscoreSampler(p *Params) (qscoreSampler, error) {
	if !(p.QscoreSD > 0) || !(p.Skew > 0) {
		return qscoreSampler{}, fmt.Errorf("%w: q-score sd %v, skew %v", ErrBadParam, p.QscoreSD, p.Skew)
	}
	if !(p.MinQscore <= p.MaxQscore) {
		return qscoreSampler{}, fmt.Errorf("%w: q-score range [%v, %v]", ErrBadParam, p.MinQscore, p.MaxQscore)
	}
	return qscoreSampler{
		mean:  p.MeanQscore,
		sd:    p.QscoreSD,
		min:   p.MinQscore,
		max:   p.MaxQscore,
		skew:  p.Skew,
		shift: p.Shift,
	}, nil
}

// skewed applies the piecewise transform and the clamp to a raw
// normal value.
func (qs qscoreSampler) skewed(v float64) float64 {
	d := v - qs.mean
	if v < qs.mean {
		v += d * qs.skew * qs.shift
	} else {
		v += d / qs.skew * qs.shift
	}
	return min(max(v, qs.min), qs.max)
}

func (qs qscoreSampler) sample(rnd *rand.Rand) float32 {
	n := distuv.Normal{Mu: qs.mean, Sigma: qs.sd, Src: rnd}
	return float32(qs.skewed(n.Rand()))
}
