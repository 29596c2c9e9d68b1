package readsim

import "math/rand/v2"

// Hooks so the external tests can poke at single samplers.

func SampleLength(p *Params, rnd *rand.Rand) (uint32, error) {
	ls, err := newLengthSampler(p)
	if err != nil {
		return 0, err
	}
	return ls.sample(rnd), nil
}

func Skewed(p *Params, v float64) float64 {
	qs, err := newQscoreSampler(p)
	if err != nil {
		panic(err)
	}
	return qs.skewed(v)
}

func BarcodeSampler(p *Params) func(rnd *rand.Rand, common string) string {
	bs, err := newBarcodeSampler(p)
	if err != nil {
		panic(err)
	}
	return bs.sample
}
