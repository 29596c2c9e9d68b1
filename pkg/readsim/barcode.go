// 19 Oct 2026

package readsim

import (
	"fmt"
	"math/rand/v2"
)

// Fixed barcode labels. Anything else is the dominant barcode or
// barcodeNN.
const (
	Unclassified = "unclassified"
	DashBarcode  = "-"
)

// barcodeSampler splits [0,1) into four pieces by cumulative probability.
type barcodeSampler struct {
	cutCommon, cutUnclass, cutDash float64
	nBarcode                       int
	names                          []string // barcode01, barcode02, ...
}

func newBarcodeSampler(p *Params) (barcodeSampler, error) {
	if p.NBarcode < 1 || p.NBarcode > 99 {
		return barcodeSampler{}, fmt.Errorf("%w: %d barcodes", ErrBadParam, p.NBarcode)
	}
	bs := barcodeSampler{
		cutCommon:  p.ProbCommon,
		cutUnclass: p.ProbCommon + p.ProbUnclassified,
		cutDash:    p.ProbCommon + p.ProbUnclassified + p.ProbDash,
		nBarcode:   p.NBarcode,
		names:      make([]string, p.NBarcode),
	}
	for i := range bs.names {
		bs.names[i] = BarcodeName(i + 1)
	}
	return bs, nil
}

// BarcodeName gives the label for barcode number i, counting from 1.
func BarcodeName(i int) string { return fmt.Sprintf("barcode%02d", i) }

// sample returns the dominant label most of the time. The tail is
// spread evenly over barcode01 to barcodeNN. The dominant barcode
// may turn up here too.
func (bs barcodeSampler) sample(rnd *rand.Rand, common string) string {
	r := rnd.Float64()
	switch {
	case r < bs.cutCommon:
		return common
	case r < bs.cutUnclass:
		return Unclassified
	case r < bs.cutDash:
		return DashBarcode
	}
	return bs.names[rnd.IntN(bs.nBarcode)]
}
