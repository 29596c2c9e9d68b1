// 19 Oct 2026

// Package tally collects the numbers people look at first in a
// sequencing summary: how many reads passed, how they are spread over
// barcodes, total bases, N50 and q-score spread.
package tally

import (
	"cmp"
	"fmt"
	"io"
	"slices"

	"github.com/andrew-torda/matrix"
	jsoniter "github.com/json-iterator/go"

	"github.com/andrew-torda/summary_sim/pkg/readsim"
	"github.com/andrew-torda/summary_sim/pkg/report"
)

// Columns of the barcode table
const (
	colFail = iota
	colPass
	nCol
)

// Tally accumulates records. The zero value is not ready, use New.
// Counts are kept as ints. Float32 stops counting at 2^24.
type Tally struct {
	nPass    int
	nBase    uint64
	barcodes []string       // row names of counts
	index    map[string]int // barcode -> row
	counts   [][nCol]int
	lengths  []uint32
	qscores  []float32
}

// New returns an empty Tally.
func New() *Tally {
	return &Tally{index: make(map[string]int)}
}

// Add counts one record.
func (t *Tally) Add(rec *readsim.Record) {
	row, ok := t.index[rec.Barcode]
	if !ok {
		row = len(t.barcodes)
		t.index[rec.Barcode] = row
		t.barcodes = append(t.barcodes, rec.Barcode)
		t.counts = append(t.counts, [nCol]int{})
	}
	if rec.PassesFiltering {
		t.nPass++
		t.counts[row][colPass]++
	} else {
		t.counts[row][colFail]++
	}
	t.nBase += uint64(rec.SequenceLength)
	t.lengths = append(t.lengths, rec.SequenceLength)
	t.qscores = append(t.qscores, rec.MeanQscore)
}

// NRead is how many records have been added.
func (t *Tally) NRead() int { return len(t.lengths) }

// FracTable converts the counts to fractions. Row i belongs to barcode
// i in the order they were first seen, and holds the fraction of that
// barcode's reads which failed and passed, so each row adds up to 1.
func (t *Tally) FracTable() (*matrix.FMatrix2d, []string) {
	fr := matrix.NewFMatrix2d(len(t.barcodes), nCol)
	for i, c := range t.counts {
		total := float32(c[colFail] + c[colPass])
		for icol := range nCol {
			fr.Mat[i][icol] = float32(c[icol]) / total
		}
	}
	return fr, t.barcodes
}

// FromFile reads a whole report and tallies it.
func FromFile(fname string) (*Tally, error) {
	t := New()
	err := report.Scan(fname, func(rec *readsim.Record) error {
		t.Add(rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// BarcodeCount is one line of the barcode table.
type BarcodeCount struct {
	Barcode  string  `json:"barcode"`
	NRead    int     `json:"n_read"`
	NPass    int     `json:"n_pass"`
	Frac     float64 `json:"frac"`      // of all reads
	PassFrac float32 `json:"pass_frac"` // of this barcode's reads
}

// Summary is what gets printed.
type Summary struct {
	NRead        int            `json:"n_read"`
	NPass        int            `json:"n_pass"`
	FracPass     float64        `json:"frac_pass"`
	NBase        uint64         `json:"n_base"`
	MinLength    uint32         `json:"min_length"`
	MaxLength    uint32         `json:"max_length"`
	MeanLength   float64        `json:"mean_length"`
	MedianLength float64        `json:"median_length"`
	N50          uint32         `json:"n50"`
	MinQscore    float32        `json:"min_qscore"`
	MaxQscore    float32        `json:"max_qscore"`
	MeanQscore   float64        `json:"mean_qscore"`
	MedianQscore float64        `json:"median_qscore"`
	Barcodes     []BarcodeCount `json:"barcodes"`
}

// median of sorted numbers
func median[T uint32 | float32](x []T) float64 {
	n := len(x)
	if n%2 == 1 {
		return float64(x[n/2])
	}
	return (float64(x[n/2-1]) + float64(x[n/2])) / 2
}

// n50 wants lengths sorted, longest first.
func n50(desc []uint32, total uint64) uint32 {
	var cum uint64
	for _, l := range desc {
		cum += uint64(l)
		if 2*cum >= total {
			return l
		}
	}
	return 0
}

// Summary works out the statistics. Barcodes are sorted by number of
// reads, most first, ties by name.
func (t *Tally) Summary() Summary {
	s := Summary{NRead: t.NRead(), NPass: t.nPass, NBase: t.nBase}
	if s.NRead == 0 {
		return s
	}
	nread := float64(s.NRead)
	s.FracPass = float64(t.nPass) / nread
	s.MeanLength = float64(t.nBase) / nread

	lengths := slices.Clone(t.lengths)
	slices.Sort(lengths)
	s.MinLength, s.MaxLength = lengths[0], lengths[len(lengths)-1]
	s.MedianLength = median(lengths)
	slices.Reverse(lengths)
	s.N50 = n50(lengths, t.nBase)

	qscores := slices.Clone(t.qscores)
	slices.Sort(qscores)
	s.MinQscore, s.MaxQscore = qscores[0], qscores[len(qscores)-1]
	s.MedianQscore = median(qscores)
	var qsum float64
	for _, q := range qscores {
		qsum += float64(q)
	}
	s.MeanQscore = qsum / nread

	fr, names := t.FracTable()
	for i, name := range names {
		nFail, nPass := t.counts[i][colFail], t.counts[i][colPass]
		s.Barcodes = append(s.Barcodes, BarcodeCount{
			Barcode:  name,
			NRead:    nFail + nPass,
			NPass:    nPass,
			Frac:     float64(nFail+nPass) / nread,
			PassFrac: fr.Mat[i][colPass],
		})
	}
	slices.SortFunc(s.Barcodes, func(a, b BarcodeCount) int {
		if c := cmp.Compare(b.NRead, a.NRead); c != 0 {
			return c
		}
		return cmp.Compare(a.Barcode, b.Barcode)
	})
	return s
}

// WriteText writes the summary for people to read.
func (s *Summary) WriteText(w io.Writer) error {
	const f = "%-16s %v\n"
	rows := []struct {
		name string
		v    any
	}{
		{"reads", s.NRead},
		{"passed", fmt.Sprintf("%d (%.2f%%)", s.NPass, 100*s.FracPass)},
		{"bases", s.NBase},
		{"length min/max", fmt.Sprintf("%d / %d", s.MinLength, s.MaxLength)},
		{"length mean", fmt.Sprintf("%.1f", s.MeanLength)},
		{"length median", fmt.Sprintf("%.1f", s.MedianLength)},
		{"N50", s.N50},
		{"q-score min/max", fmt.Sprintf("%g / %g", s.MinQscore, s.MaxQscore)},
		{"q-score mean", fmt.Sprintf("%.2f", s.MeanQscore)},
		{"q-score median", fmt.Sprintf("%.2f", s.MedianQscore)},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, f, r.name, r.v); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "\n%-16s %8s %8s %8s %8s\n", "barcode", "reads", "passed", "%reads", "%passed"); err != nil {
		return err
	}
	for _, b := range s.Barcodes {
		if _, err := fmt.Fprintf(w, "%-16s %8d %8d %8.2f %8.2f\n", b.Barcode, b.NRead, b.NPass, 100*b.Frac, 100*b.PassFrac); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes the summary as indented JSON.
func (s *Summary) WriteJSON(w io.Writer) error {
	b, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
