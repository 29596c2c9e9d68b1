// 19 Oct 2026

package tally_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/summary_sim/pkg/readsim"
	"github.com/andrew-torda/summary_sim/pkg/report"
	. "github.com/andrew-torda/summary_sim/pkg/tally"
)

var recs = []readsim.Record{
	{ReadID: "a", PassesFiltering: true, SequenceLength: 100, MeanQscore: 10, Barcode: "barcode05"},
	{ReadID: "b", PassesFiltering: false, SequenceLength: 400, MeanQscore: 4, Barcode: "unclassified"},
	{ReadID: "c", PassesFiltering: true, SequenceLength: 300, MeanQscore: 20, Barcode: "barcode05"},
	{ReadID: "d", PassesFiltering: false, SequenceLength: 200, MeanQscore: 6, Barcode: "barcode05"},
}

func TestSummary(t *testing.T) {
	tl := New()
	for i := range recs {
		tl.Add(&recs[i])
	}
	s := tl.Summary()
	assert.Equal(t, 4, s.NRead)
	assert.Equal(t, 2, s.NPass)
	assert.Equal(t, 0.5, s.FracPass)
	assert.Equal(t, uint64(1000), s.NBase)
	assert.Equal(t, uint32(100), s.MinLength)
	assert.Equal(t, uint32(400), s.MaxLength)
	assert.Equal(t, 250.0, s.MeanLength)
	assert.Equal(t, 250.0, s.MedianLength)
	assert.Equal(t, uint32(300), s.N50)
	assert.Equal(t, float32(4), s.MinQscore)
	assert.Equal(t, float32(20), s.MaxQscore)
	assert.Equal(t, 10.0, s.MeanQscore)
	assert.Equal(t, 8.0, s.MedianQscore)
	want := []BarcodeCount{
		{Barcode: "barcode05", NRead: 3, NPass: 2, Frac: 0.75, PassFrac: float32(2) / float32(3)},
		{Barcode: "unclassified", NRead: 1, NPass: 0, Frac: 0.25, PassFrac: 0},
	}
	assert.Equal(t, want, s.Barcodes)
}

func TestEmpty(t *testing.T) {
	s := New().Summary()
	assert.Zero(t, s.NRead)
	assert.Empty(t, s.Barcodes)
	var buf bytes.Buffer
	require.NoError(t, s.WriteText(&buf))
	require.NoError(t, s.WriteJSON(&buf))
}

func TestFracTable(t *testing.T) {
	tl := New()
	for i := range recs {
		tl.Add(&recs[i])
	}
	fr, names := tl.FracTable()
	assert.Equal(t, []string{"barcode05", "unclassified"}, names)
	nrow, ncol := fr.Size()
	require.Equal(t, 2, nrow)
	require.Equal(t, 2, ncol)
	assert.InDelta(t, 1.0/3, fr.Mat[0][0], 1e-6)
	assert.InDelta(t, 2.0/3, fr.Mat[0][1], 1e-6)
	assert.Equal(t, []float32{1, 0}, fr.Mat[1])
}

// Counts must stay exact past 2^24, where a float32 stops going up.
func TestManyReads(t *testing.T) {
	if testing.Short() {
		t.Skip("adds 2^24 records")
	}
	const n = 1<<24 + 10
	tl := New()
	rec := readsim.Record{PassesFiltering: true, SequenceLength: 20, MeanQscore: 10, Barcode: "barcode01"}
	for i := 0; i < n; i++ {
		tl.Add(&rec)
	}
	s := tl.Summary()
	require.Equal(t, n, s.NRead)
	require.Len(t, s.Barcodes, 1)
	assert.Equal(t, n, s.Barcodes[0].NRead)
	assert.Equal(t, n, s.Barcodes[0].NPass)
	assert.Equal(t, float32(1), s.Barcodes[0].PassFrac)
}

// Lots of barcodes, each seen twice.
func TestGrow(t *testing.T) {
	tl := New()
	const nbc = 300
	for rep := 0; rep < 2; rep++ {
		for i := 0; i < nbc; i++ {
			rec := readsim.Record{SequenceLength: 50, MeanQscore: 10, Barcode: fmt.Sprintf("bc%03d", i)}
			rec.PassesFiltering = i%2 == 0
			tl.Add(&rec)
		}
	}
	s := tl.Summary()
	require.Len(t, s.Barcodes, nbc)
	for _, b := range s.Barcodes {
		require.Equal(t, 2, b.NRead, b.Barcode)
	}
	assert.Equal(t, nbc, s.NPass)
}

func TestFromFile(t *testing.T) {
	p := readsim.DefaultParams()
	g, err := readsim.NewGenerator(&p, 12, "barcode12", readsim.NewRand(42))
	require.NoError(t, err)

	fname := filepath.Join(t.TempDir(), "r.txt")
	of, err := report.Create(fname, false)
	require.NoError(t, err)
	w := report.NewWriter(of)
	require.NoError(t, w.WriteHeader())
	direct := New()
	for i := 0; i < 5000; i++ {
		rec := g.Next()
		direct.Add(&rec)
		require.NoError(t, w.Write(&rec))
	}
	require.NoError(t, w.Flush())
	require.NoError(t, of.Commit())

	fromFile, err := FromFile(fname)
	require.NoError(t, err)
	assert.Equal(t, direct.Summary(), fromFile.Summary())
	assert.Equal(t, "barcode12", fromFile.Summary().Barcodes[0].Barcode)
}

func TestWriteJSON(t *testing.T) {
	tl := New()
	for i := range recs {
		tl.Add(&recs[i])
	}
	s := tl.Summary()
	var buf bytes.Buffer
	require.NoError(t, s.WriteJSON(&buf))
	var back Summary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, s, back)
	assert.Contains(t, buf.String(), `"n50": 300`)
}

func TestWriteText(t *testing.T) {
	tl := New()
	for i := range recs {
		tl.Add(&recs[i])
	}
	s := tl.Summary()
	var buf bytes.Buffer
	require.NoError(t, s.WriteText(&buf))
	out := buf.String()
	assert.Contains(t, out, "2 (50.00%)")
	assert.Contains(t, out, "unclassified")
	assert.Equal(t, 10+2+2, strings.Count(out, "\n"))
}
