// 19 Oct 2026

// Package report writes and reads sequencing summary files. These are
// tab separated with one header line and then one line per read.
package report

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/andrew-torda/summary_sim/pkg/readsim"
)

// DfltFname is where the report goes if nobody says otherwise.
const DfltFname = "sequencing_summary_sim_data.txt"

// Column names, in the order they are written.
var Columns = []string{
	"read_id",
	"passes_filtering",
	"sequence_length_template",
	"mean_qscore_template",
	"barcode_arrangement",
}

// Header is the first line of every report, without the newline.
var Header = "read_id\tpasses_filtering\tsequence_length_template\tmean_qscore_template\tbarcode_arrangement"

// ErrBadRow is wrapped by errors from lines we cannot read.
var ErrBadRow = errors.New("bad report row")

const (
	sTrue  = "TRUE"
	sFalse = "FALSE"
)

// AppendRow appends rec as one line, including the newline, to b.
// q-scores are written with the fewest digits that give back the same
// float32.
func AppendRow(b []byte, rec *readsim.Record) []byte {
	b = append(b, rec.ReadID...)
	b = append(b, '\t')
	if rec.PassesFiltering {
		b = append(b, sTrue...)
	} else {
		b = append(b, sFalse...)
	}
	b = append(b, '\t')
	b = strconv.AppendUint(b, uint64(rec.SequenceLength), 10)
	b = append(b, '\t')
	b = strconv.AppendFloat(b, float64(rec.MeanQscore), 'f', -1, 32)
	b = append(b, '\t')
	b = append(b, rec.Barcode...)
	return append(b, '\n')
}

// ParseRow is the inverse of AppendRow. A trailing newline or carriage
// return is allowed.
func ParseRow(line []byte) (readsim.Record, error) {
	var rec readsim.Record
	line = bytes.TrimRight(line, "\r\n")
	f := bytes.Split(line, []byte{'\t'})
	if len(f) != len(Columns) {
		return rec, fmt.Errorf("%w: %d fields, want %d", ErrBadRow, len(f), len(Columns))
	}
	rec.ReadID = string(f[0])
	switch string(f[1]) {
	case sTrue:
		rec.PassesFiltering = true
	case sFalse:
	default:
		return rec, fmt.Errorf("%w: passes_filtering %q", ErrBadRow, f[1])
	}
	n, err := strconv.ParseUint(string(f[2]), 10, 32)
	if err != nil {
		return rec, fmt.Errorf("%w: sequence length: %v", ErrBadRow, err)
	}
	rec.SequenceLength = uint32(n)
	q, err := strconv.ParseFloat(string(f[3]), 32)
	if err != nil {
		return rec, fmt.Errorf("%w: q-score: %v", ErrBadRow, err)
	}
	rec.MeanQscore = float32(q)
	rec.Barcode = string(f[4])
	return rec, nil
}
