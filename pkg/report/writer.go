// 19 Oct 2026

package report

import (
	"bufio"
	"io"

	"github.com/andrew-torda/summary_sim/pkg/readsim"
)

// Writer puts records out as lines of tab separated text.
type Writer struct {
	bw   *bufio.Writer
	line []byte
	nRow int
}

// NewWriter buffers w. Call Flush at the end.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriterSize(w, 64*1024)}
}

// WriteHeader writes the column names. Call it once, first.
func (w *Writer) WriteHeader() error {
	if _, err := w.bw.WriteString(Header); err != nil {
		return err
	}
	return w.bw.WriteByte('\n')
}

// Write writes one record.
func (w *Writer) Write(rec *readsim.Record) error {
	w.line = AppendRow(w.line[:0], rec)
	if _, err := w.bw.Write(w.line); err != nil {
		return err
	}
	w.nRow++
	return nil
}

// Flush pushes out whatever is still buffered.
func (w *Writer) Flush() error { return w.bw.Flush() }

// NRow is the number of records written so far.
func (w *Writer) NRow() int { return w.nRow }
