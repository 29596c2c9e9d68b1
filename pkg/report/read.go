// 19 Oct 2026

package report

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/golang/snappy"

	"github.com/andrew-torda/summary_sim/pkg/readsim"
)

// snappyMagic starts every snappy framed stream.
var snappyMagic = []byte("\xff\x06\x00\x00sNaPpY")

// content holds the bytes of a report. If they are mapped, unmap must
// be called when we are finished.
type content struct {
	data []byte
	mm   mmap.MMap
}

func (c *content) release() error {
	if c.mm != nil {
		return c.mm.Unmap()
	}
	return nil
}

// load maps a plain report into memory. A compressed one has to be
// read and decompressed.
func load(fname string) (*content, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	fi, err := fp.Stat()
	if err != nil {
		return nil, err
	}
	if fi.Size() == 0 { // cannot map zero bytes
		return &content{}, nil
	}
	var magic [10]byte
	if n, _ := io.ReadFull(fp, magic[:]); n == len(magic) && bytes.Equal(magic[:], snappyMagic) {
		if _, err := fp.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
		data, err := io.ReadAll(snappy.NewReader(fp))
		if err != nil {
			return nil, fmt.Errorf("decompressing %v: %w", fname, err)
		}
		return &content{data: data}, nil
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, err
	}
	return &content{data: mm, mm: mm}, nil
}

// checkHeader returns whatever comes after the header line.
func checkHeader(fname string, data []byte) ([]byte, error) {
	line, rest, _ := bytes.Cut(data, []byte{'\n'})
	if string(bytes.TrimRight(line, "\r")) != Header {
		return nil, fmt.Errorf("%v: %w: missing or wrong header", fname, ErrBadRow)
	}
	return rest, nil
}

// CountRows says how many reads are in a report, not counting the
// header. Only the header is checked. The rows are just counted.
func CountRows(fname string) (int, error) {
	c, err := load(fname)
	if err != nil {
		return 0, err
	}
	defer c.release()
	rest, err := checkHeader(fname, c.data)
	if err != nil {
		return 0, err
	}
	n := bytes.Count(rest, []byte{'\n'})
	if len(rest) > 0 && rest[len(rest)-1] != '\n' {
		n++ // last line without newline
	}
	return n, nil
}

// Scan reads every row of a report and calls fn on it. It stops at the
// first error from parsing or from fn. Errors name the line number,
// counting the header as line 1.
func Scan(fname string, fn func(rec *readsim.Record) error) error {
	c, err := load(fname)
	if err != nil {
		return err
	}
	defer c.release()
	rest, err := checkHeader(fname, c.data)
	if err != nil {
		return err
	}
	for iline := 2; len(rest) > 0; iline++ {
		var line []byte
		line, rest, _ = bytes.Cut(rest, []byte{'\n'})
		rec, err := ParseRow(line)
		if err != nil {
			return fmt.Errorf("%v line %d: %w", fname, iline, err)
		}
		if err := fn(&rec); err != nil {
			return err
		}
	}
	return nil
}
