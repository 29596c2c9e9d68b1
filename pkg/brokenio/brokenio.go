// brokenio wraps an io.Writer so that writes start failing.
// Typical use: you have a file or buffer that a report is written to.
// You write
//    w = brokenio.NewWriter(w)
//    w.SetFailAfter(1000)
// and everything works until about 1000 bytes have gone through,
// then every write returns an error. It is for checking that
// callers notice a full disk and do not leave half a file lying around.

package brokenio

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
)

// ErrBroken is returned (wrapped) by every write that we break.
var ErrBroken = errors.New("brokenio: artificial write failure")

// A BrknWrtr is modelled on the various Writers in the standard library,
// but with variables controlling when errors happen.
// probFail is the fraction of calls that fail at random, so 0.05 means
// failure in 5% of the cases. failAfter is a byte count after which
// everything fails. Negative means never.
type BrknWrtr struct {
	wrtOrig   io.Writer
	rnd       *rand.Rand
	probFail  float32
	failAfter int
	nCalled   int
	nByte     int
}

// NewWriter returns a new Writer, a wrapper around the old one.
// By default it never fails.
func NewWriter(wIn io.Writer) *BrknWrtr {
	return &BrknWrtr{
		wrtOrig:   wIn,
		failAfter: -1,
		rnd:       rand.New(rand.NewPCG(1, 2)),
	}
}

// SetFailAfter makes writes fail once n bytes have been accepted.
// The write that crosses the limit is cut short.
func (w *BrknWrtr) SetFailAfter(n int) { w.failAfter = n }

// SetProbFail sets the probability of a write failing outright.
// It must be between zero and 1. We do not check if the argument
// is valid.
func (w *BrknWrtr) SetProbFail(prob float32) { w.probFail = prob }

// NByte is how much has really been written.
func (w *BrknWrtr) NByte() int { return w.nByte }

// Write passes p on to the wrapped writer unless it is time to break.
func (w *BrknWrtr) Write(p []byte) (int, error) {
	w.nCalled++
	if w.probFail > 0 && w.rnd.Float32() < w.probFail {
		return 0, fmt.Errorf("call %d: %w", w.nCalled, ErrBroken)
	}
	if w.failAfter >= 0 && w.nByte+len(p) > w.failAfter {
		keep := max(w.failAfter-w.nByte, 0)
		n, err := w.wrtOrig.Write(p[:keep])
		w.nByte += n
		if err != nil {
			return n, err
		}
		return n, fmt.Errorf("after %d bytes: %w", w.nByte, ErrBroken)
	}
	n, err := w.wrtOrig.Write(p)
	w.nByte += n
	return n, err
}
