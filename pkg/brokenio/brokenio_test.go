package brokenio_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/andrew-torda/summary_sim/pkg/brokenio"
)

func TestFailAfter(t *testing.T) {
	var buf bytes.Buffer
	w := brokenio.NewWriter(&buf)
	w.SetFailAfter(10)
	if n, err := w.Write([]byte("abcdef")); n != 6 || err != nil {
		t.Fatal("first write, got", n, err)
	}
	n, err := w.Write([]byte("ghijkl"))
	if !errors.Is(err, brokenio.ErrBroken) {
		t.Fatal("expected ErrBroken, got", err)
	}
	if n != 4 || buf.String() != "abcdefghij" {
		t.Fatal("expected 4 bytes and abcdefghij, got", n, buf.String())
	}
	if _, err := w.Write([]byte("x")); err == nil {
		t.Fatal("writes after the limit should keep failing")
	}
}

func TestProbFail(t *testing.T) {
	var buf bytes.Buffer
	w := brokenio.NewWriter(&buf)
	w.SetProbFail(0.5)
	nFail := 0
	const ntry = 1000
	for i := 0; i < ntry; i++ {
		if _, err := w.Write([]byte("a")); err != nil {
			nFail++
		}
	}
	if nFail < ntry/3 || nFail > 2*ntry/3 {
		t.Fatal("expected about", ntry/2, "failures, got", nFail)
	}
	if w.NByte() != ntry-nFail {
		t.Fatal("byte count", w.NByte(), "expected", ntry-nFail)
	}
}

func TestNeverFails(t *testing.T) {
	var buf bytes.Buffer
	w := brokenio.NewWriter(&buf)
	for i := 0; i < 100; i++ {
		if _, err := w.Write([]byte("hello")); err != nil {
			t.Fatal(err)
		}
	}
}
