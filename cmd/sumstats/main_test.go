package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	. "github.com/andrew-torda/summary_sim/pkg/common"
	"github.com/andrew-torda/summary_sim/pkg/summarysim"
)

func mkReport(t *testing.T, compress bool) string {
	args := summarysim.SumSimArgs{
		Threshold: 15, Common: "barcode09", NRow: 300,
		Fname: filepath.Join(t.TempDir(), "r.txt"), Compress: compress,
		Iseed: 3, Seeded: true,
	}
	res, err := summarysim.SumSimMain(&args)
	if err != nil {
		t.Fatal(err)
	}
	return res.Fname
}

func TestCount(t *testing.T) {
	for _, compress := range []bool{false, true} {
		fname := mkReport(t, compress)
		var stdout, stderr bytes.Buffer
		if code := run([]string{"-n", fname}, &stdout, &stderr); code != ExitSuccess {
			t.Fatal("exit", code, stderr.String())
		}
		if stdout.String() != "300\n" {
			t.Fatal("expected 300, got", stdout.String())
		}
	}
}

func TestJSON(t *testing.T) {
	fname := mkReport(t, false)
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-j", fname}, &stdout, &stderr); code != ExitSuccess {
		t.Fatal("exit", code, stderr.String())
	}
	var s struct {
		NRead    int `json:"n_read"`
		Barcodes []struct {
			Barcode string `json:"barcode"`
		} `json:"barcodes"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &s); err != nil {
		t.Fatal(err)
	}
	if s.NRead != 300 || s.Barcodes[0].Barcode != "barcode09" {
		t.Fatal("got", s.NRead, "reads, top barcode", s.Barcodes[0].Barcode)
	}
}

func TestErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(nil, &stdout, &stderr); code != ExitUsageError {
		t.Fatal("no args, expected", ExitUsageError, "got", code)
	}
	if code := run([]string{filepath.Join(t.TempDir(), "nope")}, &stdout, &stderr); code != ExitFailure {
		t.Fatal("missing file, expected", ExitFailure, "got", code)
	}
	junk, err := WrtTemp("not a report\n")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(junk)
	if code := run([]string{junk}, &stdout, &stderr); code != ExitFailure {
		t.Fatal("junk file, expected", ExitFailure, "got", code)
	}
}
