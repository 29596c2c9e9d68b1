// 19 Oct 2026

// Sumstats reads a sequencing summary, plain or snappy compressed, and
// prints how many reads passed, length statistics and the spread over
// barcodes. It works on real summaries as well as simulated ones, as
// long as they have the same five columns.
//
// Usage:
//
//	sumstats [-j] [-n] file
//
// -j prints json. -n only counts the rows, which is quick, since the
// file is mapped and not parsed.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path"

	. "github.com/andrew-torda/summary_sim/pkg/common"
	"github.com/andrew-torda/summary_sim/pkg/report"
	"github.com/andrew-torda/summary_sim/pkg/tally"
)

func run(argv []string, stdout, stderr io.Writer) int {
	f := flag.NewFlagSet("sumstats", flag.ContinueOnError)
	f.SetOutput(stderr)
	f.Usage = func() {
		fmt.Fprintln(stderr, "usage:", path.Base(os.Args[0]), "[-j] [-n] file")
		f.PrintDefaults()
	}
	asJSON := f.Bool("j", false, "write json")
	onlyCount := f.Bool("n", false, "only count rows")
	if err := f.Parse(argv); err != nil {
		return ExitUsageError
	}
	if f.NArg() != 1 {
		f.Usage()
		return ExitUsageError
	}
	fname := f.Arg(0)

	if *onlyCount {
		n, err := report.CountRows(fname)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitFailure
		}
		fmt.Fprintln(stdout, n)
		return ExitSuccess
	}

	t, err := tally.FromFile(fname)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitFailure
	}
	s := t.Summary()
	if *asJSON {
		err = s.WriteJSON(stdout)
	} else {
		err = s.WriteText(stdout)
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitFailure
	}
	return ExitSuccess
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
