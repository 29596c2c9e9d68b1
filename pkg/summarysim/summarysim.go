// 19 Oct 2026

// Package summarysim writes a whole fake sequencing summary. It ties the
// record generator to the report writer.
package summarysim

import (
	"fmt"
	"io"

	"github.com/andrew-torda/summary_sim/pkg/readsim"
	"github.com/andrew-torda/summary_sim/pkg/report"
	"github.com/andrew-torda/summary_sim/pkg/tally"
)

// SumSimArgs is the set of arguments passed to the main function.
type SumSimArgs struct {
	Threshold float32   // q-score needed to pass filtering
	Common    string    // the dominant barcode
	NRow      uint64    // number of reads
	Fname     string    // output file, "" for report.DfltFname, "-" for stdout
	Iseed     uint64    // random number seed, only used if Seeded
	Seeded    bool      //
	UUID      bool      // read ids are real uuids
	Compress  bool      // snappy output
	ParamFile string    // toml or yaml file with distribution parameters
	Tally     bool      // print statistics at the end
	JSON      bool      // statistics as json
	Msg       io.Writer // where the chat and statistics go

	wrap func(io.Writer) io.Writer // tests use this to break the output
}

// Result says where the report went.
type Result struct {
	Fname string
	NRow  uint64
	Tally *tally.Tally // nil unless asked for
}

// newGenerator sets up the parameters, random numbers and sampler.
func newGenerator(args *SumSimArgs) (*readsim.Generator, error) {
	params := readsim.DefaultParams()
	if args.ParamFile != "" {
		var err error
		if params, err = readsim.LoadParams(args.ParamFile); err != nil {
			return nil, err
		}
	}
	rnd := readsim.NewRandUnseeded()
	if args.Seeded {
		rnd = readsim.NewRand(args.Iseed)
	}
	gen, err := readsim.NewGenerator(&params, args.Threshold, args.Common, rnd)
	if err != nil {
		return nil, fmt.Errorf("setting up distributions: %w", err)
	}
	gen.SetUUID(args.UUID)
	return gen, nil
}

// writeAll writes the header and every row. It does not commit.
func writeAll(dst io.Writer, gen *readsim.Generator, nrow uint64, tl *tally.Tally) error {
	w := report.NewWriter(dst)
	if err := w.WriteHeader(); err != nil {
		return err
	}
	for i := uint64(0); i < nrow; i++ {
		rec := gen.Next()
		if err := w.Write(&rec); err != nil {
			return err
		}
		if tl != nil {
			tl.Add(&rec)
		}
	}
	return w.Flush()
}

// SumSimMain writes a report of args.NRow random reads. Either the
// whole file appears or, on error, nothing does.
func SumSimMain(args *SumSimArgs) (*Result, error) {
	gen, err := newGenerator(args)
	if err != nil {
		return nil, err
	}
	fname := args.Fname
	if fname == "" {
		fname = report.DfltFname
	}
	of, err := report.Create(fname, args.Compress)
	if err != nil {
		return nil, err
	}
	res := &Result{Fname: of.Name(), NRow: args.NRow}
	if args.Tally || args.JSON {
		res.Tally = tally.New()
	}
	var dst io.Writer = of
	if args.wrap != nil {
		dst = args.wrap(dst)
	}
	if err := writeAll(dst, gen, args.NRow, res.Tally); err != nil {
		of.Abort()
		return nil, fmt.Errorf("writing %v: %w", res.Fname, err)
	}
	if err := of.Commit(); err != nil {
		return nil, err
	}

	if args.Msg == nil {
		return res, nil
	}
	fmt.Fprintf(args.Msg, "Generated %d rows of test data to %s with q-score threshold %v and most common barcode %s\n",
		args.NRow, res.Fname, args.Threshold, args.Common)
	if res.Tally != nil {
		s := res.Tally.Summary()
		if args.JSON {
			err = s.WriteJSON(args.Msg)
		} else {
			err = s.WriteText(args.Msg)
		}
	}
	return res, err
}
