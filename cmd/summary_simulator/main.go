// 19 Oct 2026

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/profile"

	. "github.com/andrew-torda/summary_sim/pkg/common"
	"github.com/andrew-torda/summary_sim/pkg/summarysim"
)

const (
	progName = "summary_simulator"
	version  = "0.1.0"
)

func usage(w io.Writer, f *flag.FlagSet) {
	fmt.Fprintln(w, "Usage:", progName, "[options] <q-score threshold> <most common barcode> <number of reads>")
	fmt.Fprintln(w, "    <q-score threshold>           the minimum q-score determining filtering threshold")
	fmt.Fprintln(w, "    <most common barcode>         the barcode selected to be most present in the data")
	fmt.Fprintln(w, "    <number of reads>             the number of reads to output")
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  -h, --help                  print this help message")
	fmt.Fprintln(w, "  -v, --version               print version information")
	f.VisitAll(func(fl *flag.Flag) {
		switch fl.Name {
		case "h", "help", "v", "version":
			return
		}
		vname, use := flag.UnquoteUsage(fl)
		fmt.Fprintf(w, "  -%-26s %s\n", strings.TrimSpace(fl.Name+" "+vname), use)
	})
}

// isBool says if a flag stands alone, without a value after it.
func isBool(fl *flag.Flag) bool {
	b, ok := fl.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

// guardNegative puts a "--" in front of the first argument that starts
// with "-" but is not one of our flags. Otherwise the flag package
// would take a threshold like -2.5 (or junk like -abc) for a flag,
// instead of letting it fail as a threshold.
func guardNegative(f *flag.FlagSet, args []string) []string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" || len(a) < 2 || a[0] != '-' {
			return args
		}
		name := a[1:]
		if name[0] == '-' {
			name = name[1:]
		}
		name, _, hasValue := strings.Cut(name, "=")
		fl := f.Lookup(name)
		if fl == nil {
			ret := append([]string{}, args[:i]...)
			ret = append(ret, "--")
			return append(ret, args[i:]...)
		}
		if !hasValue && !isBool(fl) {
			i++ // skip the flag's value
		}
	}
	return args
}

// run does the work of main, but returns the exit code, so that
// it can be tested.
func run(argv []string, stdout, stderr io.Writer) int {
	f := flag.NewFlagSet(progName, flag.ContinueOnError)
	f.SetOutput(stderr)
	f.Usage = func() { usage(stderr, f) }
	var args summarysim.SumSimArgs
	var help, hlong, vers, vlong, prof bool
	var seed uint64
	f.BoolVar(&help, "h", false, "print this help message")
	f.BoolVar(&hlong, "help", false, "print this help message")
	f.BoolVar(&vers, "v", false, "print version information")
	f.BoolVar(&vlong, "version", false, "print version information")
	f.StringVar(&args.Fname, "o", "", "output `file`, - for standard output")
	f.Uint64Var(&seed, "r", 0, "random number `seed`")
	f.BoolVar(&args.UUID, "u", false, "read ids are uuids")
	f.BoolVar(&args.Compress, "z", false, "snappy compress the output")
	f.StringVar(&args.ParamFile, "c", "", "toml or yaml `paramfile` with distribution constants")
	f.BoolVar(&args.Tally, "s", false, "print statistics after writing")
	f.BoolVar(&args.JSON, "j", false, "print statistics as json")
	f.BoolVar(&prof, "p", false, "write a cpu profile")
	if err := f.Parse(guardNegative(f, argv)); err != nil {
		return ExitUsageError
	}
	f.Visit(func(fl *flag.Flag) {
		if fl.Name == "r" {
			args.Seeded = true
		}
	})
	args.Iseed = seed

	switch {
	case help || hlong:
		usage(stdout, f)
		return ExitSuccess
	case vers || vlong:
		fmt.Fprintln(stdout, progName, "version", version)
		return ExitSuccess
	case f.NArg() != 3:
		fmt.Fprintln(stderr, "Invalid number of arguments. Use -h or --help for usage information.")
		return ExitFailure
	}

	// Parse failures print a message but exit with success.
	// Out of range thresholds are already +/-Inf, which is fine.
	if thresh, err := strconv.ParseFloat(f.Arg(0), 32); err != nil && !errors.Is(err, strconv.ErrRange) {
		fmt.Fprintln(stderr, "Invalid q-score threshold provided")
		return ExitSuccess
	} else {
		args.Threshold = float32(thresh)
	}
	args.Common = f.Arg(1)
	if nrow, err := strconv.ParseUint(f.Arg(2), 10, 64); err != nil {
		fmt.Fprintln(stderr, "Invalid number of rows provided")
		return ExitSuccess
	} else {
		args.NRow = nrow
	}

	args.Msg = stdout
	if args.Fname == "-" {
		args.Msg = stderr
	}
	if prof {
		defer profile.Start(profile.ProfilePath("."), profile.Quiet, profile.NoShutdownHook).Stop()
	}
	if _, err := summarysim.SumSimMain(&args); err != nil {
		log.New(stderr, progName+": ", 0).Print(err)
		return ExitFailure
	}
	return ExitSuccess
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
