package summarysim

import "io"

func SetWrap(args *SumSimArgs, f func(io.Writer) io.Writer) { args.wrap = f }
