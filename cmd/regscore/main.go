// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ezrec/regscore/regdump"
	"github.com/ezrec/regscore/score"
	"github.com/ezrec/regscore/translate"
)

var f = translate.From

var (
	ErrRunMissing = errors.New(f("both -o and -r are required"))
)

// options are the command line settings.
type options struct {
	parse   string
	orig    string
	relaxed string
	expr    string
	verbose bool
}

// run executes the command selected by opts, writing results to output.
func run(opts *options, output io.Writer) (err error) {
	switch {
	case len(opts.orig) != 0 || len(opts.relaxed) != 0:
		if len(opts.orig) == 0 || len(opts.relaxed) == 0 {
			err = ErrRunMissing
			return
		}
		sc := &score.Scorer{
			Verbose: opts.verbose,
			Expr:    opts.expr,
		}
		var value uint64
		value, err = sc.Score(opts.orig, opts.relaxed)
		if err != nil {
			return
		}
		_, err = fmt.Fprintln(output, value)

	case len(opts.parse) != 0:
		var regs regdump.Regfile
		regs, err = regdump.Load(opts.parse)
		if err != nil {
			return
		}
		_, err = translate.Fprintf(output, "%v\n", regs)

	default:
		var regs regdump.Regfile
		regs, err = regdump.Parse(strings.Split(regdump.Sample, "\n"))
		if err != nil {
			return
		}
		_, err = translate.Fprintf(output, "%v\n", regs)
	}

	return
}

func main() {
	opts := &options{}

	flag.StringVar(&opts.parse, "p", "", "register dump to parse and print")
	flag.StringVar(&opts.orig, "o", "", "register dump of the original run")
	flag.StringVar(&opts.relaxed, "r", "", "register dump of the relaxed run")
	flag.StringVar(&opts.expr, "e", "", "Starlark return value expression (default "+score.DefaultExpr+")")
	flag.BoolVar(&opts.verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: %v", os.Args[0], f("Unknown arguments: %v", flag.Args()))
	}

	err := run(opts, os.Stdout)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}
