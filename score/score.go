// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package score

import (
	"errors"
	"io/fs"
	"log"
	"math"
	"strconv"

	"github.com/ezrec/regscore/regdump"
)

// DefaultExpr is the composite return value as a Starlark expression.
const DefaultExpr = "(R14 << 16) | R15"

// Scorer compares register dumps of two runs.
type Scorer struct {
	Verbose bool   // If set, logs the registers that differ between runs.
	Expr    string // Return value expression. Empty selects the R14:R15 composite.
}

// Comparison is the outcome of scoring two dumps, indexed by Run.
type Comparison struct {
	Regs  [2]regdump.Regfile // Parsed dumps.
	Value [2]uint64          // Return values.
	Score uint64             // Absolute difference of the return values.
}

// ReturnValue computes the composite return value of a dump: R14 is the
// high word and R15 the low word. An R14 too wide to shift into 64 bits
// is a regdump.ErrValueRange.
func ReturnValue(regs regdump.Regfile) (value uint64, err error) {
	hi, ok := regs["R14"]
	if !ok {
		err = ErrRegisterMissing("R14")
		return
	}

	lo, ok := regs["R15"]
	if !ok {
		err = ErrRegisterMissing("R15")
		return
	}

	if hi > math.MaxUint64>>16 {
		err = regdump.ErrValueRange{Register: "R14", Value: strconv.FormatUint(hi, 16)}
		return
	}

	value = (hi << 16) | lo
	return
}

// ReturnValue computes the return value of a dump, using Expr if set.
func (sc *Scorer) ReturnValue(regs regdump.Regfile) (value uint64, err error) {
	if len(sc.Expr) == 0 {
		return ReturnValue(regs)
	}

	return evalExpr(sc.Expr, regs)
}

// load reads one run's dump and computes its return value.
func (sc *Scorer) load(run Run, path string) (regs regdump.Regfile, value uint64, err error) {
	regs, err = regdump.Load(path)
	if err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			err = &ErrDump{Run: run, Path: path, Err: err}
		}
		return
	}

	value, err = sc.ReturnValue(regs)
	if err != nil {
		err = &ErrDump{Run: run, Path: path, Err: err}
		return
	}

	if sc.Verbose {
		log.Printf("%v: %v: return value %#x\n", run, path, value)
	}

	return
}

// Compare scores the dump at origPath against the dump at relaxedPath.
// File errors are returned as they come from the file system.
func (sc *Scorer) Compare(origPath, relaxedPath string) (comp *Comparison, err error) {
	comp = &Comparison{}

	paths := [...]string{
		RunOriginal: origPath,
		RunRelaxed:  relaxedPath,
	}

	for n, path := range paths {
		run := Run(n)
		comp.Regs[run], comp.Value[run], err = sc.load(run, path)
		if err != nil {
			comp = nil
			return
		}
	}

	orig, relaxed := comp.Value[RunOriginal], comp.Value[RunRelaxed]
	if orig > relaxed {
		comp.Score = orig - relaxed
	} else {
		comp.Score = relaxed - orig
	}

	if sc.Verbose {
		for delta := range regdump.Diff(comp.Regs[RunOriginal], comp.Regs[RunRelaxed]) {
			log.Printf("%v\n", delta)
		}
		log.Printf("score %d\n", comp.Score)
	}

	return
}

// Score returns the absolute difference between the return values of the
// dumps at origPath and relaxedPath. File errors are returned as is; any
// other error is wrapped in an *ErrDump naming the run and path, so use
// errors.As to reach an ErrRegisterMissing.
func (sc *Scorer) Score(origPath, relaxedPath string) (score uint64, err error) {
	comp, err := sc.Compare(origPath, relaxedPath)
	if err != nil {
		return
	}

	score = comp.Score
	return
}

// Score compares two dumps using the R14:R15 composite return value.
func Score(origPath, relaxedPath string) (score uint64, err error) {
	sc := &Scorer{}
	return sc.Score(origPath, relaxedPath)
}
