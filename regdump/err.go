package regdump

import (
	"github.com/ezrec/regscore/translate"
)

var f = translate.From

// ErrValueRange is a register value too wide for 64 bits.
type ErrValueRange struct {
	Register string
	Value    string
}

func (err ErrValueRange) Error() string {
	return f("register %v value %v out of range", err.Register, err.Value)
}

// ErrLine indicates the dump line an error was found on.
type ErrLine struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrLine) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrLine) Unwrap() error {
	return err.Err
}
