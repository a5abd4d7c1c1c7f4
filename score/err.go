package score

import (
	"errors"

	"github.com/ezrec/regscore/translate"
)

var f = translate.From

var (
	ErrResultType = errors.New(f("result is not a non-negative 64-bit integer"))
)

// ErrRegisterMissing is a register the return value needs but the dump lacks.
type ErrRegisterMissing string

func (err ErrRegisterMissing) Error() string {
	return f("register %v missing", string(err))
}

// ErrExpression is a return value expression that could not be evaluated.
type ErrExpression struct {
	Expr string
	Err  error
}

func (err *ErrExpression) Error() string {
	return f("expression '%v' %v", err.Expr, err.Err)
}

func (err *ErrExpression) Unwrap() error {
	return err.Err
}

// ErrDump indicates which run's dump could not be scored.
type ErrDump struct {
	Run  Run
	Path string
	Err  error
}

func (err *ErrDump) Error() string {
	return f("%v %v: %v", err.Run, err.Path, err.Err)
}

func (err *ErrDump) Unwrap() error {
	return err.Err
}
