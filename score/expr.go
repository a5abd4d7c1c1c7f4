// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package score

import (
	"go.starlark.net/resolve"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/regscore/regdump"
)

// evalExpr evaluates a Starlark expression over the registers of a dump.
// Every free identifier must name a register in regs or a Starlark builtin.
func evalExpr(expr string, regs regdump.Regfile) (value uint64, err error) {
	opts := syntax.FileOptions{}

	tree, err := opts.ParseExpr("expr", expr, 0)
	if err != nil {
		err = &ErrExpression{Expr: expr, Err: err}
		return
	}

	// Names bound inside the expression (comprehension variables) are
	// resolved locally and never reach isPredeclared.
	var missing []string
	isPredeclared := func(name string) bool {
		if _, ok := regs[name]; ok {
			return true
		}
		if !starlark.Universe.Has(name) {
			missing = append(missing, name)
		}
		return false
	}

	_, err = resolve.ExprOptions(&opts, tree, isPredeclared, starlark.Universe.Has)
	if len(missing) != 0 {
		err = ErrRegisterMissing(missing[0])
		return
	}
	if err != nil {
		err = &ErrExpression{Expr: expr, Err: err}
		return
	}

	pred := starlark.StringDict{}
	for name, reg := range regs {
		pred[name] = starlark.MakeUint64(reg)
	}

	thread := &starlark.Thread{Name: "score"}
	st_rc, err := starlark.EvalOptions(&opts, thread, "expr", expr, pred)
	if err != nil {
		err = &ErrExpression{Expr: expr, Err: err}
		return
	}

	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = &ErrExpression{Expr: expr, Err: ErrResultType}
		return
	}

	value, ok = st_int.Uint64()
	if !ok {
		err = &ErrExpression{Expr: expr, Err: ErrResultType}
		return
	}

	return
}
