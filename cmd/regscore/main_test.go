package main

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/regscore/regdump"
	"github.com/ezrec/regscore/score"
)

func TestRunSample(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	err := run(&options{}, output)
	assert.NoError(err)
	assert.Equal("{PC: 65535, R3: 65535, R4: 65535, R5: 65535, R6: 65535, R7: 65535, "+
		"R8: 65535, R9: 65535, R10: 65535, R11: 65535, R12: 65535, R13: 65535, "+
		"R14: 65535, R15: 65535, SP: 65535, SR: 65535}\n", output.String())
}

func TestRunScore(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	orig := filepath.Join(dir, "orig.txt")
	relaxed := filepath.Join(dir, "relaxed.txt")
	assert.NoError(os.WriteFile(orig, []byte("  (R14: 0001)  (R15: 0000)\n"), 0o644))
	assert.NoError(os.WriteFile(relaxed, []byte("  (R14: 0000)  (R15: 0001)\n"), 0o644))

	output := &bytes.Buffer{}
	err := run(&options{orig: orig, relaxed: relaxed}, output)
	assert.NoError(err)
	assert.Equal("65535\n", output.String())

	output.Reset()
	err = run(&options{orig: orig, relaxed: relaxed, expr: "R15"}, output)
	assert.NoError(err)
	assert.Equal("1\n", output.String())

	output.Reset()
	err = run(&options{parse: relaxed}, output)
	assert.NoError(err)
	assert.Equal("{R14: 0, R15: 1}\n", output.String())

	err = run(&options{orig: orig}, output)
	assert.ErrorIs(err, ErrRunMissing)

	err = run(&options{orig: orig, relaxed: filepath.Join(dir, "missing.txt")}, output)
	assert.True(errors.Is(err, fs.ErrNotExist))

	blank := filepath.Join(dir, "blank.txt")
	assert.NoError(os.WriteFile(blank, []byte("\n"), 0o644))
	err = run(&options{orig: orig, relaxed: blank}, output)
	var errMissing score.ErrRegisterMissing
	assert.True(errors.As(err, &errMissing))

	err = run(&options{parse: filepath.Join(dir, "missing.txt")}, output)
	assert.True(errors.Is(err, fs.ErrNotExist))

	var regs regdump.Regfile
	regs, err = regdump.Load(blank)
	assert.NoError(err)
	assert.Empty(regs)
}
