// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package regdump

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"iter"
	"maps"
	"os"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// MaxLineLength is the longest dump line Read accepts.
const MaxLineLength = 1 << 30

// entryRe matches a single "( NAME: hex)" register entry.
var entryRe = regexp.MustCompile(` +\( ?([A-Z0-9]+): ([0-9a-f]+)\)`)

// Regfile maps register names to their values.
type Regfile map[string]uint64

// parseLine stores every register entry found in line.
func (regs Regfile) parseLine(line string) (err error) {
	for _, match := range entryRe.FindAllStringSubmatch(line, -1) {
		name, hex := match[1], match[2]
		value, perr := strconv.ParseUint(hex, 16, 64)
		if perr != nil {
			err = ErrValueRange{Register: name, Value: hex}
			return
		}
		regs[name] = value
	}

	return
}

// parse accumulates lines into a new Regfile, stopping at the first empty line.
func parse(lines iter.Seq2[int, string]) (regs Regfile, err error) {
	regs = Regfile{}

	for n, line := range lines {
		if len(line) == 0 {
			break
		}

		err = regs.parseLine(line)
		if err != nil {
			err = &ErrLine{LineNo: n + 1, Line: line, Err: err}
			regs = nil
			return
		}
	}

	return
}

// Parse parses dump lines, without line terminators, into a Regfile.
// When a register appears more than once, the last value wins.
func Parse(lines []string) (regs Regfile, err error) {
	return parse(slices.All(lines))
}

// Read parses a dump from an input stream. Reading stops at the first
// blank line. Lines longer than MaxLineLength are an error.
func Read(input io.Reader) (regs Regfile, err error) {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(nil, MaxLineLength)

	lines := func(yield func(int, string) bool) {
		for n := 0; scanner.Scan(); n++ {
			if !yield(n, scanner.Text()) {
				return
			}
		}
	}

	regs, err = parse(lines)
	if err == nil {
		err = scanner.Err()
	}
	if err != nil {
		regs = nil
	}

	return
}

// Load parses the dump file at path. The file is closed before Load returns.
func Load(path string) (regs Regfile, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	return Read(inf)
}

// splitName splits a register name into its prefix and numeric suffix.
func splitName(name string) (prefix string, num uint64, ok bool) {
	i := len(name)
	for i > 0 && name[i-1] >= '0' && name[i-1] <= '9' {
		i--
	}

	num, err := strconv.ParseUint(name[i:], 10, 64)
	if err != nil {
		return name, 0, false
	}

	return name[:i], num, true
}

// CompareNames orders register names by prefix, then by numeric suffix,
// so that R3 sorts before R10.
func CompareNames(a, b string) int {
	pa, na, oka := splitName(a)
	pb, nb, okb := splitName(b)

	if c := cmp.Compare(pa, pb); c != 0 {
		return c
	}

	switch {
	case oka && okb:
		if c := cmp.Compare(na, nb); c != 0 {
			return c
		}
	case !oka && okb:
		return -1
	case oka && !okb:
		return 1
	}

	return cmp.Compare(a, b)
}

// Names returns the register names in CompareNames order.
func (regs Regfile) Names() iter.Seq[string] {
	return slices.Values(slices.SortedFunc(maps.Keys(regs), CompareNames))
}

func (regs Regfile) String() string {
	var entries []string
	for name := range regs.Names() {
		entries = append(entries, fmt.Sprintf("%v: %d", name, regs[name]))
	}

	return "{" + strings.Join(entries, ", ") + "}"
}
