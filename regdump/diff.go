package regdump

import (
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/ezrec/regscore/internal"
)

// Delta is a register whose value differs between two dumps.
type Delta struct {
	Name string
	A, B uint64 // Values in each dump.
	InA  bool   // Register present in the first dump.
	InB  bool   // Register present in the second dump.
}

func (d Delta) String() string {
	value := func(v uint64, ok bool) string {
		if !ok {
			return "-"
		}
		return fmt.Sprintf("0x%04x", v)
	}

	return fmt.Sprintf("%v: %v -> %v", d.Name, value(d.A, d.InA), value(d.B, d.InB))
}

// Diff yields, in CompareNames order, every register that differs
// between a and b, including those present in only one of them.
func Diff(a, b Regfile) iter.Seq[Delta] {
	return func(yield func(Delta) bool) {
		names := slices.SortedFunc(internal.IterSeqUnion(maps.Keys(a), maps.Keys(b)), CompareNames)
		for _, name := range names {
			va, ina := a[name]
			vb, inb := b[name]
			if ina == inb && va == vb {
				continue
			}
			if !yield(Delta{Name: name, A: va, B: vb, InA: ina, InB: inb}) {
				return
			}
		}
	}
}
