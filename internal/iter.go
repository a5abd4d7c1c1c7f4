package internal

import (
	"iter"
)

// IterSeqConcat concatenates multiple iterators into a single iterator sequence.
func IterSeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return
				}
			}
		}
	}
}

// IterSeqUnion yields each distinct value of the sequences once, in order
// of first appearance.
func IterSeqUnion[T comparable](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := map[T]struct{}{}
		for val := range IterSeqConcat(seqs...) {
			if _, ok := seen[val]; ok {
				continue
			}
			seen[val] = struct{}{}
			if !yield(val) {
				return
			}
		}
	}
}
