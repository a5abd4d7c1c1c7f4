// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package score compares the register dumps of an original and a relaxed
// simulation run.
//
// Each dump is reduced to a composite return value, R14 as the high word
// and R15 as the low word, and the score is the absolute difference of
// the two values. A score of zero means the relaxed run returned the same
// value as the original.
//
// Only R14 and R15 are compared. They stand in for the program's result
// (and, for the benchmarks that report it, a cycle count); memory contents
// of the two runs are not compared.
package score
