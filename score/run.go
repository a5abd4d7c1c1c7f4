package score

//go:generate go tool stringer -linecomment -type=Run

// Run identifies one side of a comparison.
type Run int

const (
	RunOriginal Run = iota // original
	RunRelaxed             // relaxed
)
