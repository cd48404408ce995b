package record

import "time"

// Result is one scored segment-pair: the start position, the segment
// length, and the average per-column pre-speciation cost.
type Result struct {
	Start  uint64
	Length uint64
	Cost   float64
}

// Less implements the total order: cost ascending, then length ascending,
// then start ascending. Cost equality here is exact float64 comparison.
func (r Result) Less(other Result) bool {
	if r.Cost != other.Cost {
		return r.Cost < other.Cost
	}
	if r.Length != other.Length {
		return r.Length < other.Length
	}
	return r.Start < other.Start
}

// ApproxEqual reports whether r and other describe the same (start,length)
// pair with costs within eps of each other. It is the ε-equality operator
// exposed for external comparators; it never affects Less or ordering.
func (r Result) ApproxEqual(other Result, eps float64) bool {
	if r.Start != other.Start || r.Length != other.Length {
		return false
	}
	diff := r.Cost - other.Cost
	if diff < 0 {
		diff = -diff
	}
	return diff <= eps
}

// RunSummary is the outcome of one run: its top-N results in ascending
// order (best first) and the wall-clock duration the engine spent
// producing them.
type RunSummary struct {
	Results []Result
	Elapsed time.Duration
}
