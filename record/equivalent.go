package record

import "sort"

// key identifies a result by its (start,length) pair, ignoring cost.
type key struct {
	start  uint64
	length uint64
}

// Equivalent implements the equivalence check between two summaries:
// identical (start,length) multisets, and for every matching pair,
// |cost_a - cost_b| <= eps. Order of a.Results and b.Results does not
// matter.
func Equivalent(a, b RunSummary, eps float64) bool {
	byKeyA := groupCosts(a.Results)
	byKeyB := groupCosts(b.Results)

	if len(byKeyA) != len(byKeyB) {
		return false
	}

	for k, costsA := range byKeyA {
		costsB, ok := byKeyB[k]
		if !ok || len(costsA) != len(costsB) {
			return false
		}
		sort.Float64s(costsA)
		sort.Float64s(costsB)
		for i := range costsA {
			diff := costsA[i] - costsB[i]
			if diff < 0 {
				diff = -diff
			}
			if diff > eps {
				return false
			}
		}
	}
	return true
}

// groupCosts buckets results by (start,length), preserving every cost seen
// for that key (duplicates are legitimate: the multiset comparison in
// Equivalent counts them).
func groupCosts(results []Result) map[key][]float64 {
	out := make(map[key][]float64, len(results))
	for _, r := range results {
		k := key{start: r.Start, length: r.Length}
		out[k] = append(out[k], r.Cost)
	}
	return out
}
