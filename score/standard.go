package score

import (
	"github.com/katalvlaran/tandupscan/alphabet"
	"github.com/katalvlaran/tandupscan/segment"
	"github.com/katalvlaran/tandupscan/smt"
)

// standardScorer recomputes every column from the SMT on every call, with
// no memoization (§4.3 Standard).
type standardScorer struct {
	tree *smt.Tree
	seqs [][]alphabet.State
}

// CostFor computes Σ SMT.CostFor(column at p+j) for j=0..k-1, divided by k.
func (s *standardScorer) CostFor(p, k uint64) (float64, error) {
	var sum float64
	for j := uint64(0); j < k; j++ {
		col := segment.Column(s.seqs, p, k, j)
		cost, err := s.tree.CostFor(col)
		if err != nil {
			return 0, err
		}
		sum += cost
	}
	return sum / float64(k), nil
}
