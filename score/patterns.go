package score

import (
	"github.com/katalvlaran/tandupscan/alphabet"
	"github.com/katalvlaran/tandupscan/segment"
	"github.com/katalvlaran/tandupscan/smt"
)

// patternsScorer caches per-column cost by canonical pattern, backfilling
// misses via the SMT (§4.3 Patterns). Only sound when the tree's mutation
// cost is equality-only; New enforces this at construction.
type patternsScorer struct {
	tree  *smt.Tree
	seqs  [][]alphabet.State
	cache map[string]float64
}

func newPatternsScorer(tree *smt.Tree, seqs [][]alphabet.State) *patternsScorer {
	return &patternsScorer{tree: tree, seqs: seqs, cache: make(map[string]float64)}
}

// CostFor computes Σ patternCost(p+j) for j=0..k-1, divided by k.
func (s *patternsScorer) CostFor(p, k uint64) (float64, error) {
	var sum float64
	for j := uint64(0); j < k; j++ {
		col := segment.Column(s.seqs, p, k, j)
		cost, err := s.costForColumn(col)
		if err != nil {
			return 0, err
		}
		sum += cost
	}
	return sum / float64(k), nil
}

// costForColumn looks up col's canonical pattern in the cache, computing
// and inserting it via the SMT on a miss.
func (s *patternsScorer) costForColumn(col []alphabet.State) (float64, error) {
	key := canonicalPattern(col)
	if cost, ok := s.cache[key]; ok {
		return cost, nil
	}
	cost, err := s.tree.CostFor(col)
	if err != nil {
		return 0, err
	}
	s.cache[key] = cost
	return cost, nil
}
