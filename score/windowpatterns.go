package score

import (
	"github.com/katalvlaran/tandupscan/alphabet"
	"github.com/katalvlaran/tandupscan/segment"
	"github.com/katalvlaran/tandupscan/smt"
)

// windowPatternsScorer combines Window's rolling buffer with Patterns'
// canonical-form cache (§4.3 WindowPatterns): only sound when the tree's
// mutation cost is equality-only, same as patternsScorer.
type windowPatternsScorer struct {
	tree  *smt.Tree
	seqs  [][]alphabet.State
	buf   []float64
	cache map[string]float64

	haveK      bool
	curK       uint64
	nextP      uint64
	runningSum float64
}

func newWindowPatternsScorer(tree *smt.Tree, seqs [][]alphabet.State, l uint64) *windowPatternsScorer {
	return &windowPatternsScorer{
		tree:  tree,
		seqs:  seqs,
		buf:   make([]float64, l),
		cache: make(map[string]float64),
	}
}

// CostFor follows the same call-order contract as windowScorer.CostFor.
func (s *windowPatternsScorer) CostFor(p, k uint64) (float64, error) {
	if !s.haveK || k != s.curK {
		if p != 0 {
			return 0, ErrWindowOrderViolation
		}
		return s.seed(k)
	}
	if p != s.nextP {
		return 0, ErrWindowOrderViolation
	}
	return s.slide(p, k)
}

func (s *windowPatternsScorer) seed(k uint64) (float64, error) {
	var sum float64
	for i := uint64(0); i < k; i++ {
		cost, err := s.columnCost(i, k)
		if err != nil {
			return 0, err
		}
		s.buf[i] = cost
		sum += cost
	}
	s.curK = k
	s.haveK = true
	s.runningSum = sum
	s.nextP = 1
	return sum / float64(k), nil
}

func (s *windowPatternsScorer) slide(p, k uint64) (float64, error) {
	newIdx := p + k - 1
	cost, err := s.columnCost(newIdx, k)
	if err != nil {
		return 0, err
	}
	s.runningSum -= s.buf[p-1]
	s.buf[newIdx] = cost
	s.runningSum += cost
	s.nextP = p + 1
	return s.runningSum / float64(k), nil
}

// columnCost looks up c(i,k) through the pattern cache, backfilling via
// the SMT on a miss.
func (s *windowPatternsScorer) columnCost(i, k uint64) (float64, error) {
	col := segment.Column(s.seqs, i, k, 0)
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
