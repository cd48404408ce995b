package score

import (
	"github.com/katalvlaran/tandupscan/alphabet"
	"github.com/katalvlaran/tandupscan/segment"
	"github.com/katalvlaran/tandupscan/smt"
)

// windowScorer reuses a rolling per-column cost buffer across strictly
// ascending p for a fixed k (§4.3 Window). buf is indexed by absolute
// column index (0..L-1); only the slots touched for the current k hold
// meaningful values.
type windowScorer struct {
	tree *smt.Tree
	seqs [][]alphabet.State
	buf  []float64

	haveK      bool
	curK       uint64
	nextP      uint64
	runningSum float64
}

func newWindowScorer(tree *smt.Tree, seqs [][]alphabet.State, l uint64) *windowScorer {
	return &windowScorer{tree: tree, seqs: seqs, buf: make([]float64, l)}
}

// CostFor implements the §4.3 Window recurrence. p=0 for a new k (re)seeds
// the buffer over the whole segment; every subsequent call for the same k
// must supply the immediately following p, or ErrWindowOrderViolation is
// returned.
func (s *windowScorer) CostFor(p, k uint64) (float64, error) {
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

// seed computes c(0,k)..c(k-1,k), storing each in buf and setting
// runningSum to their total.
func (s *windowScorer) seed(k uint64) (float64, error) {
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

// slide drops c(p-1,k) from the running sum and adds c(p+k-1,k).
func (s *windowScorer) slide(p, k uint64) (float64, error) {
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

// columnCost computes c(i,k): the cost of the column whose left half
// starts at absolute index i.
func (s *windowScorer) columnCost(i, k uint64) (float64, error) {
	col := segment.Column(s.seqs, i, k, 0)
	return s.tree.CostFor(col)
}
