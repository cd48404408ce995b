package score

import (
	"fmt"

	"github.com/katalvlaran/tandupscan/alphabet"
	"github.com/katalvlaran/tandupscan/smt"
)

// New constructs the Scorer for strategy, backed by tree and seqs (the K
// sequences the run config carries, borrowed for the Scorer's lifetime).
// mu is the same mutation cost the tree was built with; New rejects
// Patterns and WindowPatterns when mu is not equality-only
// (ErrNonEquivalenceMutationCost, §4.3/§4.6).
func New(strategy Strategy, tree *smt.Tree, seqs [][]alphabet.State, mu alphabet.MutationCost) (Scorer, error) {
	var l uint64
	if len(seqs) > 0 {
		l = uint64(len(seqs[0]))
	}

	switch strategy {
	case Standard:
		return &standardScorer{tree: tree, seqs: seqs}, nil
	case Window:
		return newWindowScorer(tree, seqs, l), nil
	case Patterns:
		if !mu.EqualityOnly {
			return nil, ErrNonEquivalenceMutationCost
		}
		return newPatternsScorer(tree, seqs), nil
	case WindowPatterns:
		if !mu.EqualityOnly {
			return nil, ErrNonEquivalenceMutationCost
		}
		return newWindowPatternsScorer(tree, seqs, l), nil
	default:
		return nil, fmt.Errorf("%v: %w", strategy, ErrUnknownStrategy)
	}
}
