// Package smt: Sankoff update and pre-speciation cost.
//
// See doc.go for the package overview; this file implements §4.1's three
// operations: FixLeaf, Update (the post-order Sankoff recurrence), and
// PreSpeciationCost (the tree-level scalar derived from the root).
package smt

import (
	"math"

	"github.com/katalvlaran/tandupscan/alphabet"
)

// FixLeaf sets leaf (addressed by its position in the fixed traversal
// order, [0, LeafCount())) to the given set of concrete states: for each
// state s, Count=1 and Cost=0 if s is in states, else Count=0 and
// Cost=+Inf (§3). states must be non-empty (ErrEmptyStateSet, §9 Open
// Questions: empty-set fix semantics are undefined and rejected here).
func (t *Tree) FixLeaf(leaf int, states []alphabet.State) error {
	if leaf < 0 || leaf >= len(t.leafOrder) {
		return ErrLeafIndexOutOfRange
	}
	if len(states) == 0 {
		return alphabet.ErrEmptyStateSet
	}

	var present [nStates]bool
	for _, s := range states {
		if int(s) < nStates {
			present[s] = true
		}
	}

	idx := t.leafOrder[leaf]
	info := &t.nodes[idx].info
	for s := 0; s < nStates; s++ {
		if present[s] {
			info[s] = StateInfo{Count: 1, Cost: 0}
		} else {
			info[s] = StateInfo{Count: 0, Cost: math.Inf(1)}
		}
	}
	return nil
}

// Update runs the post-order Sankoff recurrence over every internal node
// (§4.1). It is idempotent given the same fixed leaves, and must be called
// after FixLeaf and before reading any internal node's StateInfo (CostFor
// calls it automatically).
func (t *Tree) Update() error {
	for _, idx := range t.postOrder {
		n := &t.nodes[idx]
		for s := 0; s < nStates; s++ {
			cost := 0.0
			count := uint64(1)
			infeasible := false

			for _, c := range n.children {
				child := &t.nodes[c]
				best := math.Inf(1)
				for tt := 0; tt < nStates; tt++ {
					v := child.info[tt].Cost + t.mu.Fn(alphabet.State(s), alphabet.State(tt))
					if v < best {
						best = v
					}
				}
				if math.IsInf(best, 1) {
					infeasible = true
					break
				}
				var eq uint64
				for tt := 0; tt < nStates; tt++ {
					v := child.info[tt].Cost + t.mu.Fn(alphabet.State(s), alphabet.State(tt))
					if v == best {
						eq += child.info[tt].Count
					}
				}
				cost += best
				count *= eq
			}

			if infeasible {
				n.info[s] = StateInfo{Count: 0, Cost: math.Inf(1)}
			} else {
				n.info[s] = StateInfo{Count: count, Cost: cost}
			}
		}
	}
	return nil
}

// RootStateInfo returns the root's StateInfo for concrete state s, valid
// only after Update has run. Exposed mainly for direct SMT tests (§8 S2)
// and the out-of-scope-by-default verbose result dump (§9).
func (t *Tree) RootStateInfo(s alphabet.State) StateInfo {
	return t.nodes[t.root].info[s]
}

// PreSpeciationCost computes the tree-level scalar defined in §4.1: the
// expected number of mutations on the two root-to-child edges (the
// duplication/speciation split), averaged uniformly over every minimum-cost
// labeling of the root. Must be called after Update.
//
// Returns (+Inf, nil) if every root state has infinite cost (§7
// NumericBoundary: callers/strategies treat this as "no finite cost",
// never as an error); returns an InvariantViolation-wrapped error only if
// the count(R,s) % eq == 0 divisibility check (§4.1/§9) fails, which is a
// bug, not a user error.
func (t *Tree) PreSpeciationCost() (float64, error) {
	root := &t.nodes[t.root]

	m := math.Inf(1)
	for s := 0; s < nStates; s++ {
		if root.info[s].Cost < m {
			m = root.info[s].Cost
		}
	}
	if math.IsInf(m, 1) {
		return math.Inf(1), nil
	}

	var noRecons uint64
	var costSum float64
	children := [2]int32{t.rootLeft, t.rootRight}

	for s := 0; s < nStates; s++ {
		if root.info[s].Cost != m {
			continue
		}
		noRecons += root.info[s].Count

		for _, c := range children {
			child := &t.nodes[c]
			q := math.Inf(1)
			for tt := 0; tt < nStates; tt++ {
				v := child.info[tt].Cost + t.mu.Fn(alphabet.State(s), alphabet.State(tt))
				if v < q {
					q = v
				}
			}
			var eq uint64
			for tt := 0; tt < nStates; tt++ {
				v := child.info[tt].Cost + t.mu.Fn(alphabet.State(s), alphabet.State(tt))
				if v == q {
					eq += child.info[tt].Count
				}
			}
			if eq == 0 || root.info[s].Count%eq != 0 {
				return 0, invariantViolation(ErrIndivisibleMultiplier)
			}
			mult := root.info[s].Count / eq

			for tt := 0; tt < nStates; tt++ {
				v := child.info[tt].Cost + t.mu.Fn(alphabet.State(s), alphabet.State(tt))
				if v == q {
					costSum += t.mu.Fn(alphabet.State(s), alphabet.State(tt)) * float64(child.info[tt].Count) * float64(mult)
				}
			}
		}
	}

	if noRecons == 0 {
		return math.Inf(1), nil
	}
	return costSum / float64(noRecons), nil
}

// CostFor fixes the 2K leaves from column (one concrete-or-ambiguous state
// per leaf, in the fixed traversal order: T_L leaves then T_R leaves),
// runs Update, and returns the pre-speciation cost (§4.1 contract:
// deterministic, non-negative, <= 2*max(mu)).
func (t *Tree) CostFor(column []alphabet.State) (float64, error) {
	if len(column) != len(t.leafOrder) {
		return 0, ErrColumnLengthMismatch
	}
	for i, s := range column {
		if err := t.FixLeaf(i, s.Concrete()); err != nil {
			return 0, err
		}
	}
	if err := t.Update(); err != nil {
		return 0, err
	}
	return t.PreSpeciationCost()
}
