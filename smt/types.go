package smt

import "github.com/katalvlaran/tandupscan/alphabet"

// nStates is the size of every node's per-state table: one slot per
// concrete state, stored as a flat array rather than a hash map.
const nStates = alphabet.NumConcreteStates

// StateInfo is the per-(node,state) pair: minimum subtree cost, and the
// number of equally-minimal subtree labelings achieving it.
type StateInfo struct {
	// Count is the number of distinct minimum-cost labelings of the
	// subtree rooted at this node that assign the associated state to
	// this node's root.
	Count uint64

	// Cost is the minimum cost of any labeling of the subtree rooted at
	// this node that assigns the associated state to this node's root.
	// +Inf means no such labeling exists.
	Cost float64
}

// smtNode is one arena slot: either a leaf (no children, fixed externally
// via FixLeaf) or an internal node (exactly two children). children/parent
// are arena indices, not pointers.
type smtNode struct {
	info     [nStates]StateInfo
	parent   int32
	children [2]int32 // unused slots are -1; leaves have both -1
	isLeaf   bool
}

// Tree is the State-Mutation Tree: the Duplication-Speciation Topology
// (two copies of a left-comb phylogeny over K leaves, joined under a
// shared root) plus the per-node StateInfo tables, built once per run and
// reused across every segment-pair column.
//
// Tree is not safe for concurrent use: a single goroutine should own one
// Tree and drive it through successive CostFor calls.
type Tree struct {
	nodes []smtNode
	mu    alphabet.MutationCost

	numSeqs int // K
	// leafOrder holds the 2K arena indices of the leaves in the fixed
	// traversal order the tree uses: T_L's K leaves in order, then T_R's K
	// leaves in order. leafOrder[i] and leafOrder[numSeqs+i] both
	// correspond to sequence i.
	leafOrder []int32

	root      int32
	rootLeft  int32 // root's two children: roots of T_L and T_R
	rootRight int32
	postOrder []int32 // internal nodes only, post-order (children before parent)
}

// NumSeqs returns K, the number of sequences the Tree was built for.
func (t *Tree) NumSeqs() int { return t.numSeqs }

// LeafCount returns 2K, the number of addressable leaves.
func (t *Tree) LeafCount() int { return len(t.leafOrder) }
