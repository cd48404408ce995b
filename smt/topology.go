package smt

import "github.com/katalvlaran/tandupscan/alphabet"

// buildCombPhylogeny appends a left-comb phylogeny over k leaves to nodes
// and returns the arena index of its root together with the k leaf indices
// in left-to-right order (§4.1: "root has child=leaf1 and child=subtree
// over leaves 2..K, recursively; terminal two leaves share a parent").
//
// For k==1 the single leaf is its own "root" (only ever used internally
// while building; New rejects k<2 for the overall tree).
func buildCombPhylogeny(nodes *[]smtNode, k int) (root int32, leaves []int32) {
	leaves = make([]int32, k)
	for i := 0; i < k; i++ {
		leaves[i] = appendNode(nodes, smtNode{parent: -1, children: [2]int32{-1, -1}, isLeaf: true})
	}
	if k == 1 {
		return leaves[0], leaves
	}

	// Build bottom-up: the last two leaves share a parent first, then each
	// preceding leaf is combined with the subtree built so far.
	cur := appendInternal(nodes, leaves[k-2], leaves[k-1])
	for i := k - 3; i >= 0; i-- {
		cur = appendInternal(nodes, leaves[i], cur)
	}
	return cur, leaves
}

// appendNode appends n to *nodes and returns its new arena index.
func appendNode(nodes *[]smtNode, n smtNode) int32 {
	idx := int32(len(*nodes))
	*nodes = append(*nodes, n)
	return idx
}

// appendInternal appends a new internal node with children a,b and fixes
// up their parent pointers, returning the new node's arena index.
func appendInternal(nodes *[]smtNode, a, b int32) int32 {
	idx := appendNode(nodes, smtNode{parent: -1, children: [2]int32{a, b}, isLeaf: false})
	(*nodes)[a].parent = idx
	(*nodes)[b].parent = idx
	return idx
}

// New builds a Tree for numSeqs sequences using mu as the mutation cost.
// It builds two structural copies of a left-comb phylogeny (§4.1) and
// joins them under a fresh root, precomputes the post-order visitation
// order of internal nodes, and precomputes leaf handles in the fixed
// traversal order (T_L leaves, then T_R leaves) required by §4.1.
//
// Preconditions: numSeqs >= 2 (ErrTooFewSequences otherwise).
func New(numSeqs int, mu alphabet.MutationCost) (*Tree, error) {
	if numSeqs < 2 {
		return nil, ErrTooFewSequences
	}

	var nodes []smtNode
	rootL, leavesL := buildCombPhylogeny(&nodes, numSeqs)
	rootR, leavesR := buildCombPhylogeny(&nodes, numSeqs)
	root := appendInternal(&nodes, rootL, rootR)

	leafOrder := make([]int32, 0, 2*numSeqs)
	leafOrder = append(leafOrder, leavesL...)
	leafOrder = append(leafOrder, leavesR...)

	t := &Tree{
		nodes:     nodes,
		mu:        mu,
		numSeqs:   numSeqs,
		leafOrder: leafOrder,
		root:      root,
		rootLeft:  rootL,
		rootRight: rootR,
	}
	t.postOrder = t.computePostOrder()

	return t, nil
}

// computePostOrder walks the tree once and returns every internal node's
// arena index in post-order (children fully listed before their parent),
// so Update can apply the Sankoff recurrence in a single linear pass.
func (t *Tree) computePostOrder() []int32 {
	order := make([]int32, 0, len(t.nodes))
	var visit func(idx int32)
	visit = func(idx int32) {
		n := &t.nodes[idx]
		if n.isLeaf {
			return
		}
		for _, c := range n.children {
			visit(c)
		}
		order = append(order, idx)
	}
	visit(t.root)
	return order
}
