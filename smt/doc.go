// Package smt implements the State-Mutation Tree (SMT): a fixed-topology
// rooted tree whose every node carries, per concrete state, a pair (minimum
// subtree cost, number of equally-minimal subtree labelings), updated by a
// post-order Sankoff pass from fixed leaves.
//
// What:
//
//   - Tree: builds the Duplication-Speciation Topology (DST) once per run —
//     two structural copies of a left-comb phylogeny over K leaves, joined
//     under a fresh root — and exposes CostFor to fix a 2K-leaf column and
//     report its pre-speciation cost.
//   - The DST is not a separately exported type: it is exactly how Tree
//     builds its topology, so callers only ever see Tree.
//
// Why:
//   - Isolate the Sankoff/Fitch dynamic program (cost/count aggregation,
//     divisibility-checked pre-speciation scalar) from the enumeration and
//     memoization concerns that live in segment and score.
//   - An arena of nodes indexed by an integer (not a pointer graph) lets
//     leaves be addressed by precomputed handles, removing any per-update
//     traversal to locate them.
//
// Complexity:
//
//   - New:      O(K) to build 4K-1 nodes (two (2K-1)-node combs plus the
//     shared root).
//   - CostFor:  O(K * |S|^2) per call (|S| = NumConcreteStates), dominated
//     by the post-order update visiting every internal node.
//
// Errors:
//
//	ErrTooFewSequences      - numSeqs < 2 at construction.
//	ErrLeafIndexOutOfRange  - FixLeaf addressed a leaf outside [0, 2K).
//	ErrIndivisibleMultiplier - the root's equally-minimal labeling count
//	                           didn't evenly divide as expected; a bug, not
//	                           a user error.
package smt
