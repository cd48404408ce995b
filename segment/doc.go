// Package segment enumerates segment-pairs over K aligned sequences of
// common length L: admissible segment lengths k, admissible start positions
// p for each k, and the per-column 2K-tuples of states a scoring strategy
// consumes one at a time.
//
// What:
//
//   - Params: validated (minLen, maxLen, step) triple.
//   - Lengths: the ascending sequence of admissible k.
//   - Positions: the ascending sequence of admissible p for a fixed k.
//   - Column: the 2K-tuple of states at column index j of segment-pair (p,k).
//
// Why:
//   - Enumeration order is contractual: k ascending, then p ascending from
//     0 for each k. The Window scoring strategy depends on strictly
//     ascending p within a fixed k, so this package is the single place that
//     order is produced and must never be reordered by a caller.
//   - Keeping enumeration separate from scoring lets every strategy in
//     package score share one enumerator without re-deriving index math.
//
// Complexity:
//
//   - Lengths:   O(L/step).
//   - Positions: O(L) per k.
//   - Column:    O(K) per call.
//
// Errors:
//
//	ErrInvalidParams - minLen > maxLen, step < 1, minLen not a multiple of
//	                   step, or minLen/maxLen < 1.
package segment
