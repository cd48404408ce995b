// Package score implements the four interchangeable scoring strategies of
// §4.3: Standard, Window, Patterns, and WindowPatterns. Every strategy
// computes the same quantity — the average per-column pre-speciation cost
// of a segment-pair (p,k) — and differs only in its memoization layer; all
// four share one smt.Tree instance for the lifetime of a run.
//
// What:
//
//   - Strategy: the four-way enum selecting a memoization layer.
//   - Scorer: the common CostFor(p,k) interface every strategy implements.
//   - New: validates the (strategy, mutation cost) combination and
//     constructs the requested Scorer.
//
// Why:
//   - Standard recomputes every column from scratch: no assumption on call
//     order, the natural baseline.
//   - Window amortizes adjacent segment-pairs at the same length into O(1)
//     work per call by reusing a rolling buffer, trading that for a strict
//     call-order precondition (§4.3) this package enforces and reports as
//     an error rather than silently producing a wrong answer.
//   - Patterns amortizes repeated columns (common in real sequence data)
//     across the whole run via a canonical-form cache, at the cost of
//     requiring an equality-only mutation function (§4.6) — a requirement
//     New checks at construction, not at each call.
//   - WindowPatterns composes both amortizations.
//
// Complexity (K sequences, L-length inputs, |S| concrete states):
//
//   - Standard:        O(k) SMT calls per CostFor, each O(K*|S|^2).
//   - Window:          O(1) SMT calls per CostFor (amortized).
//   - Patterns:        O(k) cache lookups per CostFor, O(1) SMT calls per
//     distinct pattern over the whole run.
//   - WindowPatterns:  O(1) SMT calls per CostFor, amortized over distinct
//     patterns.
//
// Errors:
//
//	ErrNonEquivalenceMutationCost - Patterns/WindowPatterns requested with
//	                                a mutation cost that is not equality-only.
//	ErrWindowOrderViolation       - Window/WindowPatterns called with p out
//	                                of the required strictly-ascending order.
package score
