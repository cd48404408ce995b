// Package tandupscan scores candidate tandem-duplication boundaries in a
// set of aligned sequences using a Sankoff-parsimony small-phylogeny model.
//
// 🚀 What is tandupscan?
//
//	A pure-Go scoring engine that brings together:
//
//	  • alphabet  — the closed nucleotide/IUPAC state set and mutation costs
//	  • smt       — the State-Mutation Tree: a Sankoff DP over a fixed
//	                Duplication-Speciation Topology, built once per run
//	                and reused for every candidate segment length
//	  • segment   — the segment-pairs enumerator (valid (position, length)
//	                candidates under a length-budget contract)
//	  • score     — four scoring strategies (standard, window, patterns,
//	                window-patterns) that agree up to floating-point
//	                rounding but trade memory for reuse across a scan
//	  • topn      — a bounded, heap-backed collector of the lowest-cost
//	                candidates
//	  • record    — the fixed-width result format and its equivalence
//	                comparator
//	  • engine    — the run loop wiring the above into one scan
//
// ✨ Why this shape?
//
//   - Deterministic    — every strategy produces the same costs up to
//     floating-point rounding; only the memory/reuse trade-off differs
//   - Bounded          — the result collector never holds more than the
//     requested top-N candidates (the pattern caches grow with the
//     number of distinct columns seen)
//   - Pure Go          — no cgo, no external process dependencies
//
// Everything above the `smt` DP is organized so the core (`alphabet`,
// `smt`, `segment`, `score`, `topn`, `record`, `engine`) never imports a
// CLI, a file format, or a logger: `cmd/tandupscan` is the one external
// collaborator that wires flags to `engine.RunConfig` and writes results
// through `record.WriteText`.
//
//	go get github.com/katalvlaran/tandupscan
package tandupscan
