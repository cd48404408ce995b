// Package alphabet defines the finite state alphabet used to label sequence
// positions and SMT leaves, together with the mutation-cost abstraction that
// drives Sankoff scoring.
//
// What:
//
//   - State: a compact tagged uint8 covering the five concrete nucleotide
//     states (gap, A, C, G, T) plus the standard IUPAC ambiguity codes
//     (R, Y, S, W, K, M, B, D, H, V, N).
//   - Concrete: resolves an ambiguous State to the set of concrete States it
//     denotes; a concrete State resolves to itself.
//   - MutationCost: a plain State×State→float64 function paired with an
//     EqualityOnly tag that pattern-memoizing scoring strategies require.
//
// Why:
//   - Keep the alphabet small, closed, and array-indexable, so every SMT
//     node can store its StateInfo table as a flat fixed-size array rather
//     than a map.
//   - Separate "what a column contains" from "how columns are scored": the
//     mutation cost is supplied by the caller, never hard-coded here.
//
// Errors:
//
//	ErrUnknownLetter  - ParseLetter received a byte outside the alphabet.
//	ErrEmptyStateSet  - a leaf was asked to fix on the empty set of states.
package alphabet
