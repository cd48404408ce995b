package alphabet

import "errors"

// Sentinel errors for the alphabet package. Callers should use errors.Is to
// branch on these rather than comparing error strings.
var (
	// ErrUnknownLetter indicates ParseLetter received a byte that is not a
	// recognized nucleotide or ambiguity-code letter.
	ErrUnknownLetter = errors.New("alphabet: unknown letter")

	// ErrEmptyStateSet indicates a leaf-fixing operation was asked to fix on
	// the empty set of concrete states. Fixing with the empty set has no
	// sensible meaning, so it is rejected at the boundary rather than
	// silently producing an all-infinite leaf.
	ErrEmptyStateSet = errors.New("alphabet: empty state set")
)
