package smt

import "errors"

// Sentinel errors for the smt package. The first three are caller-input
// errors; the last two indicate a programming
// error internal to the Sankoff update, never a user error.
var (
	// ErrTooFewSequences indicates New was called with numSeqs < 2; the
	// Duplication-Speciation Topology requires at least two leaves per
	// phylogeny copy.
	ErrTooFewSequences = errors.New("smt: at least 2 sequences are required")

	// ErrLeafIndexOutOfRange indicates FixLeaf addressed an index outside
	// [0, LeafCount()).
	ErrLeafIndexOutOfRange = errors.New("smt: leaf index out of range")

	// ErrColumnLengthMismatch indicates CostFor received a column whose
	// length does not equal LeafCount().
	ErrColumnLengthMismatch = errors.New("smt: column length does not match leaf count")

	// ErrIndivisibleMultiplier indicates the pre-speciation cost aggregation
	// requires count(R,s) to divide evenly by the per-child tie count; a
	// remainder indicates a bug in the Sankoff update, not invalid input.
	ErrIndivisibleMultiplier = errors.New("smt: invariant violation: indivisible root multiplier")

	// ErrInvariantViolation is the opaque error internal invariant failures
	// are wrapped as in release builds. The release wrapper also wraps the
	// more specific sentinel above, so errors.Is recovers the cause; with
	// the smtdebug build tag the process panics instead (see debug.go).
	ErrInvariantViolation = errors.New("smt: internal invariant violation")
)
