package engine

import "errors"

var (
	// ErrTooFewSequences indicates a RunConfig supplied fewer than 2
	// sequences; a duplication boundary has no meaning with just one.
	ErrTooFewSequences = errors.New("engine: at least 2 sequences are required")

	// ErrSequenceLengthMismatch indicates not every sequence in a RunConfig
	// has the same length; all sequences in a group must share one.
	ErrSequenceLengthMismatch = errors.New("engine: sequences must share a common length")

	// ErrSequenceTooShort indicates the common sequence length is below the
	// minimum a segment-pair needs.
	ErrSequenceTooShort = errors.New("engine: sequence length must be at least 2")

	// ErrMinLenTooLarge indicates the length parameters' MinLen exceeds
	// half the sequence length, so no segment length is admissible.
	ErrMinLenTooLarge = errors.New("engine: MinLen exceeds half the sequence length")

	// ErrStepMismatch indicates MinLen is not a multiple of Step, violating
	// the §3 LengthParameters invariant.
	ErrStepMismatch = errors.New("engine: MinLen must be a multiple of Step")

	// ErrNegativeNoResults indicates a RunConfig's NoResults is negative;
	// the top-N collector's capacity cannot be negative.
	ErrNegativeNoResults = errors.New("engine: NoResults must not be negative")
)
