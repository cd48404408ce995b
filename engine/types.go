package engine

import (
	"fmt"

	"github.com/katalvlaran/tandupscan/alphabet"
	"github.com/katalvlaran/tandupscan/record"
	"github.com/katalvlaran/tandupscan/score"
	"github.com/katalvlaran/tandupscan/segment"
)

// RunConfig is the external-interface value: everything one run needs,
// borrowed for the run's duration and never mutated by the core.
type RunConfig struct {
	// Sequences holds K sequences of common length L, each a slice of
	// alphabet.State (concrete or ambiguous).
	Sequences [][]alphabet.State

	// Alphabet is the ordered list of states the caller drew Sequences
	// from (§3 RunConfig, §6 external interface). The engine never
	// interprets or validates it; it is carried through the RunConfig
	// purely so a collaborator assembling RunConfigs has a place to put
	// it alongside Sequences.
	Alphabet []alphabet.State

	// Mutation is the mutation-cost function the SMT and scorer use.
	Mutation alphabet.MutationCost

	// LengthParams bounds the admissible segment lengths.
	LengthParams segment.Params

	// NoResults is N, the top-N collector's capacity. Negative values are
	// rejected by Validate (ErrNegativeNoResults); zero is valid and
	// yields an empty summary (§4.7 NoError).
	NoResults int

	// Strategy selects the scoring strategy.
	Strategy score.Strategy
}

// Sink is the single-method result collaborator: it receives the finished
// RunSummary for one RunConfig.
type Sink interface {
	Store(summary record.RunSummary) error
}

// Validate checks every precondition the engine owns before a run starts:
// at least 2 sequences, a shared sequence length of at least 2, a
// non-negative NoResults, MinLen compatible with Step, MinLen no greater
// than half the sequence length, and (for the pattern-based strategies)
// an equality-only mutation cost. A failing Validate aborts the whole
// run; no partial summary is ever produced.
func (c RunConfig) Validate() error {
	if len(c.Sequences) < 2 {
		return fmt.Errorf("%d sequences: %w", len(c.Sequences), ErrTooFewSequences)
	}

	l := len(c.Sequences[0])
	for i, seq := range c.Sequences {
		if len(seq) != l {
			return fmt.Errorf("sequence %d has length %d, want %d: %w", i, len(seq), l, ErrSequenceLengthMismatch)
		}
	}
	if l < 2 {
		return fmt.Errorf("length=%d: %w", l, ErrSequenceTooShort)
	}

	if c.NoResults < 0 {
		return fmt.Errorf("NoResults=%d: %w", c.NoResults, ErrNegativeNoResults)
	}

	if c.LengthParams.Step > 0 && c.LengthParams.MinLen%c.LengthParams.Step != 0 {
		return fmt.Errorf("MinLen=%d not a multiple of Step=%d: %w", c.LengthParams.MinLen, c.LengthParams.Step, ErrStepMismatch)
	}
	if err := c.LengthParams.Validate(); err != nil {
		return err
	}
	if c.LengthParams.MinLen > uint64(l)/2 {
		return fmt.Errorf("MinLen=%d > L/2=%d: %w", c.LengthParams.MinLen, uint64(l)/2, ErrMinLenTooLarge)
	}

	if (c.Strategy == score.Patterns || c.Strategy == score.WindowPatterns) && !c.Mutation.EqualityOnly {
		return score.ErrNonEquivalenceMutationCost
	}

	return nil
}
