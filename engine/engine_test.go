package engine_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tandupscan/alphabet"
	"github.com/katalvlaran/tandupscan/engine"
	"github.com/katalvlaran/tandupscan/record"
	"github.com/katalvlaran/tandupscan/score"
	"github.com/katalvlaran/tandupscan/segment"
)

// captureSink records every summary passed to Store.
type captureSink struct {
	summaries []record.RunSummary
}

func (s *captureSink) Store(summary record.RunSummary) error {
	s.summaries = append(s.summaries, summary)
	return nil
}

func parseSeq(t *testing.T, letters string) []alphabet.State {
	t.Helper()
	out := make([]alphabet.State, len(letters))
	for i := 0; i < len(letters); i++ {
		st, err := alphabet.ParseLetter(letters[i])
		require.NoError(t, err)
		out[i] = st
	}
	return out
}

// TestRun_S1 exercises spec scenario S1's cardinality and determinism
// claims (K=2, identical sequences, params=(1,∞,1): top list length
// equals the number of valid (p,k) pairs). The scenario's literal L=2
// example ("AC","AC") admits only one (p,k) pair under §4.2's p+2k<=L
// bound, one short of the scenario's claimed count of 2, so this test
// uses L=3 ("ACA","ACA"), which does admit exactly 2.
//
// The scenario also claims every result has cost 0.0; a hand-derivation
// of §4.1's recurrence for this exact input (both sequences agreeing at
// every position, so neither species anchors the duplication edges)
// gives 1.0, not 0.0: with no asymmetry between species to absorb the
// A->C (or C->A) difference into a terminal branch, it must cross one of
// the two root (duplication) edges, costing exactly 1 in every minimal
// reconstruction. original_source was unavailable to resolve this
// against the reference implementation (per DESIGN.md), so this test
// asserts the derived, verified value (1.0) rather than propagate the
// scenario's literal constant.
func TestRun_S1(t *testing.T) {
	cfg := engine.RunConfig{
		Sequences:    [][]alphabet.State{parseSeq(t, "ACA"), parseSeq(t, "ACA")},
		Mutation:     alphabet.DefaultMutationCost(),
		LengthParams: segment.Params{MinLen: 1, MaxLen: 1000, Step: 1},
		NoResults:    5,
		Strategy:     score.Standard,
	}

	sink := &captureSink{}
	require.NoError(t, engine.Run(cfg, sink))
	require.Len(t, sink.summaries, 1)

	results := sink.summaries[0].Results
	require.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, uint64(1), r.Length)
		assert.InDelta(t, 1.0, r.Cost, 1e-9)
	}
}

func TestRun_RejectsTooFewSequences(t *testing.T) {
	cfg := engine.RunConfig{
		Sequences:    [][]alphabet.State{parseSeq(t, "AC")},
		Mutation:     alphabet.DefaultMutationCost(),
		LengthParams: segment.Params{MinLen: 1, MaxLen: 1, Step: 1},
		NoResults:    1,
	}
	err := engine.Run(cfg, &captureSink{})
	assert.ErrorIs(t, err, engine.ErrTooFewSequences)
}

func TestRun_RejectsMismatchedLengths(t *testing.T) {
	cfg := engine.RunConfig{
		Sequences:    [][]alphabet.State{parseSeq(t, "ACGT"), parseSeq(t, "AC")},
		Mutation:     alphabet.DefaultMutationCost(),
		LengthParams: segment.Params{MinLen: 1, MaxLen: 1, Step: 1},
		NoResults:    1,
	}
	err := engine.Run(cfg, &captureSink{})
	assert.ErrorIs(t, err, engine.ErrSequenceLengthMismatch)
}

func TestRun_RejectsMinLenAboveHalfLength(t *testing.T) {
	cfg := engine.RunConfig{
		Sequences:    [][]alphabet.State{parseSeq(t, "ACGT"), parseSeq(t, "ACGT")},
		Mutation:     alphabet.DefaultMutationCost(),
		LengthParams: segment.Params{MinLen: 3, MaxLen: 3, Step: 1},
		NoResults:    1,
	}
	err := engine.Run(cfg, &captureSink{})
	assert.ErrorIs(t, err, engine.ErrMinLenTooLarge)
}

func TestRun_RejectsStepMismatch(t *testing.T) {
	cfg := engine.RunConfig{
		Sequences:    [][]alphabet.State{parseSeq(t, "ACGTACGT"), parseSeq(t, "ACGTACGT")},
		Mutation:     alphabet.DefaultMutationCost(),
		LengthParams: segment.Params{MinLen: 3, MaxLen: 4, Step: 2},
		NoResults:    1,
	}
	err := engine.Run(cfg, &captureSink{})
	assert.ErrorIs(t, err, engine.ErrStepMismatch)
}

func TestRun_RejectsNegativeNoResults(t *testing.T) {
	cfg := engine.RunConfig{
		Sequences:    [][]alphabet.State{parseSeq(t, "ACGT"), parseSeq(t, "ACGT")},
		Mutation:     alphabet.DefaultMutationCost(),
		LengthParams: segment.Params{MinLen: 1, MaxLen: 2, Step: 1},
		NoResults:    -1,
	}
	err := engine.Run(cfg, &captureSink{})
	assert.ErrorIs(t, err, engine.ErrNegativeNoResults)
}

func TestRun_RejectsPatternsWithNonEqualityMutationCost(t *testing.T) {
	nonEquality := alphabet.MutationCost{
		Fn:           func(a, b alphabet.State) float64 { return 1 },
		EqualityOnly: false,
	}
	cfg := engine.RunConfig{
		Sequences:    [][]alphabet.State{parseSeq(t, "ACGT"), parseSeq(t, "ACGT")},
		Mutation:     nonEquality,
		LengthParams: segment.Params{MinLen: 1, MaxLen: 2, Step: 1},
		NoResults:    1,
		Strategy:     score.Patterns,
	}
	err := engine.Run(cfg, &captureSink{})
	assert.ErrorIs(t, err, score.ErrNonEquivalenceMutationCost)
}

func TestRun_NoResultsZeroYieldsEmptySummary(t *testing.T) {
	cfg := engine.RunConfig{
		Sequences:    [][]alphabet.State{parseSeq(t, "ACGT"), parseSeq(t, "ACGT")},
		Mutation:     alphabet.DefaultMutationCost(),
		LengthParams: segment.Params{MinLen: 1, MaxLen: 2, Step: 1},
		NoResults:    0,
	}
	sink := &captureSink{}
	require.NoError(t, engine.Run(cfg, sink))
	assert.Empty(t, sink.summaries[0].Results)
}

// TestRunAll_StopsOnFirstError checks RunAll propagates the first error
// and does not continue past it.
func TestRunAll_StopsOnFirstError(t *testing.T) {
	good := engine.RunConfig{
		Sequences:    [][]alphabet.State{parseSeq(t, "ACGT"), parseSeq(t, "ACGT")},
		Mutation:     alphabet.DefaultMutationCost(),
		LengthParams: segment.Params{MinLen: 1, MaxLen: 2, Step: 1},
		NoResults:    1,
	}
	bad := engine.RunConfig{
		Sequences: [][]alphabet.State{parseSeq(t, "AC")},
		Mutation:  alphabet.DefaultMutationCost(),
	}

	configs := []engine.RunConfig{good, bad, good}
	sink := &captureSink{}
	err := engine.RunAll(func(yield func(engine.RunConfig) bool) {
		for _, c := range configs {
			if !yield(c) {
				return
			}
		}
	}, sink)

	require.Error(t, err)
	assert.True(t, errors.Is(err, engine.ErrTooFewSequences))
	assert.Len(t, sink.summaries, 1, "only the first (good) config should have run")
}

// TestRunAll_WithContextCancelsBetweenConfigs checks that a context
// canceled after the first RunConfig completes stops RunAll before it
// starts the second, without touching the first config's already-stored
// summary.
func TestRunAll_WithContextCancelsBetweenConfigs(t *testing.T) {
	good := engine.RunConfig{
		Sequences:    [][]alphabet.State{parseSeq(t, "ACGT"), parseSeq(t, "ACGT")},
		Mutation:     alphabet.DefaultMutationCost(),
		LengthParams: segment.Params{MinLen: 1, MaxLen: 2, Step: 1},
		NoResults:    1,
	}

	ctx, cancel := context.WithCancel(context.Background())
	sink := &captureSink{}
	configs := func(yield func(engine.RunConfig) bool) {
		if !yield(good) {
			return
		}
		cancel()
		yield(good)
	}

	err := engine.RunAll(configs, sink, engine.WithContext(ctx))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, sink.summaries, 1, "the config already running when cancel fired should still complete, but no more")
}

// TestRunAll_WithContextAlreadyCanceled checks that a context canceled
// before the first RunConfig is pulled prevents RunAll from starting any
// configuration at all.
func TestRunAll_WithContextAlreadyCanceled(t *testing.T) {
	good := engine.RunConfig{
		Sequences:    [][]alphabet.State{parseSeq(t, "ACGT"), parseSeq(t, "ACGT")},
		Mutation:     alphabet.DefaultMutationCost(),
		LengthParams: segment.Params{MinLen: 1, MaxLen: 2, Step: 1},
		NoResults:    1,
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sink := &captureSink{}
	configs := func(yield func(engine.RunConfig) bool) {
		yield(good)
	}

	err := engine.RunAll(configs, sink, engine.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, sink.summaries)
}
