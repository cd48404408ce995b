// Package engine implements the run engine: it pulls run configurations
// from an iterable, validates each one, builds the SMT and scoring
// strategy, drives the segment-pairs enumerator into the collector, times
// the run, and hands the resulting RunSummary to a sink.
//
// What:
//
//   - RunConfig: the external boundary value — sequences, mutation cost,
//     length parameters, N, and the chosen strategy.
//   - Sink: the single-method `store(summary)` collaborator.
//   - Run: executes one RunConfig to completion.
//   - RunAll: pulls RunConfig values from an iter.Seq and runs each in
//     turn, optionally checking a RunAllOption-supplied context.Context
//     for cancellation between configurations (WithContext).
//
// Why:
//   - The engine never interprets sequences or alphabet: every domain
//     decision (what states mean, how they mutate) is already baked into
//     the RunConfig's MutationCost and the sequences themselves; Alphabet
//     is carried through RunConfig but never read by the engine.
//   - Validation happens once, at run start, so a malformed RunConfig never
//     leaves partial state in a collector or a half-built SMT: a bad
//     config fails the whole run, never just part of it.
//   - RunAll's cancellation check sits strictly between Run calls, never
//     inside one: a run already in flight always finishes (§5 "cancelable
//     only between run configurations").
//
// Complexity: one Run is O(Σ_k (L-2k+1) * cost-of-strategy-call), i.e.
// exactly the work package score does per call, summed over the
// segment-pairs segment.Lengths/Positions enumerate.
//
// Errors:
//
//	ErrTooFewSequences        - len(Sequences) < 2.
//	ErrSequenceLengthMismatch - sequences do not share a common length.
//	ErrSequenceTooShort       - common length < 2.
//	ErrNegativeNoResults      - NoResults < 0.
//	ErrStepMismatch           - MinLen is not a multiple of Step.
//	ErrMinLenTooLarge         - MinLen exceeds half the sequence length.
//	(segment.ErrInvalidParams and score.ErrNonEquivalenceMutationCost also
//	surface from RunConfig.Validate, returned as those packages produce them;
//	RunAll additionally surfaces ctx.Err() — typically context.Canceled —
//	when a WithContext context is Done between RunConfigs.)
package engine
