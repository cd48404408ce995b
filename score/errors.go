package score

import "errors"

var (
	// ErrNonEquivalenceMutationCost is returned by New when Patterns or
	// WindowPatterns is requested with a mutation cost that is not
	// equality-only (§4.3/§4.6): the pattern cache is only sound when
	// mu(s,t)=0 iff s=t and mu is otherwise a single constant.
	ErrNonEquivalenceMutationCost = errors.New("score: pattern-based strategies require an equality-only mutation cost")

	// ErrWindowOrderViolation is returned by the Window and WindowPatterns
	// strategies when CostFor is not called with p in the required
	// strictly-ascending order for a fixed k, starting from p=0 (§4.3).
	ErrWindowOrderViolation = errors.New("score: window strategy called out of order")

	// ErrUnknownStrategy is returned by New for a Strategy value outside
	// the four defined constants.
	ErrUnknownStrategy = errors.New("score: unknown strategy")
)
