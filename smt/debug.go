//go:build !smtdebug

package smt

import "fmt"

// invariantViolation reports an InvariantViolation (§4.7/§7). In the default
// (release) build it returns an opaque error wrapping ErrInvariantViolation
// and cause; build with -tags smtdebug to instead abort the process, which
// is useful when developing or debugging the Sankoff update itself.
func invariantViolation(cause error) error {
	return fmt.Errorf("%w: %w", ErrInvariantViolation, cause)
}
