package segment

import "errors"

// ErrInvalidParams is returned by Params.Validate when the
// (minLen, maxLen, step) triple is internally inconsistent.
var ErrInvalidParams = errors.New("segment: invalid length parameters")
