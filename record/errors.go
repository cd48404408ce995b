package record

import "errors"

var (
	// ErrMalformedHeader is returned by ReadText when the first line does
	// not match the fixed header text.
	ErrMalformedHeader = errors.New("record: malformed header line")

	// ErrMalformedRecord is returned by ReadText when a data row does not
	// parse as two integers followed by a float.
	ErrMalformedRecord = errors.New("record: malformed result record")
)
