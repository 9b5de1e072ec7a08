package domain

import "errors"

// ErrInvalidArgument is returned when a caller violates an operation's
// contract: a nil reference where a value is required, a blank string where
// text is required, a number outside its declared range, or an inverted
// date range. Callers detect it with errors.Is.
//
// Not-found and no-op conditions (duplicate add, unknown id, empty search)
// are never errors; they are signalled with boolean returns or empty slices.
var ErrInvalidArgument = errors.New("invalid argument")
