package coverletters

import "errors"

var (
	// ErrNotFound indicates the cover letter does not exist or is not visible to the caller.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")
)
