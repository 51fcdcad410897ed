package series

import "errors"

var (
	// ErrInvalidParameter rejects a request at the call boundary (negative length, unknown domain).
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrGenerationFailure marks a record that came out non-finite. It is a defect, not a retryable condition.
	ErrGenerationFailure = errors.New("generation failure")
)
