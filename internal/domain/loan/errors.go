package loan

import "errors"

// Closed error taxonomy for the loan domain. Handlers translate these to
// HTTP statuses; anything outside the set maps to 500.
var (
	ErrNotFound   = errors.New("loan not found")
	ErrInvalidID  = errors.New("loan id is not a valid UUID")
	ErrValidation = errors.New("invalid loan input")
)
