package http

import (
	"errors"
	"net/http"

	"microloans-api/internal/domain/loan"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

// translate maps the closed domain error set to an HTTP status and body.
// Anything outside the set is a store-level failure and surfaces as an
// opaque 500; internals are never echoed to the client.
func translate(err error) (int, ErrorResponse) {
	switch {
	case errors.Is(err, loan.ErrValidation):
		return http.StatusBadRequest, ErrorResponse{Error: err.Error()}
	case errors.Is(err, loan.ErrInvalidID):
		return http.StatusBadRequest, ErrorResponse{Error: loan.ErrInvalidID.Error()}
	case errors.Is(err, loan.ErrNotFound):
		return http.StatusNotFound, ErrorResponse{Error: loan.ErrNotFound.Error()}
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: "internal error"}
	}
}
