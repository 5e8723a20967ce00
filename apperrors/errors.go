// Package apperrors defines the service-wide error taxonomy and its
// mapping to HTTP statuses.
package apperrors

import (
	"errors"
	"net/http"
)

var (
	// ErrUnauthenticated means no credential of any kind was supplied.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrInvalidToken means a supplied album token resolved to no account.
	ErrInvalidToken = errors.New("invalid or expired album token")
	// ErrPrincipalNotFound means a valid session referenced a deleted account.
	ErrPrincipalNotFound = errors.New("user not found")
	// ErrForbidden is a role or tenant mismatch.
	ErrForbidden = errors.New("access denied")
	// ErrNotFound is a missing entity.
	ErrNotFound = errors.New("not found")
	// ErrValidation is a missing or malformed required field.
	ErrValidation = errors.New("validation failed")
	// ErrUploadProcessing wraps storage or thumbnailing failures during ingestion.
	ErrUploadProcessing = errors.New("failed to process upload")
)

// Status maps a taxonomy error to its HTTP status code. Unknown errors
// surface as 500.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrInvalidToken), errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrPrincipalNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
