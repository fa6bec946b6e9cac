// Package apperr classifies failures of the reporting API into the kinds the
// HTTP layer maps to status codes.
package apperr

import (
	"net/http"

	cr "github.com/cockroachdb/errors"
)

// Kind markers. Errors carry one of these via cr.Mark and are matched with Is.
var (
	ErrValidation   = cr.New("validation error")
	ErrNotFound     = cr.New("not found")
	ErrForbidden    = cr.New("forbidden")
	ErrUnauthorized = cr.New("unauthorized")
	ErrStore        = cr.New("store error")
)

// Validation reports a malformed request parameter.
func Validation(msg string) error {
	return cr.Mark(cr.NewWithDepth(1, msg), ErrValidation)
}

// Validationf is Validation with formatting.
func Validationf(format string, args ...any) error {
	return cr.Mark(cr.NewWithDepthf(1, format, args...), ErrValidation)
}

// NotFound reports a missing or unresolvable entity.
func NotFound(msg string) error {
	return cr.Mark(cr.NewWithDepth(1, msg), ErrNotFound)
}

// Forbidden reports an entity owned by someone else.
func Forbidden(msg string) error {
	return cr.Mark(cr.NewWithDepth(1, msg), ErrForbidden)
}

// Unauthorized reports a missing or invalid credential.
func Unauthorized(msg string) error {
	return cr.Mark(cr.NewWithDepth(1, msg), ErrUnauthorized)
}

// Store wraps a record store failure. A nil err stays nil.
func Store(err error, op string) error {
	if err == nil {
		return nil
	}
	return cr.Mark(cr.WrapWithDepth(1, err, op), ErrStore)
}

// Is reports whether err carries the given kind marker.
func Is(err, kind error) bool {
	return cr.Is(err, kind)
}

// HTTPStatus maps an error to the status code surfaced to API callers.
// Unclassified errors are treated as internal failures.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case cr.Is(err, ErrValidation):
		return http.StatusBadRequest
	case cr.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case cr.Is(err, ErrForbidden):
		return http.StatusForbidden
	case cr.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the caller-facing message for err. Client errors
// expose their own text; server errors get a generic message and keep the
// detail for the error field of the response.
func PublicMessage(err error, fallback string) string {
	if HTTPStatus(err) < http.StatusInternalServerError {
		return err.Error()
	}
	return fallback
}
