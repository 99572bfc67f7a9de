package common

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound       = errors.New("requested resource not found")
	ErrUnauthorized   = errors.New("unauthorized access")
	ErrForbidden      = errors.New("forbidden access")
	ErrBadCredentials = errors.New("incorrect username or password")
	ErrBadRequest     = errors.New("bad request")
	ErrConflict       = errors.New("resource conflict") // e.g., username already taken
	ErrValidation     = errors.New("validation failed")
	ErrInternal       = errors.New("internal server error")
)

// Error pairs a sentinel kind with a message safe to show the client.
// errors.Is(err, kind) keeps working through Unwrap.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// E builds a client-facing domain error.
func E(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// FieldErrors carries per-field validation detail. It matches ErrValidation
// under errors.Is so handlers map it to 400 like any other validation error.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	return ErrValidation.Error()
}

func (e FieldErrors) Is(target error) bool {
	return target == ErrValidation
}

// HTTPStatusFromError maps domain errors to HTTP status codes.
func HTTPStatusFromError(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden), errors.Is(err, ErrBadCredentials):
		return http.StatusForbidden
	case errors.Is(err, ErrBadRequest), errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
