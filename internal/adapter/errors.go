package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes by mapHTTPError.
var (
	// ErrUnauthorized corresponds to HTTP 401.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrForbidden corresponds to HTTP 403.
	ErrForbidden = errors.New("operation forbidden")

	// ErrNotFound corresponds to HTTP 404.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation corresponds to HTTP 422. The wrapping error carries the
	// server's field messages.
	ErrValidation = errors.New("request failed validation")

	// ErrBadRequest corresponds to HTTP 400.
	ErrBadRequest = errors.New("bad request")
)
