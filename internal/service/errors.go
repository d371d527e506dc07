package service

import "errors"

var (
	// ErrNewsNotFound is returned when a requested news item does not exist,
	// or when a news listing page contains no items.
	ErrNewsNotFound = errors.New("news not found")

	// ErrUserNotFound is returned when a requested user account does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrForbidden is returned when the acting user is authenticated but not
	// allowed to perform the requested operation on the target resource.
	ErrForbidden = errors.New("operation is not allowed for this user")

	// ErrUnauthorized is returned when no valid identity can be established
	// for the request.
	ErrUnauthorized = errors.New("authentication required")

	// ErrInvalidCredentials is returned on login when the password does not
	// match or the account is disabled.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenIsExpired is returned when a presented token has passed its
	// expiry time.
	ErrTokenIsExpired = errors.New("token is expired")

	// ErrInvalidDataProvided is returned when a service method receives input
	// that cannot be processed at all (as opposed to field-level validation
	// failures, which are reported through the validators package).
	ErrInvalidDataProvided = errors.New("invalid data provided")
)
