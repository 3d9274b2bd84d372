package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes by mapHTTPError.
var (
	// ErrUnauthorized corresponds to HTTP 401: the stored token is missing,
	// expired, or the supplied credentials were rejected.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrNotFound corresponds to HTTP 404: the player or resource does not
	// exist on the server.
	ErrNotFound = errors.New("not found")

	// ErrConflict corresponds to HTTP 409: the requested username is
	// already taken.
	ErrConflict = errors.New("username conflict")

	// ErrServerUnavailable corresponds to HTTP 503: the server could not
	// reach its store.
	ErrServerUnavailable = errors.New("server unavailable")
)
