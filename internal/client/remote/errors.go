package remote

import "errors"

var (
	// ErrObjectNotFound indicates that no object with the requested name or ID exists
	ErrObjectNotFound = errors.New("remote object not found")

	// ErrUnauthorized indicates that the remote rejected the credentials
	ErrUnauthorized = errors.New("remote rejected credentials")

	// ErrObjectTooLarge indicates that the object exceeds the download limit
	ErrObjectTooLarge = errors.New("remote object too large")

	// ErrRateLimited indicates that the remote throttled the request
	ErrRateLimited = errors.New("remote rate limit exceeded")
)
