package auth

import "errors"

var (
	// ErrNotSignedIn indicates there is no stored session
	ErrNotSignedIn = errors.New("not signed in")

	// ErrWrongProvider indicates the stored session belongs to another backend
	ErrWrongProvider = errors.New("session belongs to another provider")
)
