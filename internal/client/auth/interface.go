package auth

import (
	"context"

	"github.com/iudanet/oneclickcopy/internal/client/storage"
)

//go:generate moq -out session_mock.go . Session

// Identity describes the signed-in account
type Identity struct {
	Email    string
	Provider storage.Provider
}

// Session answers whether a user is signed in and who it is.
// Signing in is provider specific, see GoogleAuthenticator and ServerAuthenticator.
type Session interface {
	// IsSignedIn reports whether a stored session exists
	IsSignedIn(ctx context.Context) bool

	// CurrentIdentity returns the signed-in identity
	// Returns ErrNotSignedIn if there is no session
	CurrentIdentity(ctx context.Context) (*Identity, error)

	// SignOut removes the local session. Remote revocation is best effort.
	SignOut(ctx context.Context) error
}
