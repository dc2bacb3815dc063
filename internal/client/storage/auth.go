package storage

import (
	"context"
	"fmt"
	"time"
)

//go:generate moq -out authstorage_mock.go . AuthStorage

// AuthStorage defines interface for storing the signed-in session on client.
// Implementations store data as-is and do not interpret tokens.
type AuthStorage interface {
	// SaveAuth stores authentication data, replacing any previous session
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth retrieves stored authentication data
	// Returns ErrAuthNotFound if no session exists
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes stored authentication data (sign out)
	// Returns ErrAuthNotFound if no session exists
	DeleteAuth(ctx context.Context) error
}

// Provider identifies which remote backend the session belongs to.
type Provider string

const (
	ProviderGoogle Provider = "google" // Google Drive
	ProviderServer Provider = "server" // self-hosted backup server
)

// AuthData represents the signed-in session in storage
type AuthData struct {
	Provider     Provider `json:"provider"`
	Email        string   `json:"email"`
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	TokenType    string   `json:"token_type"`
	ServerURL    string   `json:"server_url,omitempty"` // только для ProviderServer
	ExpiresAt    int64    `json:"expires_at"`           // unix seconds, 0 = без срока
}

// Validate проверяет, что сессию можно сохранить
func (a *AuthData) Validate() error {
	switch a.Provider {
	case ProviderGoogle:
	case ProviderServer:
		if a.ServerURL == "" {
			return fmt.Errorf("%w: server session without server_url", ErrInvalidAuth)
		}
	default:
		return fmt.Errorf("%w: unknown provider %q", ErrInvalidAuth, a.Provider)
	}
	if a.AccessToken == "" && a.RefreshToken == "" {
		return fmt.Errorf("%w: no tokens", ErrInvalidAuth)
	}
	return nil
}

// Expiry returns the access token expiry, zero when unknown
func (a *AuthData) Expiry() time.Time {
	if a.ExpiresAt == 0 {
		return time.Time{}
	}
	return time.Unix(a.ExpiresAt, 0)
}

// SetExpiry stores t with second precision; zero t clears the expiry
func (a *AuthData) SetExpiry(t time.Time) {
	if t.IsZero() {
		a.ExpiresAt = 0
		return
	}
	a.ExpiresAt = t.Unix()
}

// AccessExpired reports whether the access token is known to be expired at now
func (a *AuthData) AccessExpired(now time.Time) bool {
	return a.ExpiresAt != 0 && !now.Before(a.Expiry())
}

// Usable reports whether the session can still authorize requests:
// a live access token, or a refresh token to get a new one.
func (a *AuthData) Usable(now time.Time) bool {
	if a.RefreshToken != "" {
		return true
	}
	return a.AccessToken != "" && !a.AccessExpired(now)
}
