package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/oneclickcopy/internal/client/storage"
)

// Revoker invalidates a session on the remote side
type Revoker interface {
	Revoke(ctx context.Context, auth *storage.AuthData) error
}

type session struct {
	store    storage.AuthStorage
	revokers map[storage.Provider]Revoker
	logger   *slog.Logger
	now      func() time.Time
}

// NewSession creates a Session over the stored credentials.
// revokers are called on SignOut for the matching provider; a missing entry skips revocation.
func NewSession(store storage.AuthStorage, revokers map[storage.Provider]Revoker, logger *slog.Logger) Session {
	return &session{
		store:    store,
		revokers: revokers,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *session) IsSignedIn(ctx context.Context) bool {
	authData, err := s.store.GetAuth(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrAuthNotFound) {
			s.logger.Warn("Failed to read session", "error", err)
		}
		return false
	}
	return authData.Usable(s.now())
}

func (s *session) CurrentIdentity(ctx context.Context) (*Identity, error) {
	authData, err := s.store.GetAuth(ctx)
	if errors.Is(err, storage.ErrAuthNotFound) {
		return nil, ErrNotSignedIn
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	return &Identity{Email: authData.Email, Provider: authData.Provider}, nil
}

// SignOut удаляет локальную сессию. Ошибка отзыва на сервере только логируется.
func (s *session) SignOut(ctx context.Context) error {
	authData, err := s.store.GetAuth(ctx)
	if errors.Is(err, storage.ErrAuthNotFound) {
		return ErrNotSignedIn
	}
	if err != nil {
		return fmt.Errorf("failed to read session: %w", err)
	}

	if revoker, ok := s.revokers[authData.Provider]; ok && revoker != nil {
		if err := revoker.Revoke(ctx, authData); err != nil {
			s.logger.Warn("Failed to revoke remote session", "provider", authData.Provider, "error", err)
		}
	}

	if err := s.store.DeleteAuth(ctx); err != nil && !errors.Is(err, storage.ErrAuthNotFound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	s.logger.Info("Signed out", "email", authData.Email, "provider", authData.Provider)
	return nil
}
