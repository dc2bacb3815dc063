package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/oneclickcopy/internal/client/auth"
	"github.com/iudanet/oneclickcopy/internal/client/backup"
	"github.com/iudanet/oneclickcopy/internal/client/remote"
	"github.com/iudanet/oneclickcopy/internal/clock"
	"github.com/iudanet/oneclickcopy/internal/models"
)

//go:generate moq -out service_mock.go . Service

// Service moves the whole document set to and from the single remote backup object
type Service interface {
	// Backup overwrites the remote backup with docs, creating the object if absent
	Backup(ctx context.Context, docs []models.Document) error

	// Restore downloads and decodes the remote backup
	Restore(ctx context.Context) ([]models.Document, error)
}

type service struct {
	session auth.Session
	store   remote.BlobStore
	clock   clock.Clock
	logger  *slog.Logger
}

// NewService creates a new sync service
func NewService(session auth.Session, store remote.BlobStore, clk clock.Clock, logger *slog.Logger) Service {
	return &service{
		session: session,
		store:   store,
		clock:   clk,
		logger:  logger,
	}
}

// Backup encodes docs and writes them to the well-known backup object.
// An existing object is updated in place, so there is never more than one.
func (s *service) Backup(ctx context.Context, docs []models.Document) error {
	if !s.session.IsSignedIn(ctx) {
		return ErrNotSignedIn
	}

	payload, err := backup.Encode(docs, s.clock.Now())
	if err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}

	obj, err := s.store.FindByName(ctx, backup.FileName)
	switch {
	case err == nil:
		if err := s.store.Update(ctx, obj, payload); err != nil {
			return &TransportError{Op: "update", Err: err}
		}
		s.logger.Info("Backup updated", "documents", len(docs), "bytes", len(payload))
	case errors.Is(err, remote.ErrObjectNotFound):
		if _, err := s.store.Create(ctx, backup.FileName, backup.MimeType, payload); err != nil {
			return &TransportError{Op: "create", Err: err}
		}
		s.logger.Info("Backup created", "documents", len(docs), "bytes", len(payload))
	default:
		return &TransportError{Op: "find", Err: err}
	}

	return nil
}

// Restore returns the documents of the remote backup.
// Returns ErrNoBackupFound when the object does not exist.
func (s *service) Restore(ctx context.Context) ([]models.Document, error) {
	if !s.session.IsSignedIn(ctx) {
		return nil, ErrNotSignedIn
	}

	obj, err := s.store.FindByName(ctx, backup.FileName)
	if err != nil {
		if errors.Is(err, remote.ErrObjectNotFound) {
			return nil, ErrNoBackupFound
		}
		return nil, &TransportError{Op: "find", Err: err}
	}

	payload, err := s.store.Download(ctx, obj)
	if err != nil {
		return nil, &TransportError{Op: "download", Err: err}
	}

	docs, err := backup.Decode(payload)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Backup downloaded", "documents", len(docs), "bytes", len(payload))
	return docs, nil
}
