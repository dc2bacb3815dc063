package storage

import (
	"context"
	"time"

	"github.com/iudanet/oneclickcopy/internal/models"
)

//go:generate moq -out autosyncstorage_mock.go . AutoSyncStorage

// AutoSyncStorage persists the auto-sync coordinator state
type AutoSyncStorage interface {
	// GetAutoSyncState returns the stored state, zero value if nothing was saved yet
	GetAutoSyncState(ctx context.Context) (*models.AutoSyncState, error)

	// SaveLastBackupAt records the completion time of the last successful backup
	SaveLastBackupAt(ctx context.Context, at time.Time) error

	// MarkRestoredOnce sets the one-shot restore flag. It is never cleared.
	MarkRestoredOnce(ctx context.Context) error
}
