package autosync

import (
	"context"

	"github.com/iudanet/oneclickcopy/internal/models"
)

//go:generate moq -out notifier_mock.go . Notifier

// Notifier receives the user-visible outcomes of background sync work.
// Successful backups and empty or absent restores are silent.
// Methods are called from background goroutines.
type Notifier interface {
	// BackupFailed reports a failed backup. The next RequestBackup is the retry.
	BackupFailed(ctx context.Context, err error)

	// Restored delivers a non-empty restored document set to be merged locally
	Restored(ctx context.Context, docs []models.Document)

	// RestoreFailed reports a failed restore other than a missing backup
	RestoreFailed(ctx context.Context, err error)
}
