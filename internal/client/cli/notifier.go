package cli

import (
	"context"
	"log/slog"

	"github.com/iudanet/oneclickcopy/internal/client/autosync"
	"github.com/iudanet/oneclickcopy/internal/client/data"
	"github.com/iudanet/oneclickcopy/internal/client/iocli"
	"github.com/iudanet/oneclickcopy/internal/models"
)

// Notifier shows background sync outcomes as one-line messages and merges
// restored notes into the local store.
type Notifier struct {
	io          iocli.IO
	dataService data.Service
	logger      *slog.Logger
}

var _ autosync.Notifier = (*Notifier)(nil)

func NewNotifier(io iocli.IO, dataService data.Service, logger *slog.Logger) *Notifier {
	return &Notifier{
		io:          io,
		dataService: dataService,
		logger:      logger,
	}
}

func (n *Notifier) BackupFailed(ctx context.Context, err error) {
	n.io.Printf("⚠️  Backup failed: %v\n", err)
}

func (n *Notifier) Restored(ctx context.Context, docs []models.Document) {
	inserted, err := n.dataService.MergeRestored(ctx, docs)
	if err != nil {
		n.logger.Warn("Failed to merge restored documents", "error", err)
		n.io.Printf("⚠️  Restore incomplete: %d of %d note(s) added: %v\n", inserted, len(docs), err)
		return
	}
	n.io.Printf("✓ Restored %d note(s) from backup\n", inserted)
}

func (n *Notifier) RestoreFailed(ctx context.Context, err error) {
	n.io.Printf("⚠️  Restore failed: %v\n", err)
}
