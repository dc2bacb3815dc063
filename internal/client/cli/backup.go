package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	syncsvc "github.com/iudanet/oneclickcopy/internal/client/sync"
)

func (c *Cli) runBackup(ctx context.Context, now bool) error {
	if !c.session.IsSignedIn(ctx) {
		return errors.New("not signed in. Please run 'oneclickcopy login' first")
	}

	docs, err := c.dataService.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list notes: %w", err)
	}
	if len(docs) == 0 {
		// Пустой набор перезаписал бы единственную удаленную копию
		c.io.Println("No notes to back up.")
		return nil
	}

	if now {
		c.io.Printf("Backing up %d note(s)...\n", len(docs))
		if err := c.autoSync.BackupNow(ctx, docs); err != nil {
			return describeSyncError("backup", err)
		}
		c.io.Println("✓ Backup completed")
		return nil
	}

	before := c.autoSync.State().LastBackupAt
	c.autoSync.RequestBackup(docs)
	c.autoSync.Wait()

	st := c.autoSync.State()
	if st.BackupPending {
		c.io.Printf("A backup ran recently. The next one is due at %s.\n",
			st.PendingDueAt.Local().Format(time.TimeOnly))
		c.io.Println("Use 'oneclickcopy backup --now' to back up immediately.")
		return nil
	}
	if st.LastBackupAt.After(before) {
		c.io.Printf("✓ Backed up %d note(s)\n", len(docs))
	}
	// неудача уже показана уведомлением
	return nil
}

func (c *Cli) runRestore(ctx context.Context) error {
	if !c.session.IsSignedIn(ctx) {
		return errors.New("not signed in. Please run 'oneclickcopy login' first")
	}

	c.io.Println("Downloading backup...")
	docs, err := c.syncService.Restore(ctx)
	if err != nil {
		if errors.Is(err, syncsvc.ErrNoBackupFound) {
			c.io.Println("No backup found.")
			return nil
		}
		return describeSyncError("restore", err)
	}

	inserted, err := c.dataService.MergeRestored(ctx, docs)
	if err != nil {
		return fmt.Errorf("restore partially failed: %w", err)
	}
	c.io.Printf("✓ Restored %d note(s)\n", inserted)

	if inserted > 0 {
		c.requestBackup(ctx)
	}
	return nil
}

// describeSyncError превращает ошибку синхронизации в сообщение для пользователя
func describeSyncError(op string, err error) error {
	switch syncsvc.KindOf(err) {
	case syncsvc.KindNotSignedIn:
		return fmt.Errorf("%s failed: not signed in", op)
	case syncsvc.KindMalformedBackup:
		return fmt.Errorf("%s failed: the remote backup is damaged: %w", op, err)
	case syncsvc.KindTransport:
		return fmt.Errorf("%s failed: could not reach the backup storage: %w", op, err)
	default:
		return fmt.Errorf("%s failed: %w", op, err)
	}
}
