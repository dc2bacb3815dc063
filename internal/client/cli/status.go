package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()

	c.io.Printf("Backend: %s\n", c.backend)

	if !c.session.IsSignedIn(ctx) {
		c.io.Println("Status: Not signed in")
		c.io.Println()
		c.io.Println("Run 'oneclickcopy login' to enable backups.")
	} else {
		identity, err := c.session.CurrentIdentity(ctx)
		if err != nil {
			return fmt.Errorf("failed to read session: %w", err)
		}
		c.io.Println("Status: Signed in")
		c.io.Printf("Account: %s (%s)\n", identity.Email, identity.Provider)
	}

	docs, err := c.dataService.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list notes: %w", err)
	}
	c.io.Printf("Notes: %d\n", len(docs))

	st := c.autoSync.State()
	c.io.Println()
	if st.LastBackupAt.IsZero() {
		c.io.Println("Last backup: never")
	} else {
		c.io.Printf("Last backup: %s\n", st.LastBackupAt.Local().Format(time.RFC3339))
	}
	if st.BackupPending {
		c.io.Printf("Pending backup due: %s\n", st.PendingDueAt.Local().Format(time.RFC3339))
	}
	if st.HasRestoredOnce {
		c.io.Println("Restore on this device: done")
	} else {
		c.io.Println("Restore on this device: not yet")
	}

	return nil
}
