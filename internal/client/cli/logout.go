package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/oneclickcopy/internal/client/auth"
)

func (c *Cli) runLogout(ctx context.Context) error {
	c.io.Println("=== Logout ===")

	if err := c.session.SignOut(ctx); err != nil {
		if errors.Is(err, auth.ErrNotSignedIn) {
			c.io.Println("Not signed in.")
			return nil
		}
		return fmt.Errorf("logout failed: %w", err)
	}

	c.io.Println("✓ Logout successful!")
	c.io.Println("Your local notes are kept on this device.")

	return nil
}
