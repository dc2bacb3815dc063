package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/oneclickcopy/internal/client/auth"
	"github.com/iudanet/oneclickcopy/internal/client/config"
	"github.com/iudanet/oneclickcopy/internal/validation"
)

func (c *Cli) runLogin(ctx context.Context, register bool, passwords Passwords) error {
	if err := c.requireBackend(); err != nil {
		return err
	}
	if c.session.IsSignedIn(ctx) {
		return errAlreadySignedIn
	}

	c.io.Println("=== Login ===")
	c.io.Println()

	var (
		identity *auth.Identity
		err      error
	)
	switch c.backend {
	case config.BackendGoogleDrive:
		if register {
			return fmt.Errorf("--register is only supported by the %q backend", config.BackendServer)
		}
		identity, err = c.loginGoogle(ctx)
	case config.BackendServer:
		identity, err = c.loginServer(ctx, register, passwords)
	}
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Printf("✓ Signed in as %s\n", identity.Email)

	// Первый вход на устройстве: восстанавливаем бэкап один раз
	c.restoreOnce()
	return nil
}

func (c *Cli) loginGoogle(ctx context.Context) (*auth.Identity, error) {
	identity, err := c.google.SignIn(ctx, func(code auth.DeviceCode) {
		c.io.Printf("Open %s and enter the code: %s\n", code.VerificationURL, code.UserCode)
		if !code.ExpiresAt.IsZero() {
			c.io.Printf("The code expires at %s\n", code.ExpiresAt.Local().Format(time.Kitchen))
		}
		c.io.Println("Waiting for approval...")
	})
	if err != nil {
		return nil, fmt.Errorf("google sign-in failed: %w", err)
	}
	return identity, nil
}

func (c *Cli) loginServer(ctx context.Context, register bool, passwords Passwords) (*auth.Identity, error) {
	email, err := c.readEmail()
	if err != nil {
		return nil, err
	}

	password, err := c.readServerPassword(passwords)
	if err != nil {
		return nil, err
	}

	if register {
		if err := validation.ValidatePassword(password); err != nil {
			return nil, fmt.Errorf("invalid password: %w", err)
		}
		// Подтверждение спрашиваем только при интерактивном вводе
		if passwords.FromFile == "" && !passwordFromEnv() {
			confirm, err := c.io.ReadPassword("Confirm password: ")
			if err != nil {
				return nil, fmt.Errorf("failed to read password: %w", err)
			}
			if confirm != password {
				return nil, fmt.Errorf("passwords do not match")
			}
		}

		c.io.Println("Registering...")
		if err := c.server.Register(ctx, email, password); err != nil {
			return nil, fmt.Errorf("registration failed: %w", err)
		}
		c.io.Println("✓ Registration successful")
	}

	c.io.Println("Authenticating...")
	identity, err := c.server.SignIn(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("sign-in failed: %w", err)
	}
	return identity, nil
}
