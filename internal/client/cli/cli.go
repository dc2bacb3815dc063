// Package cli is the terminal front end of the note client.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/iudanet/oneclickcopy/internal/client/auth"
	"github.com/iudanet/oneclickcopy/internal/client/autosync"
	"github.com/iudanet/oneclickcopy/internal/client/config"
	"github.com/iudanet/oneclickcopy/internal/client/data"
	"github.com/iudanet/oneclickcopy/internal/client/editor"
	"github.com/iudanet/oneclickcopy/internal/client/iocli"
	"github.com/iudanet/oneclickcopy/internal/client/storage"
	syncsvc "github.com/iudanet/oneclickcopy/internal/client/sync"
	"github.com/iudanet/oneclickcopy/internal/clock"
	"github.com/iudanet/oneclickcopy/internal/models"
	"github.com/iudanet/oneclickcopy/internal/validation"
)

//go:generate moq -out googlesignin_mock.go . GoogleSignIn
//go:generate moq -out serversignin_mock.go . ServerSignIn
//go:generate moq -out autosync_mock.go . AutoSync

// PasswordEnv переменная окружения с паролем для входа на сервер
const PasswordEnv = "OCC_PASSWORD"

// GoogleSignIn signs in with the Google device flow
type GoogleSignIn interface {
	SignIn(ctx context.Context, prompt func(auth.DeviceCode)) (*auth.Identity, error)
}

// ServerSignIn signs in to the self-hosted backup server
type ServerSignIn interface {
	Register(ctx context.Context, email, password string) error
	SignIn(ctx context.Context, email, password string) (*auth.Identity, error)
}

// AutoSync is the part of the auto-sync coordinator the commands use
type AutoSync interface {
	RequestBackup(docs []models.Document)
	TryAutoRestore()
	Wait()
	State() autosync.Status
	BackupNow(ctx context.Context, docs []models.Document) error
}

// Deps are the services the commands run against
type Deps struct {
	IO        iocli.IO
	Session   auth.Session
	Google    GoogleSignIn
	Server    ServerSignIn
	Data      data.Service
	AutoSync  AutoSync
	Sync      syncsvc.Service
	Documents storage.DocumentStorage
	Clock     clock.Clock
	Clipboard func(text string) error
	Logger    *slog.Logger
	Backend   string
	Editor    editor.Config
}

type Cli struct {
	io          iocli.IO
	session     auth.Session
	google      GoogleSignIn
	server      ServerSignIn
	dataService data.Service
	autoSync    AutoSync
	syncService syncsvc.Service
	documents   storage.DocumentStorage
	clock       clock.Clock
	clipboard   func(text string) error
	logger      *slog.Logger
	backend     string
	editorCfg   editor.Config
}

func New(d Deps) *Cli {
	return &Cli{
		io:          d.IO,
		session:     d.Session,
		google:      d.Google,
		server:      d.Server,
		dataService: d.Data,
		autoSync:    d.AutoSync,
		syncService: d.Sync,
		documents:   d.Documents,
		clock:       d.Clock,
		clipboard:   d.Clipboard,
		logger:      d.Logger,
		backend:     d.Backend,
		editorCfg:   d.Editor,
	}
}

type Passwords struct {
	FromFile string
}

// readServerPassword reads the server password with priority:
// 1. Environment variable OCC_PASSWORD
// 2. File given by --password-file
// 3. Interactive prompt (fallback)
func (c *Cli) readServerPassword(passwords Passwords) (string, error) {
	// Priority 1: Environment variable
	if envPassword := os.Getenv(PasswordEnv); envPassword != "" {
		return envPassword, nil
	}

	// Priority 2: File
	if passwords.FromFile != "" {
		content, err := os.ReadFile(passwords.FromFile)
		if err != nil {
			return "", fmt.Errorf("failed to read password file: %w", err)
		}
		// Убираем trailing newline/whitespace
		password := strings.TrimSpace(string(content))
		if password == "" {
			return "", errors.New("password file is empty")
		}
		return password, nil
	}

	// Priority 3: Interactive prompt
	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	if password == "" {
		return "", errors.New("password cannot be empty")
	}
	return password, nil
}

// readEmail запрашивает email и проверяет формат
func (c *Cli) readEmail() (string, error) {
	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return "", fmt.Errorf("failed to read email: %w", err)
	}
	if err := validation.ValidateEmail(email); err != nil {
		return "", err
	}
	return validation.NormalizeEmail(email), nil
}

// readSnippets reads snippet lines until a line with a single "." or EOF
func (c *Cli) readSnippets() (string, error) {
	c.io.Println("Enter snippets, one per line. Finish with a single '.' line.")

	var lines []string
	for {
		line, err := c.io.ReadLine("> ")
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to read snippet: %w", err)
		}
		if line == "." {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

// openEditor opens an editing session; save failures are printed as one line
func (c *Cli) openEditor(ctx context.Context, id int64) (*editor.Session, error) {
	cfg := c.editorCfg
	cfg.OnSaveError = func(err error) {
		c.io.Printf("Failed to save note: %v\n", err)
	}
	return editor.Open(ctx, c.documents, id, c.clock, c.logger, cfg)
}

// requestBackup asks the coordinator to back up the current document set
// and waits for the backup to finish when it runs right away. An empty set
// is never sent.
func (c *Cli) requestBackup(ctx context.Context) {
	docs, err := c.dataService.List(ctx)
	if err != nil {
		c.logger.Warn("Failed to list documents for backup", "error", err)
		return
	}
	if len(docs) == 0 {
		return
	}
	c.autoSync.RequestBackup(docs)
	c.autoSync.Wait()
}

// restoreOnce runs the one-shot restore after sign-in and waits for it
func (c *Cli) restoreOnce() {
	c.autoSync.TryAutoRestore()
	c.autoSync.Wait()
}

func (c *Cli) requireBackend() error {
	switch c.backend {
	case config.BackendGoogleDrive, config.BackendServer:
		return nil
	default:
		return fmt.Errorf("unknown backend %q", c.backend)
	}
}

func passwordFromEnv() bool {
	return os.Getenv(PasswordEnv) != ""
}
