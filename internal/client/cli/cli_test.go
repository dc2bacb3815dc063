package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/oneclickcopy/internal/client/auth"
	"github.com/iudanet/oneclickcopy/internal/client/autosync"
	"github.com/iudanet/oneclickcopy/internal/client/config"
	"github.com/iudanet/oneclickcopy/internal/client/data"
	"github.com/iudanet/oneclickcopy/internal/client/iocli"
	"github.com/iudanet/oneclickcopy/internal/client/storage"
	"github.com/iudanet/oneclickcopy/internal/client/storage/boltdb"
	syncsvc "github.com/iudanet/oneclickcopy/internal/client/sync"
	"github.com/iudanet/oneclickcopy/internal/clock"
	"github.com/iudanet/oneclickcopy/internal/models"
)

var t0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// testEnv собирает Cli поверх настоящего bbolt и моков остальных сервисов
type testEnv struct {
	t        *testing.T
	out      *bytes.Buffer
	io       *iocli.IOMock
	session  *auth.SessionMock
	google   *GoogleSignInMock
	server   *ServerSignInMock
	autoSync *AutoSyncMock
	syncer   *syncsvc.ServiceMock
	store    *boltdb.Storage
	data     data.Service
	clock    *clock.Fake
	cli      *Cli

	mu        sync.Mutex
	input     []string
	copied    []string
	signedIn  bool
	status    autosync.Status
	requested [][]models.Document
}

func newTestEnv(t *testing.T, backend string) *testEnv {
	t.Helper()

	env := &testEnv{
		t:     t,
		out:   &bytes.Buffer{},
		clock: clock.NewFake(t0),
	}

	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "cli_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, store.Close()) })
	env.store = store

	logger := testLogger()
	env.data = data.NewService(store, env.clock, logger)

	env.io = &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			env.mu.Lock()
			defer env.mu.Unlock()
			fmt.Fprintln(env.out, a...)
		},
		PrintfFunc: func(format string, a ...any) {
			env.mu.Lock()
			defer env.mu.Unlock()
			fmt.Fprintf(env.out, format, a...)
		},
		WriteFunc: func(p []byte) (int, error) {
			env.mu.Lock()
			defer env.mu.Unlock()
			return env.out.Write(p)
		},
		ReadInputFunc:    func(prompt string) (string, error) { return env.next() },
		ReadLineFunc:     func(prompt string) (string, error) { return env.next() },
		ReadPasswordFunc: func(prompt string) (string, error) { return env.next() },
	}

	env.session = &auth.SessionMock{
		IsSignedInFunc: func(ctx context.Context) bool {
			env.mu.Lock()
			defer env.mu.Unlock()
			return env.signedIn
		},
		CurrentIdentityFunc: func(ctx context.Context) (*auth.Identity, error) {
			return &auth.Identity{Email: "user@example.com", Provider: storage.ProviderServer}, nil
		},
		SignOutFunc: func(ctx context.Context) error { return nil },
	}
	env.google = &GoogleSignInMock{}
	env.server = &ServerSignInMock{}
	env.syncer = &syncsvc.ServiceMock{}

	env.autoSync = &AutoSyncMock{
		RequestBackupFunc: func(docs []models.Document) {
			env.mu.Lock()
			defer env.mu.Unlock()
			env.requested = append(env.requested, docs)
		},
		TryAutoRestoreFunc: func() {},
		WaitFunc:           func() {},
		StateFunc: func() autosync.Status {
			env.mu.Lock()
			defer env.mu.Unlock()
			return env.status
		},
		BackupNowFunc: func(ctx context.Context, docs []models.Document) error { return nil },
	}

	env.cli = New(Deps{
		IO:        env.io,
		Session:   env.session,
		Google:    env.google,
		Server:    env.server,
		Data:      env.data,
		AutoSync:  env.autoSync,
		Sync:      env.syncer,
		Documents: store,
		Clock:     env.clock,
		Clipboard: func(text string) error {
			env.mu.Lock()
			defer env.mu.Unlock()
			env.copied = append(env.copied, text)
			return nil
		},
		Logger:  logger,
		Backend: backend,
	})

	return env
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// run выполняет команду так же, как main: через корневую команду cobra
func (e *testEnv) run(args ...string) error {
	e.t.Helper()
	root := NewRoot(func(ctx context.Context, flags Flags) (*Cli, func(), error) {
		return e.cli, func() {}, nil
	})
	root.Command().SetOut(e.io)
	root.Command().SetErr(e.io)
	return root.Execute(context.Background(), args)
}

func (e *testEnv) feed(lines ...string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.input = append(e.input, lines...)
}

func (e *testEnv) next() (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.input) == 0 {
		return "", io.EOF
	}
	line := e.input[0]
	e.input = e.input[1:]
	return line, nil
}

func (e *testEnv) output() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.out.String()
}

func (e *testEnv) setSignedIn(v bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.signedIn = v
}

func (e *testEnv) backupRequests() [][]models.Document {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.requested
}

func (e *testEnv) seed(title, content string) *models.Document {
	e.t.Helper()
	doc, err := e.data.Create(context.Background(), title, content)
	require.NoError(e.t, err)
	return doc
}

func TestNewRoot_HasSubcommands(t *testing.T) {
	root := NewRoot(nil)

	names := make([]string, 0)
	for _, cmd := range root.Command().Commands() {
		names = append(names, cmd.Name())
	}

	for _, want := range []string{"login", "logout", "status", "new", "list", "show", "edit", "copy", "delete", "backup", "restore", "shell"} {
		assert.Contains(t, names, want)
	}
}

func TestRoot_PersistentFlagsReachBuilder(t *testing.T) {
	var got Flags
	root := NewRoot(func(ctx context.Context, flags Flags) (*Cli, func(), error) {
		got = flags
		return nil, nil, fmt.Errorf("stop")
	})

	err := root.Execute(context.Background(), []string{
		"--config", "/tmp/c.toml", "--db", "/tmp/n.db", "--backend", "server",
		"--server", "http://backup.local", "--log-level", "debug", "status",
	})
	require.EqualError(t, err, "stop")
	assert.Equal(t, Flags{
		ConfigPath: "/tmp/c.toml",
		DBPath:     "/tmp/n.db",
		Backend:    "server",
		ServerURL:  "http://backup.local",
		LogLevel:   "debug",
	}, got)
}

func TestRoot_CleanupCalledAfterFailedCommand(t *testing.T) {
	env := newTestEnv(t, config.BackendServer)

	cleaned := 0
	root := NewRoot(func(ctx context.Context, flags Flags) (*Cli, func(), error) {
		return env.cli, func() { cleaned++ }, nil
	})
	err := root.Execute(context.Background(), []string{"show", "999"})
	assert.Error(t, err)
	assert.Equal(t, 1, cleaned)
}

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"", "abc", "0", "-1"} {
		_, err := parseID(bad)
		assert.Error(t, err, bad)
	}
}

func TestReadServerPassword(t *testing.T) {
	t.Run("from env", func(t *testing.T) {
		env := newTestEnv(t, config.BackendServer)
		t.Setenv(PasswordEnv, "env-password-123")

		password, err := env.cli.readServerPassword(Passwords{FromFile: "/does/not/matter"})
		require.NoError(t, err)
		assert.Equal(t, "env-password-123", password)
	})

	t.Run("from file", func(t *testing.T) {
		env := newTestEnv(t, config.BackendServer)
		t.Setenv(PasswordEnv, "")

		path := filepath.Join(t.TempDir(), "password.txt")
		require.NoError(t, os.WriteFile(path, []byte("file-password-456\n"), 0o600))

		password, err := env.cli.readServerPassword(Passwords{FromFile: path})
		require.NoError(t, err)
		assert.Equal(t, "file-password-456", password)
	})

	t.Run("empty file", func(t *testing.T) {
		env := newTestEnv(t, config.BackendServer)
		t.Setenv(PasswordEnv, "")

		path := filepath.Join(t.TempDir(), "password.txt")
		require.NoError(t, os.WriteFile(path, []byte("  \n"), 0o600))

		_, err := env.cli.readServerPassword(Passwords{FromFile: path})
		assert.EqualError(t, err, "password file is empty")
	})

	t.Run("missing file", func(t *testing.T) {
		env := newTestEnv(t, config.BackendServer)
		t.Setenv(PasswordEnv, "")

		_, err := env.cli.readServerPassword(Passwords{FromFile: filepath.Join(t.TempDir(), "nope")})
		assert.ErrorContains(t, err, "failed to read password file")
	})

	t.Run("prompt", func(t *testing.T) {
		env := newTestEnv(t, config.BackendServer)
		t.Setenv(PasswordEnv, "")
		env.feed("prompt-password-789")

		password, err := env.cli.readServerPassword(Passwords{})
		require.NoError(t, err)
		assert.Equal(t, "prompt-password-789", password)
	})

	t.Run("empty prompt", func(t *testing.T) {
		env := newTestEnv(t, config.BackendServer)
		t.Setenv(PasswordEnv, "")
		env.feed("")

		_, err := env.cli.readServerPassword(Passwords{})
		assert.EqualError(t, err, "password cannot be empty")
	})
}

func TestReadSnippets(t *testing.T) {
	env := newTestEnv(t, config.BackendServer)
	env.feed("  first", "", "second", ".", "ignored")

	content, err := env.cli.readSnippets()
	require.NoError(t, err)
	assert.Equal(t, "  first\n\nsecond", content)

	// EOF завершает ввод так же, как "."
	env2 := newTestEnv(t, config.BackendServer)
	env2.feed("only")
	content, err = env2.cli.readSnippets()
	require.NoError(t, err)
	assert.Equal(t, "only", content)
}
