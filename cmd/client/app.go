package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"google.golang.org/api/option"

	"github.com/iudanet/oneclickcopy/internal/client/auth"
	"github.com/iudanet/oneclickcopy/internal/client/autosync"
	"github.com/iudanet/oneclickcopy/internal/client/cli"
	"github.com/iudanet/oneclickcopy/internal/client/config"
	"github.com/iudanet/oneclickcopy/internal/client/data"
	"github.com/iudanet/oneclickcopy/internal/client/editor"
	"github.com/iudanet/oneclickcopy/internal/client/iocli"
	"github.com/iudanet/oneclickcopy/internal/client/remote"
	"github.com/iudanet/oneclickcopy/internal/client/remote/gdrive"
	"github.com/iudanet/oneclickcopy/internal/client/remote/httpstore"
	"github.com/iudanet/oneclickcopy/internal/client/storage"
	"github.com/iudanet/oneclickcopy/internal/client/storage/boltdb"
	syncsvc "github.com/iudanet/oneclickcopy/internal/client/sync"
	"github.com/iudanet/oneclickcopy/internal/clock"
	"github.com/iudanet/oneclickcopy/internal/logger"
)

// loadConfig читает файл настроек и применяет поверх него флаги
func loadConfig(flags cli.Flags) (*config.Config, error) {
	path := flags.ConfigPath
	if path == "" {
		dir, err := config.DefaultDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, config.FileName)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if flags.DBPath != "" {
		cfg.DBPath = flags.DBPath
	}
	if flags.Backend != "" {
		cfg.Backend = flags.Backend
	}
	if flags.ServerURL != "" {
		cfg.ServerURL = flags.ServerURL
	}
	if flags.LogLevel != "" {
		cfg.Log.Level = flags.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// build wires the client services. Everything opened here is released by
// the returned cleanup, the auto-sync coordinator first.
func build(ctx context.Context, flags cli.Flags) (*cli.Cli, func(), error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, nil, err
	}

	log, logCloser, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	}, os.Stderr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	closers := []io.Closer{logCloser}
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i].Close(); err != nil {
				log.Error("Failed to close resource", "error", err)
			}
		}
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0700); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	store, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	closers = append(closers, store)

	backend, serverURL := activeBackend(ctx, cfg, store, log)
	log.Debug("Client starting", "backend", backend, "db", cfg.DBPath)

	googleAuth := auth.NewGoogleAuthenticator(auth.GoogleConfig{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
	}, store, log)

	apiClient := httpstore.NewClient(serverURL, store, log)
	serverAuth := auth.NewServerAuthenticator(apiClient, store, log)

	session := auth.NewSession(store, map[storage.Provider]auth.Revoker{
		storage.ProviderGoogle: googleAuth,
		storage.ProviderServer: serverAuth,
	}, log)

	var blobs remote.BlobStore
	switch backend {
	case config.BackendGoogleDrive:
		driveStore, err := gdrive.New(ctx, log, option.WithTokenSource(googleAuth.TokenSource(ctx)))
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		blobs = driveStore
	case config.BackendServer:
		blobs = httpstore.NewStore(apiClient)
	}

	clk := clock.New()
	stdio := iocli.NewStdio(os.Stdin, os.Stdout)
	dataService := data.NewService(store, clk, log)
	syncService := syncsvc.NewService(session, blobs, clk, log)

	coordinator, err := autosync.NewCoordinator(ctx,
		autosync.Config{Cooldown: time.Duration(cfg.Sync.Cooldown)},
		syncService, session, store, cli.NewNotifier(stdio, dataService, log), clk, log)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	closers = append(closers, closerFunc(coordinator.Cleanup))

	var google cli.GoogleSignIn = googleAuth
	if cfg.Google.ClientID == "" {
		google = unconfiguredGoogle{}
	}

	app := cli.New(cli.Deps{
		IO:        stdio,
		Session:   session,
		Google:    google,
		Server:    serverAuth,
		Data:      dataService,
		AutoSync:  coordinator,
		Sync:      syncService,
		Documents: store,
		Clock:     clk,
		Clipboard: clipboard.WriteAll,
		Logger:    log,
		Backend:   backend,
		Editor:    editor.Config{Debounce: time.Duration(cfg.Editor.Debounce)},
	})
	return app, cleanup, nil
}

// activeBackend prefers the backend of the stored session over the
// configured one, so a config change does not send tokens to the wrong place.
func activeBackend(ctx context.Context, cfg *config.Config, store storage.AuthStorage, log *slog.Logger) (string, string) {
	authData, err := store.GetAuth(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrAuthNotFound) {
			log.Warn("Failed to read session", "error", err)
		}
		return cfg.Backend, cfg.ServerURL
	}

	switch authData.Provider {
	case storage.ProviderGoogle:
		return config.BackendGoogleDrive, cfg.ServerURL
	case storage.ProviderServer:
		if authData.ServerURL != "" {
			return config.BackendServer, authData.ServerURL
		}
		return config.BackendServer, cfg.ServerURL
	}
	return cfg.Backend, cfg.ServerURL
}

type closerFunc func()

func (f closerFunc) Close() error {
	f()
	return nil
}

type unconfiguredGoogle struct{}

func (unconfiguredGoogle) SignIn(context.Context, func(auth.DeviceCode)) (*auth.Identity, error) {
	return nil, errors.New("google.client_id is not set in the config file")
}
