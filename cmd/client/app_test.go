package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/oneclickcopy/internal/client/cli"
	"github.com/iudanet/oneclickcopy/internal/client/config"
	"github.com/iudanet/oneclickcopy/internal/client/storage"
	"github.com/iudanet/oneclickcopy/internal/logger"
)

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.FileName)

	cfg := config.Default(dir)
	cfg.Backend = config.BackendServer
	cfg.ServerURL = "http://from-file:8080"
	cfg.Sync.Cooldown = config.Duration(2 * time.Minute)
	require.NoError(t, config.Save(path, cfg))

	got, err := loadConfig(cli.Flags{
		ConfigPath: path,
		ServerURL:  "http://from-flag:9090",
		LogLevel:   "debug",
	})
	require.NoError(t, err)
	assert.Equal(t, config.BackendServer, got.Backend)
	assert.Equal(t, "http://from-flag:9090", got.ServerURL)
	assert.Equal(t, "debug", got.Log.Level)
	assert.Equal(t, config.Duration(2*time.Minute), got.Sync.Cooldown)
	assert.Equal(t, filepath.Join(dir, "oneclickcopy.db"), got.DBPath)
}

func TestLoadConfig_InvalidBackendFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)

	_, err := loadConfig(cli.Flags{ConfigPath: path, Backend: "dropbox"})
	assert.ErrorContains(t, err, "invalid configuration")
}

func TestBuild_OpensAndReleasesServices(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.FileName)
	cfg := config.Default(dir)
	cfg.Backend = config.BackendServer
	require.NoError(t, config.Save(path, cfg))

	app, cleanup, err := build(context.Background(), cli.Flags{ConfigPath: path})
	require.NoError(t, err)
	require.NotNil(t, app)
	cleanup()

	_, err = os.Stat(cfg.DBPath)
	assert.NoError(t, err)

	// После cleanup база закрыта и открывается повторно
	app, cleanup, err = build(context.Background(), cli.Flags{ConfigPath: path})
	require.NoError(t, err)
	require.NotNil(t, app)
	cleanup()
}

type authStub struct {
	data *storage.AuthData
	err  error
}

func (s authStub) SaveAuth(context.Context, *storage.AuthData) error { return nil }
func (s authStub) DeleteAuth(context.Context) error                  { return nil }
func (s authStub) GetAuth(context.Context) (*storage.AuthData, error) {
	return s.data, s.err
}

func TestActiveBackend(t *testing.T) {
	cfg := config.Default(t.TempDir())
	cfg.Backend = config.BackendGoogleDrive
	cfg.ServerURL = "http://configured"
	log := logger.Discard()
	ctx := context.Background()

	backend, url := activeBackend(ctx, cfg, authStub{err: storage.ErrAuthNotFound}, log)
	assert.Equal(t, config.BackendGoogleDrive, backend)
	assert.Equal(t, "http://configured", url)

	backend, url = activeBackend(ctx, cfg, authStub{data: &storage.AuthData{
		Provider:  storage.ProviderServer,
		ServerURL: "http://signed-in",
	}}, log)
	assert.Equal(t, config.BackendServer, backend)
	assert.Equal(t, "http://signed-in", url)

	cfg.Backend = config.BackendServer
	backend, _ = activeBackend(ctx, cfg, authStub{data: &storage.AuthData{Provider: storage.ProviderGoogle}}, log)
	assert.Equal(t, config.BackendGoogleDrive, backend)
}
