package auth

import (
	"context"
	"log/slog"
	"os"
	"sync"

	"github.com/iudanet/oneclickcopy/internal/client/storage"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// memAuthStorage хранит сессию в памяти поверх AuthStorageMock
func memAuthStorage(initial *storage.AuthData) *storage.AuthStorageMock {
	var mu sync.Mutex
	current := initial
	return &storage.AuthStorageMock{
		GetAuthFunc: func(ctx context.Context) (*storage.AuthData, error) {
			mu.Lock()
			defer mu.Unlock()
			if current == nil {
				return nil, storage.ErrAuthNotFound
			}
			c := *current
			return &c, nil
		},
		SaveAuthFunc: func(ctx context.Context, auth *storage.AuthData) error {
			mu.Lock()
			defer mu.Unlock()
			c := *auth
			current = &c
			return nil
		},
		DeleteAuthFunc: func(ctx context.Context) error {
			mu.Lock()
			defer mu.Unlock()
			if current == nil {
				return storage.ErrAuthNotFound
			}
			current = nil
			return nil
		},
	}
}
