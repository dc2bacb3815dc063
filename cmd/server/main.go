package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iudanet/oneclickcopy/internal/logger"
	"github.com/iudanet/oneclickcopy/internal/server"
	"github.com/iudanet/oneclickcopy/internal/server/handlers"
	"github.com/iudanet/oneclickcopy/internal/server/storage"
	"github.com/iudanet/oneclickcopy/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const jwtSecretEnv = "OCC_JWT_SECRET"

type options struct {
	addr         string
	dbPath       string
	logLevel     string
	logFormat    string
	logFile      string
	jwtSecret    string
	accessTTL    time.Duration
	refreshTTL   time.Duration
	maxBlobSize  int64
	authRequests int
	trustProxy   bool
	showVersion  bool
}

func parseFlags(args []string) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("oneclickcopy-server", flag.ContinueOnError)
	fs.StringVar(&opts.addr, "addr", ":8080", "HTTP listen address")
	fs.StringVar(&opts.dbPath, "db", "oneclickcopy-server.db", "SQLite database path")
	fs.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	fs.StringVar(&opts.logFormat, "log-format", "json", "Log format (text, json)")
	fs.StringVar(&opts.logFile, "log-file", "", "Log file (stderr if empty)")
	fs.DurationVar(&opts.accessTTL, "access-ttl", 15*time.Minute, "Access token lifetime")
	fs.DurationVar(&opts.refreshTTL, "refresh-ttl", 30*24*time.Hour, "Refresh token lifetime")
	fs.Int64Var(&opts.maxBlobSize, "max-blob-size", handlers.DefaultMaxBlobSize, "Maximum stored file size in bytes")
	fs.IntVar(&opts.authRequests, "auth-rate", 10, "Auth requests per minute per IP")
	fs.BoolVar(&opts.trustProxy, "trust-proxy", false, "Use X-Forwarded-For / X-Real-IP for client address")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if opts.showVersion {
		return opts, nil
	}

	opts.jwtSecret = os.Getenv(jwtSecretEnv)
	if len(opts.jwtSecret) < 32 {
		return nil, fmt.Errorf("%s must be set to at least 32 characters", jwtSecretEnv)
	}
	return opts, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Show version and exit if requested
	if opts.showVersion {
		printVersion()
		os.Exit(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, opts *options) error {
	log, logCloser, err := logger.New(logger.Config{
		Level:  opts.logLevel,
		Format: opts.logFormat,
		File:   opts.logFile,
	}, os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer logCloser.Close()

	db, err := sqlite.New(ctx, opts.dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", "error", err)
		}
	}()

	api := server.New(server.Config{
		Logger: log,
		Users:  db,
		Tokens: db,
		Blobs:  db,
		DB:     db,
		JWT: handlers.JWTConfig{
			Secret:          []byte(opts.jwtSecret),
			AccessTokenTTL:  opts.accessTTL,
			RefreshTokenTTL: opts.refreshTTL,
		},
		MaxBlobSize:  opts.maxBlobSize,
		AuthRequests: opts.authRequests,
		AuthWindow:   time.Minute,
		TrustProxy:   opts.trustProxy,
	})
	defer api.Stop()

	go purgeExpiredTokens(ctx, db, time.Hour, log)

	httpServer := &http.Server{
		Addr:              opts.addr,
		Handler:           api,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       time.Minute,
		WriteTimeout:      time.Minute,
		IdleTimeout:       2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server starting", "addr", opts.addr, "version", Version, "db", opts.dbPath)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	return nil
}

// purgeExpiredTokens периодически удаляет истекшие refresh токены
func purgeExpiredTokens(ctx context.Context, tokens storage.TokenStorage, every time.Duration, log *slog.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			n, err := tokens.DeleteExpiredTokens(ctx, now)
			if err != nil {
				log.Error("Failed to purge expired tokens", "error", err)
				continue
			}
			if n > 0 {
				log.Info("Purged expired tokens", "count", n)
			}
		}
	}
}

func printVersion() {
	fmt.Printf("OneClickCopy Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
