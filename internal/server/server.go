// Package server собирает HTTP API сервера резервных копий.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/iudanet/oneclickcopy/internal/clock"
	"github.com/iudanet/oneclickcopy/internal/server/handlers"
	"github.com/iudanet/oneclickcopy/internal/server/middleware"
	"github.com/iudanet/oneclickcopy/internal/server/storage"
)

const healthPath = "/api/v1/health"

// Config зависимости и параметры роутера
type Config struct {
	Logger      *slog.Logger
	Users       storage.UserStorage
	Tokens      storage.TokenStorage
	Blobs       storage.BlobStorage
	DB          handlers.Pinger
	Clock       clock.Clock
	JWT         handlers.JWTConfig
	MaxBlobSize int64

	// AuthRequests запросов к /auth за AuthWindow с одного IP
	AuthRequests int
	AuthWindow   time.Duration

	// TrustProxy включает X-Forwarded-For / X-Real-IP
	TrustProxy bool
}

// Server HTTP обработчик API с фоновыми ресурсами (rate limiter)
type Server struct {
	handler     http.Handler
	authLimiter *middleware.RateLimiter
}

// New строит роутер chi со всеми маршрутами API
func New(cfg Config) *Server {
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	if cfg.AuthRequests <= 0 {
		cfg.AuthRequests = 10
	}
	if cfg.AuthWindow <= 0 {
		cfg.AuthWindow = time.Minute
	}

	authHandler := handlers.NewAuthHandler(cfg.Logger, cfg.Users, cfg.Tokens, cfg.JWT, cfg.Clock)
	filesHandler := handlers.NewFilesHandler(cfg.Logger, cfg.Blobs, cfg.Clock, cfg.MaxBlobSize)
	healthHandler := handlers.NewHealthHandler(cfg.Logger, cfg.DB)

	authLimiter := middleware.NewRateLimiter(cfg.AuthRequests, cfg.AuthWindow, cfg.Logger)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	if cfg.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.RecoveryMiddleware(cfg.Logger))
	r.Use(middleware.LoggingWithSkip(cfg.Logger, []string{healthPath}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.Health)

		r.Route("/auth", func(r chi.Router) {
			r.Use(authLimiter.Middleware())
			r.Post("/register", authHandler.Register)
			r.Get("/salt/{email}", authHandler.GetSalt)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
			r.Post("/logout", authHandler.Logout)
		})

		r.Route("/files", func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(cfg.Logger, cfg.JWT))
			r.Get("/", filesHandler.Find)
			r.Post("/", filesHandler.Create)
			r.Put("/{id}/content", filesHandler.PutContent)
			r.Get("/{id}/content", filesHandler.GetContent)
			r.Delete("/{id}", filesHandler.Delete)
		})
	})

	return &Server{handler: r, authLimiter: authLimiter}
}

// ServeHTTP реализует http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Stop останавливает фоновую очистку rate limiter
func (s *Server) Stop() {
	s.authLimiter.Stop()
}
