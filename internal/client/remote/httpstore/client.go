// Package httpstore talks to the self-hosted backup server: account
// endpoints and a remote.BlobStore over the files API.
package httpstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/iudanet/oneclickcopy/internal/client/remote"
	"github.com/iudanet/oneclickcopy/internal/client/storage"
	"github.com/iudanet/oneclickcopy/pkg/api"
)

const contentTypeJSON = "application/json"

// ErrNoSession indicates a files request without a stored server session
var ErrNoSession = errors.New("no server session")

// StatusError описывает неуспешный ответ сервера
type StatusError struct {
	Message    string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// Unwrap сопоставляет коды ответа с ошибками remote
func (e *StatusError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return remote.ErrObjectNotFound
	case http.StatusUnauthorized:
		return remote.ErrUnauthorized
	case http.StatusTooManyRequests:
		return remote.ErrRateLimited
	}
	return nil
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	auth       storage.AuthStorage
	logger     *slog.Logger
	baseURL    string

	// refreshMu не дает двум запросам одновременно обновлять токены
	refreshMu sync.Mutex
}

// NewClient создает новый API клиент. authStore нужен только для files API.
func NewClient(baseURL string, authStore storage.AuthStorage, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		auth:    authStore,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// BaseURL returns the server address the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/register", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// GetSalt получает public_salt пользователя
func (c *Client) GetSalt(ctx context.Context, email string) (*api.SaltResponse, error) {
	var resp api.SaltResponse
	path := "/api/v1/auth/salt/" + url.PathEscape(email)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get salt request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Refresh обменивает refresh token на новую пару токенов
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*api.TokenResponse, error) {
	body, err := c.send(ctx, http.MethodPost, "/api/v1/auth/refresh", nil, "", refreshToken)
	if err != nil {
		return nil, fmt.Errorf("refresh request failed: %w", err)
	}
	var resp api.TokenResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &resp, nil
}

// Logout отзывает токены пользователя на сервере
func (c *Client) Logout(ctx context.Context, accessToken string) error {
	if _, err := c.send(ctx, http.MethodPost, "/api/v1/auth/logout", nil, "", accessToken); err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return nil
}

// Health проверяет доступность сервера
func (c *Client) Health(ctx context.Context) (*api.HealthResponse, error) {
	var resp api.HealthResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/health", nil, &resp); err != nil {
		return nil, fmt.Errorf("health request failed: %w", err)
	}
	return &resp, nil
}

// doRequest выполняет JSON запрос без авторизации
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
	var payload []byte
	contentType := ""
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		payload = jsonData
		contentType = contentTypeJSON
	}

	respBody, err := c.send(ctx, method, path, payload, contentType, "")
	if err != nil {
		return err
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// authorized выполняет запрос с access token и один раз обновляет токены при 401.
// Заведомо истекший access token обновляется до запроса.
func (c *Client) authorized(ctx context.Context, method, path string, payload []byte, contentType string) ([]byte, error) {
	session, err := c.session(ctx)
	if err != nil {
		return nil, err
	}
	if session.AccessExpired(time.Now()) && session.RefreshToken != "" {
		if session, err = c.refresh(ctx, session.AccessToken); err != nil {
			return nil, err
		}
	}

	body, err := c.send(ctx, method, path, payload, contentType, session.AccessToken)
	if !errors.Is(err, remote.ErrUnauthorized) {
		return body, err
	}

	session, err = c.refresh(ctx, session.AccessToken)
	if err != nil {
		return nil, err
	}
	return c.send(ctx, method, path, payload, contentType, session.AccessToken)
}

func (c *Client) session(ctx context.Context) (*storage.AuthData, error) {
	authData, err := c.auth.GetAuth(ctx)
	if errors.Is(err, storage.ErrAuthNotFound) {
		return nil, fmt.Errorf("%w: %w", remote.ErrUnauthorized, ErrNoSession)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if authData.Provider != storage.ProviderServer {
		return nil, fmt.Errorf("%w: %w", remote.ErrUnauthorized, ErrNoSession)
	}
	return authData, nil
}

// refresh обновляет токены, если stale все еще сохраненный access token
func (c *Client) refresh(ctx context.Context, stale string) (*storage.AuthData, error) {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	session, err := c.session(ctx)
	if err != nil {
		return nil, err
	}
	// Другой запрос уже обновил токены
	if session.AccessToken != stale {
		return session, nil
	}

	tokens, err := c.Refresh(ctx, session.RefreshToken)
	if err != nil {
		return nil, err
	}

	session.AccessToken = tokens.AccessToken
	session.RefreshToken = tokens.RefreshToken
	session.TokenType = tokens.Type()
	session.SetExpiry(tokens.ExpiresAt(time.Now()))
	if err := c.auth.SaveAuth(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save refreshed session: %w", err)
	}

	c.logger.Debug("Server tokens refreshed")
	return session, nil
}

// send выполняет HTTP запрос и возвращает тело успешного ответа
func (c *Client) send(ctx context.Context, method, path string, payload []byte, contentType, token string) ([]byte, error) {
	var bodyReader io.Reader = http.NoBody
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &StatusError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(respBody))}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			statusErr.Message = errResp.Error
			if errResp.Message != "" {
				statusErr.Message += ": " + errResp.Message
			}
		}
		return nil, statusErr
	}

	return respBody, nil
}
