package auth

import (
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

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/iudanet/oneclickcopy/internal/client/remote/gdrive"
	"github.com/iudanet/oneclickcopy/internal/client/storage"
)

const (
	defaultUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
	defaultRevokeURL   = "https://oauth2.googleapis.com/revoke"
	userInfoEmailScope = "https://www.googleapis.com/auth/userinfo.email"
)

// GoogleConfig configures Google sign-in. Empty URLs fall back to Google's endpoints.
type GoogleConfig struct {
	HTTPClient   *http.Client
	Endpoint     oauth2.Endpoint
	ClientID     string
	ClientSecret string
	UserInfoURL  string
	RevokeURL    string
}

// DeviceCode is what the user needs to approve the sign-in on another device
type DeviceCode struct {
	ExpiresAt       time.Time
	UserCode        string
	VerificationURL string
}

// GoogleAuthenticator signs in with the OAuth2 device flow and keeps the
// Drive access token fresh.
type GoogleAuthenticator struct {
	oauth       *oauth2.Config
	httpClient  *http.Client
	store       storage.AuthStorage
	logger      *slog.Logger
	userInfoURL string
	revokeURL   string
}

var _ Revoker = (*GoogleAuthenticator)(nil)

// NewGoogleAuthenticator создает аутентификатор Google
func NewGoogleAuthenticator(cfg GoogleConfig, store storage.AuthStorage, logger *slog.Logger) *GoogleAuthenticator {
	endpoint := cfg.Endpoint
	if endpoint.TokenURL == "" {
		endpoint = google.Endpoint
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	g := &GoogleAuthenticator{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     endpoint,
			Scopes:       []string{gdrive.Scope, userInfoEmailScope},
		},
		httpClient:  httpClient,
		store:       store,
		logger:      logger,
		userInfoURL: cfg.UserInfoURL,
		revokeURL:   cfg.RevokeURL,
	}
	if g.userInfoURL == "" {
		g.userInfoURL = defaultUserInfoURL
	}
	if g.revokeURL == "" {
		g.revokeURL = defaultRevokeURL
	}
	return g
}

// SignIn runs the device flow. prompt is called once with the code to show;
// SignIn then blocks until the user approves, denies, or the code expires.
func (g *GoogleAuthenticator) SignIn(ctx context.Context, prompt func(DeviceCode)) (*Identity, error) {
	if g.oauth.ClientID == "" {
		return nil, fmt.Errorf("google client id is not configured")
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, g.httpClient)

	da, err := g.oauth.DeviceAuth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start device authorization: %w", err)
	}

	prompt(DeviceCode{
		UserCode:        da.UserCode,
		VerificationURL: da.VerificationURI,
		ExpiresAt:       da.Expiry,
	})

	token, err := g.oauth.DeviceAccessToken(ctx, da)
	if err != nil {
		return nil, fmt.Errorf("device authorization failed: %w", err)
	}

	email, err := g.fetchEmail(ctx, token.AccessToken)
	if err != nil {
		return nil, err
	}

	authData := &storage.AuthData{
		Provider:     storage.ProviderGoogle,
		Email:        email,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.Type(),
		ExpiresAt:    expiresAt(token),
	}
	if err := g.store.SaveAuth(ctx, authData); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	g.logger.Info("Signed in with Google", "email", email)
	return &Identity{Email: email, Provider: storage.ProviderGoogle}, nil
}

// TokenSource returns a source that reads the stored Google session on every
// call and refreshes it when expired. Refreshed tokens are written back.
func (g *GoogleAuthenticator) TokenSource(ctx context.Context) oauth2.TokenSource {
	return &storedTokenSource{
		g:   g,
		ctx: context.WithValue(context.WithoutCancel(ctx), oauth2.HTTPClient, g.httpClient),
	}
}

// Revoke отзывает refresh token (или access token, если его нет) у Google
func (g *GoogleAuthenticator) Revoke(ctx context.Context, authData *storage.AuthData) error {
	if authData.Provider != storage.ProviderGoogle {
		return ErrWrongProvider
	}
	token := authData.RefreshToken
	if token == "" {
		token = authData.AccessToken
	}

	form := url.Values{"token": {token}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.revokeURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("revoke request failed with status %d", resp.StatusCode)
	}
	return nil
}

// fetchEmail получает email аккаунта, он служит идентификатором сессии
func (g *GoogleAuthenticator) fetchEmail(ctx context.Context, accessToken string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.userInfoURL, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch user info: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("user info request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var info struct {
		Email         string `json:"email"`
		VerifiedEmail bool   `json:"verified_email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return "", fmt.Errorf("decode user info: %w", err)
	}
	if info.Email == "" {
		return "", fmt.Errorf("user info has no email")
	}
	return info.Email, nil
}

type storedTokenSource struct {
	g   *GoogleAuthenticator
	ctx context.Context
	mu  sync.Mutex
}

// Token implements oauth2.TokenSource
func (s *storedTokenSource) Token() (*oauth2.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	authData, err := s.g.store.GetAuth(s.ctx)
	if errors.Is(err, storage.ErrAuthNotFound) {
		return nil, ErrNotSignedIn
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if authData.Provider != storage.ProviderGoogle {
		return nil, ErrWrongProvider
	}

	token := &oauth2.Token{
		AccessToken:  authData.AccessToken,
		RefreshToken: authData.RefreshToken,
		TokenType:    authData.TokenType,
	}
	if authData.ExpiresAt != 0 {
		token.Expiry = time.Unix(authData.ExpiresAt, 0)
	}
	if token.Valid() {
		return token, nil
	}

	fresh, err := s.g.oauth.TokenSource(s.ctx, token).Token()
	if err != nil {
		return nil, fmt.Errorf("failed to refresh google token: %w", err)
	}

	authData.AccessToken = fresh.AccessToken
	if fresh.RefreshToken != "" {
		authData.RefreshToken = fresh.RefreshToken
	}
	authData.TokenType = fresh.Type()
	authData.ExpiresAt = expiresAt(fresh)
	if err := s.g.store.SaveAuth(s.ctx, authData); err != nil {
		return nil, fmt.Errorf("failed to save refreshed session: %w", err)
	}

	s.g.logger.Debug("Google token refreshed")
	return fresh, nil
}

func expiresAt(token *oauth2.Token) int64 {
	if token.Expiry.IsZero() {
		return 0
	}
	return token.Expiry.Unix()
}
