package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/oneclickcopy/internal/clock"
	"github.com/iudanet/oneclickcopy/internal/models"
	"github.com/iudanet/oneclickcopy/internal/server/storage"
	"github.com/iudanet/oneclickcopy/pkg/api"
)

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// mockUserStorage is an in-memory UserStorage for testing
type mockUserStorage struct {
	users        map[string]*models.User // email -> User
	createError  error
	getUserError error
	lastLogins   map[string]time.Time
	mu           sync.Mutex
}

func newMockUserStorage(users ...*models.User) *mockUserStorage {
	m := &mockUserStorage{
		users:      make(map[string]*models.User),
		lastLogins: make(map[string]time.Time),
	}
	for _, u := range users {
		m.users[u.Email] = u
	}
	return m
}

func (m *mockUserStorage) CreateUser(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createError != nil {
		return m.createError
	}
	if _, exists := m.users[user.Email]; exists {
		return storage.ErrUserAlreadyExists
	}
	m.users[user.Email] = user
	return nil
}

func (m *mockUserStorage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getUserError != nil {
		return nil, m.getUserError
	}
	user, ok := m.users[email]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserStorage) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getUserError != nil {
		return nil, m.getUserError
	}
	for _, user := range m.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, storage.ErrUserNotFound
}

func (m *mockUserStorage) UpdateLastLogin(ctx context.Context, userID string, loginTime time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastLogins[userID] = loginTime
	return nil
}

// mockTokenStorage is an in-memory TokenStorage for testing
type mockTokenStorage struct {
	tokens        map[string]*models.RefreshToken // token -> RefreshToken
	saveError     error
	getError      error
	deleteError   error
	savedTokens   []*models.RefreshToken
	deletedTokens []string
	mu            sync.Mutex
}

func newMockTokenStorage(tokens ...*models.RefreshToken) *mockTokenStorage {
	m := &mockTokenStorage{tokens: make(map[string]*models.RefreshToken)}
	for _, tok := range tokens {
		m.tokens[tok.Token] = tok
	}
	return m
}

func (m *mockTokenStorage) SaveRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveError != nil {
		return m.saveError
	}
	m.tokens[token.Token] = token
	m.savedTokens = append(m.savedTokens, token)
	return nil
}

func (m *mockTokenStorage) GetRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getError != nil {
		return nil, m.getError
	}
	rt, ok := m.tokens[token]
	if !ok {
		return nil, storage.ErrTokenNotFound
	}
	return rt, nil
}

func (m *mockTokenStorage) DeleteRefreshToken(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteError != nil {
		return m.deleteError
	}
	if _, ok := m.tokens[token]; !ok {
		return storage.ErrTokenNotFound
	}
	delete(m.tokens, token)
	m.deletedTokens = append(m.deletedTokens, token)
	return nil
}

func (m *mockTokenStorage) DeleteUserTokens(ctx context.Context, userID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteError != nil {
		return 0, m.deleteError
	}
	count := 0
	for token, rt := range m.tokens {
		if rt.UserID == userID {
			delete(m.tokens, token)
			m.deletedTokens = append(m.deletedTokens, token)
			count++
		}
	}
	return count, nil
}

func (m *mockTokenStorage) DeleteExpiredTokens(ctx context.Context, now time.Time) (int, error) {
	return 0, nil
}

func testJWTConfig() JWTConfig {
	return JWTConfig{
		Secret:          []byte("test-secret"),
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 30 * 24 * time.Hour,
	}
}

func testUser() *models.User {
	return &models.User{
		ID:          "user123",
		Email:       "alice@example.com",
		AuthKeyHash: "hash123",
		PublicSalt:  "salt123",
	}
}

func newTestAuthHandler(users *mockUserStorage, tokens *mockTokenStorage) (*AuthHandler, *clock.Fake) {
	clk := clock.NewFake(time.Now())
	return NewAuthHandler(setupTestLogger(), users, tokens, testJWTConfig(), clk), clk
}

func postJSON(t *testing.T, path string, body any) *http.Request {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestAuthHandler_Register_Success(t *testing.T) {
	users := newMockUserStorage()
	handler, _ := newTestAuthHandler(users, newMockTokenStorage())

	req := postJSON(t, "/api/v1/auth/register", api.RegisterRequest{
		Email:       "  Alice@Example.COM ",
		AuthKeyHash: "hash123",
		PublicSalt:  "salt123",
	})
	w := httptest.NewRecorder()
	handler.Register(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response api.RegisterResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.NotEmpty(t, response.UserID)

	// Email хранится в нормализованном виде
	user, err := users.GetUserByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, response.UserID, user.ID)
	assert.Equal(t, "alice@example.com", response.Email)
	assert.Equal(t, "hash123", user.AuthKeyHash)
	assert.Equal(t, "salt123", user.PublicSalt)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestAuthHandler_Register_BadRequests(t *testing.T) {
	handler, _ := newTestAuthHandler(newMockUserStorage(), newMockTokenStorage())

	tests := []struct {
		name string
		body any
	}{
		{"invalid json", "not an object"},
		{"empty email", api.RegisterRequest{AuthKeyHash: "h", PublicSalt: "s"}},
		{"malformed email", api.RegisterRequest{Email: "alice", AuthKeyHash: "h", PublicSalt: "s"}},
		{"email with spaces", api.RegisterRequest{Email: "al ice@example.com", AuthKeyHash: "h", PublicSalt: "s"}},
		{"missing hash", api.RegisterRequest{Email: "a@example.com", PublicSalt: "s"}},
		{"missing salt", api.RegisterRequest{Email: "a@example.com", AuthKeyHash: "h"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.Register(w, postJSON(t, "/api/v1/auth/register", tt.body))
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp api.ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, "Bad Request", resp.Error)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	handler, _ := newTestAuthHandler(newMockUserStorage(testUser()), newMockTokenStorage())

	w := httptest.NewRecorder()
	handler.Register(w, postJSON(t, "/api/v1/auth/register", api.RegisterRequest{
		Email:       "ALICE@example.com",
		AuthKeyHash: "other",
		PublicSalt:  "other",
	}))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_Register_StorageError(t *testing.T) {
	users := newMockUserStorage()
	users.createError = errors.New("disk I/O error")
	handler, _ := newTestAuthHandler(users, newMockTokenStorage())

	w := httptest.NewRecorder()
	handler.Register(w, postJSON(t, "/api/v1/auth/register", api.RegisterRequest{
		Email:       "bob@example.com",
		AuthKeyHash: "h",
		PublicSalt:  "s",
	}))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "disk I/O")
}

func TestAuthHandler_GetSalt(t *testing.T) {
	handler, _ := newTestAuthHandler(newMockUserStorage(testUser()), newMockTokenStorage())

	tests := []struct {
		name       string
		email      string
		wantSalt   string
		wantStatus int
	}{
		{name: "existing user", email: "alice@example.com", wantStatus: http.StatusOK, wantSalt: "salt123"},
		{name: "case insensitive", email: "Alice@Example.com", wantStatus: http.StatusOK, wantSalt: "salt123"},
		{name: "unknown user", email: "nobody@example.com", wantStatus: http.StatusNotFound},
		{name: "empty email", email: "", wantStatus: http.StatusBadRequest},
		{name: "invalid email", email: "not-an-email", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/salt/x", nil)
			req.SetPathValue("email", tt.email)

			w := httptest.NewRecorder()
			handler.GetSalt(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantSalt != "" {
				var resp api.SaltResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.wantSalt, resp.PublicSalt)
			}
		})
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	users := newMockUserStorage(testUser())
	tokens := newMockTokenStorage()
	handler, clk := newTestAuthHandler(users, tokens)

	w := httptest.NewRecorder()
	handler.Login(w, postJSON(t, "/api/v1/auth/login", api.LoginRequest{
		Email:       "alice@example.com",
		AuthKeyHash: "hash123",
	}))

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.TokenResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, int64(15*60), resp.ExpiresIn)
	assert.Equal(t, api.TokenTypeBearer, resp.TokenType)

	claims, err := ValidateAccessToken(testJWTConfig(), resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user123", claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)

	require.Len(t, tokens.savedTokens, 1)
	saved := tokens.savedTokens[0]
	assert.Equal(t, resp.RefreshToken, saved.Token)
	assert.Equal(t, "user123", saved.UserID)
	assert.Equal(t, clk.Now().Add(30*24*time.Hour), saved.ExpiresAt)

	assert.Equal(t, clk.Now(), users.lastLogins["user123"])
}

func TestAuthHandler_Login_Failures(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		getErr     error
		saveErr    error
		wantStatus int
	}{
		{name: "invalid json", body: "garbage", wantStatus: http.StatusBadRequest},
		{name: "invalid email", body: api.LoginRequest{Email: "x", AuthKeyHash: "hash123"}, wantStatus: http.StatusBadRequest},
		{name: "missing hash", body: api.LoginRequest{Email: "alice@example.com"}, wantStatus: http.StatusBadRequest},
		{name: "unknown user", body: api.LoginRequest{Email: "eve@example.com", AuthKeyHash: "hash123"}, wantStatus: http.StatusUnauthorized},
		{name: "wrong password", body: api.LoginRequest{Email: "alice@example.com", AuthKeyHash: "wrong"}, wantStatus: http.StatusUnauthorized},
		{
			name:       "storage failure",
			body:       api.LoginRequest{Email: "alice@example.com", AuthKeyHash: "hash123"},
			getErr:     errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "token save failure",
			body:       api.LoginRequest{Email: "alice@example.com", AuthKeyHash: "hash123"},
			saveErr:    errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := newMockUserStorage(testUser())
			users.getUserError = tt.getErr
			tokens := newMockTokenStorage()
			tokens.saveError = tt.saveErr
			handler, _ := newTestAuthHandler(users, tokens)

			w := httptest.NewRecorder()
			handler.Login(w, postJSON(t, "/api/v1/auth/login", tt.body))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Empty(t, users.lastLogins)
		})
	}
}

func TestAuthHandler_Refresh_Success(t *testing.T) {
	old := &models.RefreshToken{
		Token:     "old-refresh-token",
		UserID:    "user123",
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
	tokens := newMockTokenStorage(old)
	handler, _ := newTestAuthHandler(newMockUserStorage(testUser()), tokens)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	req.Header.Set("Authorization", "Bearer old-refresh-token")

	w := httptest.NewRecorder()
	handler.Refresh(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.TokenResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEqual(t, "old-refresh-token", resp.RefreshToken)

	assert.Equal(t, []string{"old-refresh-token"}, tokens.deletedTokens)
	require.Len(t, tokens.savedTokens, 1)
	assert.Equal(t, resp.RefreshToken, tokens.savedTokens[0].Token)

	// Старый токен больше не принимается
	w = httptest.NewRecorder()
	handler.Refresh(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Refresh_Failures(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		token      *models.RefreshToken
		wantStatus int
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "empty token", header: "Bearer ", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "unknown token", header: "Bearer nope", wantStatus: http.StatusUnauthorized},
		{
			name:       "expired token",
			header:     "Bearer expired",
			token:      &models.RefreshToken{Token: "expired", UserID: "user123", ExpiresAt: time.Now().Add(-time.Minute)},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "user deleted",
			header:     "Bearer orphan",
			token:      &models.RefreshToken{Token: "orphan", UserID: "ghost", ExpiresAt: time.Now().Add(time.Hour)},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := newMockTokenStorage()
			if tt.token != nil {
				tokens.tokens[tt.token.Token] = tt.token
			}
			handler, _ := newTestAuthHandler(newMockUserStorage(testUser()), tokens)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			w := httptest.NewRecorder()
			handler.Refresh(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Empty(t, tokens.savedTokens)
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	tokens := newMockTokenStorage(
		&models.RefreshToken{Token: "t1", UserID: "user123", ExpiresAt: time.Now().Add(time.Hour)},
		&models.RefreshToken{Token: "t2", UserID: "user123", ExpiresAt: time.Now().Add(time.Hour)},
		&models.RefreshToken{Token: "t3", UserID: "other", ExpiresAt: time.Now().Add(time.Hour)},
	)
	handler, clk := newTestAuthHandler(newMockUserStorage(testUser()), tokens)

	access, _, err := GenerateAccessToken(testJWTConfig(), clk.Now(), "user123", "alice@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+access)

	w := httptest.NewRecorder()
	handler.Logout(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.ElementsMatch(t, []string{"t1", "t2"}, tokens.deletedTokens)
	assert.Contains(t, tokens.tokens, "t3")
}

func TestAuthHandler_Logout_InvalidToken(t *testing.T) {
	handler, _ := newTestAuthHandler(newMockUserStorage(), newMockTokenStorage())

	for _, header := range []string{"", "Bearer ", "Bearer not-a-jwt"} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		handler.Logout(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, header)
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{header: "Bearer abc", want: "abc", ok: true},
		{header: "bearer abc", want: "abc", ok: true},
		{header: "Bearer   abc  ", want: "abc", ok: true},
		{header: "Bearer ", ok: false},
		{header: "Bearer", ok: false},
		{header: "Token abc", ok: false},
		{header: "", ok: false},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", tt.header)
		got, ok := BearerToken(req)
		assert.Equal(t, tt.ok, ok, tt.header)
		assert.Equal(t, tt.want, got, tt.header)
	}
}
