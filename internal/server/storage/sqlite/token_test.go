package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/oneclickcopy/internal/models"
	"github.com/iudanet/oneclickcopy/internal/server/storage"
)

func TestTokenStorage_SaveRefreshToken(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)

	tests := []struct {
		name  string
		token *models.RefreshToken
	}{
		{
			name: "save new refresh token",
			token: &models.RefreshToken{
				Token:     "token123",
				UserID:    userID,
				ExpiresAt: time.Now().Add(24 * time.Hour),
				CreatedAt: time.Now(),
			},
		},
		{
			name: "replace existing token with same value",
			token: &models.RefreshToken{
				Token:     "token123", // Same token
				UserID:    userID,
				ExpiresAt: time.Now().Add(48 * time.Hour), // Different expiry
				CreatedAt: time.Now(),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.SaveRefreshToken(ctx, tt.token)
			require.NoError(t, err)

			// Verify token was saved
			retrieved, err := s.GetRefreshToken(ctx, tt.token.Token)
			require.NoError(t, err)
			assert.Equal(t, tt.token.Token, retrieved.Token)
			assert.Equal(t, tt.token.UserID, retrieved.UserID)
			assert.WithinDuration(t, tt.token.ExpiresAt, retrieved.ExpiresAt, time.Millisecond)
		})
	}

	assert.Equal(t, 1, countUserTokens(t, s, userID))
}

func TestTokenStorage_SaveRefreshToken_UnknownUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	err := s.SaveRefreshToken(ctx, &models.RefreshToken{
		Token:     "orphan",
		UserID:    "nonexistent",
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	})
	assert.Error(t, err)
}

func TestTokenStorage_GetRefreshToken(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)

	token := &models.RefreshToken{
		Token:     "findme",
		UserID:    userID,
		ExpiresAt: time.Now().Add(24 * time.Hour),
		CreatedAt: time.Now(),
	}
	err := s.SaveRefreshToken(ctx, token)
	require.NoError(t, err)

	tests := []struct {
		name      string
		token     string
		wantError error
	}{
		{
			name:      "get existing token",
			token:     "findme",
			wantError: nil,
		},
		{
			name:      "get non-existent token",
			token:     "notfound",
			wantError: storage.ErrTokenNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			retrieved, err := s.GetRefreshToken(ctx, tt.token)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				assert.Nil(t, retrieved)
			} else {
				require.NoError(t, err)
				assert.Equal(t, token.Token, retrieved.Token)
				assert.Equal(t, token.UserID, retrieved.UserID)
			}
		})
	}
}

func TestTokenStorage_DeleteRefreshToken(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)

	token := &models.RefreshToken{
		Token:     "todelete",
		UserID:    userID,
		ExpiresAt: time.Now().Add(24 * time.Hour),
		CreatedAt: time.Now(),
	}
	err := s.SaveRefreshToken(ctx, token)
	require.NoError(t, err)

	tests := []struct {
		name      string
		token     string
		wantError error
	}{
		{
			name:      "delete existing token",
			token:     "todelete",
			wantError: nil,
		},
		{
			name:      "delete non-existent token",
			token:     "notfound",
			wantError: storage.ErrTokenNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.DeleteRefreshToken(ctx, tt.token)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
			} else {
				require.NoError(t, err)

				// Verify token is deleted
				_, err := s.GetRefreshToken(ctx, tt.token)
				assert.ErrorIs(t, err, storage.ErrTokenNotFound)
			}
		})
	}
}

func TestTokenStorage_DeleteUserTokens(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID1 := createTestUser(t, ctx, s)
	userID2 := createTestUser(t, ctx, s)

	tokens := []*models.RefreshToken{
		{Token: "user1_token1", UserID: userID1, ExpiresAt: time.Now().Add(24 * time.Hour), CreatedAt: time.Now()},
		{Token: "user1_token2", UserID: userID1, ExpiresAt: time.Now().Add(24 * time.Hour), CreatedAt: time.Now()},
		{Token: "user2_token1", UserID: userID2, ExpiresAt: time.Now().Add(24 * time.Hour), CreatedAt: time.Now()},
	}

	for _, token := range tokens {
		err := s.SaveRefreshToken(ctx, token)
		require.NoError(t, err)
	}

	tests := []struct {
		name          string
		userID        string
		expectedCount int
	}{
		{
			name:          "delete tokens for user with 2 tokens",
			userID:        userID1,
			expectedCount: 2,
		},
		{
			name:          "delete tokens for user with no tokens",
			userID:        "nonexistent",
			expectedCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count, err := s.DeleteUserTokens(ctx, tt.userID)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedCount, count)
			assert.Zero(t, countUserTokens(t, s, tt.userID))
		})
	}

	// Токен второго пользователя не тронут
	assert.Equal(t, 1, countUserTokens(t, s, userID2))
}

func TestTokenStorage_DeleteExpiredTokens(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)

	now := time.Now()
	tokens := []*models.RefreshToken{
		{Token: "expired1", UserID: userID, ExpiresAt: now.Add(-2 * time.Hour), CreatedAt: now.Add(-3 * time.Hour)},
		{Token: "expired2", UserID: userID, ExpiresAt: now.Add(-1 * time.Hour), CreatedAt: now.Add(-2 * time.Hour)},
		{Token: "valid1", UserID: userID, ExpiresAt: now.Add(24 * time.Hour), CreatedAt: now},
		{Token: "valid2", UserID: userID, ExpiresAt: now.Add(48 * time.Hour), CreatedAt: now},
	}

	for _, token := range tokens {
		err := s.SaveRefreshToken(ctx, token)
		require.NoError(t, err)
	}

	count, err := s.DeleteExpiredTokens(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 2, count, "Should delete 2 expired tokens")
	assert.Equal(t, 2, countUserTokens(t, s, userID))

	_, err = s.GetRefreshToken(ctx, "expired1")
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)
	_, err = s.GetRefreshToken(ctx, "valid1")
	assert.NoError(t, err)

	// Повторный запуск ничего не удаляет
	count, err = s.DeleteExpiredTokens(ctx, now)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func countUserTokens(t *testing.T, s *Storage, userID string) int {
	t.Helper()
	var n int
	err := s.DB().QueryRowContext(context.Background(),
		`SELECT COUNT(*) FROM refresh_tokens WHERE user_id = ?`, userID).Scan(&n)
	require.NoError(t, err)
	return n
}
