package handlers

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessToken_RoundTrip(t *testing.T) {
	cfg := testJWTConfig()

	token, expiresIn, err := GenerateAccessToken(cfg, time.Now(), "user-1", "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(900), expiresIn)

	claims, err := ValidateAccessToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.Equal(t, TokenIssuer, claims.Issuer)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestValidateAccessToken_Rejects(t *testing.T) {
	cfg := testJWTConfig()

	expired, _, err := GenerateAccessToken(cfg, time.Now().Add(-time.Hour), "user-1", "a@example.com")
	require.NoError(t, err)

	otherSecret := cfg
	otherSecret.Secret = []byte("another-secret")
	forged, _, err := GenerateAccessToken(otherSecret, time.Now(), "user-1", "a@example.com")
	require.NoError(t, err)

	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, CustomClaims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	foreignToken, err := foreign.SignedString(cfg.Secret)
	require.NoError(t, err)

	noExpiry := jwt.NewWithClaims(jwt.SigningMethodHS256, CustomClaims{
		UserID:           "user-1",
		RegisteredClaims: jwt.RegisteredClaims{Issuer: TokenIssuer},
	})
	noExpiryToken, err := noExpiry.SignedString(cfg.Secret)
	require.NoError(t, err)

	noneAlg := jwt.NewWithClaims(jwt.SigningMethodNone, CustomClaims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    TokenIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	noneToken, err := noneAlg.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := map[string]string{
		"expired":      expired,
		"wrong secret": forged,
		"wrong issuer": foreignToken,
		"no expiry":    noExpiryToken,
		"alg none":     noneToken,
		"garbage":      "a.b.c",
		"empty string": "",
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ValidateAccessToken(cfg, token)
			assert.Error(t, err)
		})
	}
}

func TestGenerateRefreshToken(t *testing.T) {
	cfg := testJWTConfig()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	a, expiresAt, err := GenerateRefreshToken(cfg, now)
	require.NoError(t, err)
	b, _, err := GenerateRefreshToken(cfg, now)
	require.NoError(t, err)

	assert.Len(t, a, 43)
	assert.NotEqual(t, a, b)
	assert.Equal(t, now.Add(cfg.RefreshTokenTTL), expiresAt)
}
