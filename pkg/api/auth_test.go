package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRegisterRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr string
	}{
		{name: "valid", req: RegisterRequest{Email: "a@b.co", AuthKeyHash: "h", PublicSalt: "s"}},
		{name: "missing hash", req: RegisterRequest{PublicSalt: "s"}, wantErr: "auth_key_hash is required"},
		{name: "blank salt", req: RegisterRequest{AuthKeyHash: "h", PublicSalt: "  "}, wantErr: "public_salt is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestTokenResponse_ExpiresAtAndType(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	resp := TokenResponse{ExpiresIn: 900}
	assert.Equal(t, issued.Add(15*time.Minute), resp.ExpiresAt(issued))
	assert.Equal(t, TokenTypeBearer, resp.Type())

	assert.True(t, TokenResponse{}.ExpiresAt(issued).IsZero())
	assert.Equal(t, "MAC", TokenResponse{TokenType: "MAC"}.Type())
}
