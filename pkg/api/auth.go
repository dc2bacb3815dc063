// Package api описывает JSON контракт сервера резервных копий.
package api

import (
	"errors"
	"strings"
	"time"
)

// TokenTypeBearer тип токенов, выдаваемых сервером
const TokenTypeBearer = "Bearer"

// RegisterRequest создает аккаунт для хранения бэкапа заметок.
// Пароль на сервер не передается: только хеш ключа, выведенного на клиенте.
type RegisterRequest struct {
	Email       string `json:"email"`
	AuthKeyHash string `json:"auth_key_hash"` // hex SHA-256 от auth_key
	PublicSalt  string `json:"public_salt"`   // base64, 32 байта
}

// Validate проверяет обязательные поля запроса (email проверяется отдельно)
func (r RegisterRequest) Validate() error {
	if strings.TrimSpace(r.AuthKeyHash) == "" {
		return errors.New("auth_key_hash is required")
	}
	if strings.TrimSpace(r.PublicSalt) == "" {
		return errors.New("public_salt is required")
	}
	return nil
}

// RegisterResponse ответ на успешную регистрацию
type RegisterResponse struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email"` // email после нормализации
	Message string `json:"message"`
}

// SaltResponse публичная соль аккаунта для вывода auth_key
type SaltResponse struct {
	PublicSalt string `json:"public_salt"`
}

// LoginRequest вход по email и хешу auth_key
type LoginRequest struct {
	Email       string `json:"email"`
	AuthKeyHash string `json:"auth_key_hash"`
}

// TokenResponse пара токенов сессии. Refresh token одноразовый:
// каждый /auth/refresh выдает новую пару.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"` // секунды жизни access token
}

// Type returns the token type, Bearer when the server omitted it
func (t TokenResponse) Type() string {
	if t.TokenType == "" {
		return TokenTypeBearer
	}
	return t.TokenType
}

// ExpiresAt returns when the access token expires if it was issued at
// issued. Zero ExpiresIn means the server did not say.
func (t TokenResponse) ExpiresAt(issued time.Time) time.Time {
	if t.ExpiresIn <= 0 {
		return time.Time{}
	}
	return issued.Add(time.Duration(t.ExpiresIn) * time.Second)
}

// ErrorResponse тело любого неуспешного ответа
type ErrorResponse struct {
	Error   string `json:"error"`             // http.StatusText кода
	Message string `json:"message,omitempty"` // причина для пользователя
}
