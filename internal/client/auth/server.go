package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/oneclickcopy/internal/client/storage"
	"github.com/iudanet/oneclickcopy/internal/crypto"
	"github.com/iudanet/oneclickcopy/internal/validation"
	"github.com/iudanet/oneclickcopy/pkg/api"
)

//go:generate moq -out serverclient_mock.go . ServerClient

// ServerClient is the account API of the self-hosted backup server
type ServerClient interface {
	BaseURL() string
	Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error)
	GetSalt(ctx context.Context, email string) (*api.SaltResponse, error)
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)
	Logout(ctx context.Context, accessToken string) error
}

// ServerAuthenticator signs in against the self-hosted server with email and password.
// Only an Argon2id derived key hash is sent; the password never leaves the client.
type ServerAuthenticator struct {
	client ServerClient
	store  storage.AuthStorage
	logger *slog.Logger
	now    func() time.Time
}

var _ Revoker = (*ServerAuthenticator)(nil)

// NewServerAuthenticator создает аутентификатор для self-hosted сервера
func NewServerAuthenticator(client ServerClient, store storage.AuthStorage, logger *slog.Logger) *ServerAuthenticator {
	return &ServerAuthenticator{
		client: client,
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Register создает аккаунт на сервере. После регистрации нужен SignIn.
func (a *ServerAuthenticator) Register(ctx context.Context, email, password string) error {
	email = validation.NormalizeEmail(email)
	if err := validation.ValidateEmail(email); err != nil {
		return fmt.Errorf("invalid email: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}

	// 1. Генерируем публичную соль
	publicSalt, err := crypto.GenerateSaltBase64()
	if err != nil {
		return fmt.Errorf("failed to generate salt: %w", err)
	}

	// 2. Деривируем auth_key и хешируем его
	authKeyHash, err := authKeyHash(password, email, publicSalt)
	if err != nil {
		return err
	}

	// 3. Отправляем запрос на регистрацию
	resp, err := a.client.Register(ctx, api.RegisterRequest{
		Email:       email,
		AuthKeyHash: authKeyHash,
		PublicSalt:  publicSalt,
	})
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	a.logger.Info("Registered on server", "user_id", resp.UserID)
	return nil
}

// SignIn выполняет вход и сохраняет сессию
func (a *ServerAuthenticator) SignIn(ctx context.Context, email, password string) (*Identity, error) {
	email = validation.NormalizeEmail(email)
	if err := validation.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}
	if password == "" {
		return nil, fmt.Errorf("invalid password: password cannot be empty")
	}

	// 1. Получаем public_salt с сервера
	saltResp, err := a.client.GetSalt(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get salt: %w", err)
	}

	// 2. Деривируем auth_key тем же способом, что и при регистрации
	authKeyHash, err := authKeyHash(password, email, saltResp.PublicSalt)
	if err != nil {
		return nil, err
	}

	// 3. Логин
	tokens, err := a.client.Login(ctx, api.LoginRequest{Email: email, AuthKeyHash: authKeyHash})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	// 4. Сохраняем сессию
	authData := &storage.AuthData{
		Provider:     storage.ProviderServer,
		Email:        email,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		TokenType:    tokens.Type(),
		ServerURL:    a.client.BaseURL(),
	}
	authData.SetExpiry(tokens.ExpiresAt(a.now()))
	if err := a.store.SaveAuth(ctx, authData); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	a.logger.Info("Signed in to server", "email", email)
	return &Identity{Email: email, Provider: storage.ProviderServer}, nil
}

// Revoke отзывает токены на сервере
func (a *ServerAuthenticator) Revoke(ctx context.Context, authData *storage.AuthData) error {
	if authData.Provider != storage.ProviderServer {
		return ErrWrongProvider
	}
	return a.client.Logout(ctx, authData.AccessToken)
}

func authKeyHash(password, email, saltBase64 string) (string, error) {
	authKey, err := crypto.DeriveAuthKeyFromBase64Salt(password, email, saltBase64)
	if err != nil {
		return "", fmt.Errorf("failed to derive auth key: %w", err)
	}
	hash, err := crypto.HashAuthKey(authKey)
	if err != nil {
		return "", fmt.Errorf("failed to hash auth key: %w", err)
	}
	return hash, nil
}
