package models

import "time"

// User представляет пользователя self-hosted сервера бэкапов
type User struct {
	CreatedAt   time.Time  `json:"created_at"`    // время создания
	LastLogin   *time.Time `json:"last_login"`    // время последнего входа
	ID          string     `json:"id"`            // UUID пользователя
	Email       string     `json:"email"`         // уникальный email (логин)
	AuthKeyHash string     `json:"auth_key_hash"` // SHA256 хеш auth_key
	PublicSalt  string     `json:"public_salt"`   // base64 encoded salt (32 bytes)
}

// RefreshToken представляет refresh token пользователя
type RefreshToken struct {
	ExpiresAt time.Time `json:"expires_at"` // время истечения
	CreatedAt time.Time `json:"created_at"` // время создания
	Token     string    `json:"token"`      // значение токена
	UserID    string    `json:"user_id"`    // ID пользователя
}

// Blob представляет файл, хранящийся на сервере бэкапов.
// Data заполняется только при скачивании содержимого.
type Blob struct {
	CreatedAt  time.Time  `json:"created_at"`
	ModifiedAt time.Time  `json:"modified_at"`
	TrashedAt  *time.Time `json:"trashed_at,omitempty"`
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	Name       string     `json:"name"`
	MimeType   string     `json:"mime_type"`
	Data       []byte     `json:"-"`
	Size       int64      `json:"size"`
}
