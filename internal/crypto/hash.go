package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// HashAuthKey хеширует auth_key с использованием SHA256.
// Клиент отправляет на сервер только этот хеш.
func HashAuthKey(authKey []byte) (string, error) {
	if len(authKey) == 0 {
		return "", fmt.Errorf("auth key cannot be empty")
	}

	hash := sha256.Sum256(authKey)
	return hex.EncodeToString(hash[:]), nil
}

// VerifyAuthKeyHash compares a received auth key hash with the stored one
// in constant time.
func VerifyAuthKeyHash(received, stored string) error {
	if received == "" {
		return fmt.Errorf("auth key hash cannot be empty")
	}
	if stored == "" {
		return fmt.Errorf("stored auth key hash cannot be empty")
	}

	if subtle.ConstantTimeCompare([]byte(received), []byte(stored)) != 1 {
		return fmt.Errorf("invalid auth key")
	}
	return nil
}
