// Package backup serialises the full document set into the single versioned
// JSON envelope stored on the remote drive, and parses it back.
package backup

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/oneclickcopy/internal/models"
)

const (
	// FormatVersion is the envelope version written by Encode.
	FormatVersion = 1
	// FileName is the name of the well-known backup object.
	FileName = "oneclickcopy_backup.json"
	// MimeType is the content type of the backup object.
	MimeType = "application/json"
)

// ErrMalformedBackup indicates the payload is not a valid backup envelope.
var ErrMalformedBackup = errors.New("malformed backup")

// Envelope is the on-wire backup format.
type Envelope struct {
	Documents []Record `json:"documents"`
	Version   int      `json:"version"`
	Timestamp int64    `json:"timestamp"` // epoch ms
}

// Record is a single document inside the envelope.
// CopiedItems holds a JSON array encoded as a string.
type Record struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	CopiedItems string `json:"copiedItems"`
	ID          int64  `json:"id"`
	CreatedAt   int64  `json:"createdAt"` // epoch ms
	UpdatedAt   int64  `json:"updatedAt"` // epoch ms
}

// decodedRecord принимает copiedItems и строкой, и настоящим JSON-массивом
type decodedRecord struct {
	Title       string          `json:"title"`
	Content     string          `json:"content"`
	CopiedItems json.RawMessage `json:"copiedItems"`
	ID          int64           `json:"id"`
	CreatedAt   int64           `json:"createdAt"`
	UpdatedAt   int64           `json:"updatedAt"`
}

// Encode serialises docs into a backup envelope stamped with now.
func Encode(docs []models.Document, now time.Time) ([]byte, error) {
	env := Envelope{
		Version:   FormatVersion,
		Timestamp: toMillis(now),
		Documents: make([]Record, 0, len(docs)),
	}

	for _, doc := range docs {
		copied, err := encodeCopiedItems(doc.CopiedItemKeys)
		if err != nil {
			return nil, fmt.Errorf("failed to encode copied items of document %d: %w", doc.ID, err)
		}
		env.Documents = append(env.Documents, Record{
			ID:          doc.ID,
			Title:       doc.Title,
			Content:     doc.Content,
			CopiedItems: copied,
			CreatedAt:   toMillis(doc.CreatedAt),
			UpdatedAt:   toMillis(doc.UpdatedAt),
		})
	}

	data, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal backup envelope: %w", err)
	}
	return data, nil
}

// Decode parses a backup envelope. Unknown fields are ignored and missing
// optional fields default to zero values.
func Decode(data []byte) ([]models.Document, error) {
	var raw struct {
		Documents json.RawMessage `json:"documents"`
		Version   int             `json:"version"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBackup, err)
	}

	trimmed := bytes.TrimSpace(raw.Documents)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, fmt.Errorf("%w: documents array is missing", ErrMalformedBackup)
	}

	var records []decodedRecord
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBackup, err)
	}

	docs := make([]models.Document, 0, len(records))
	for _, r := range records {
		docs = append(docs, models.Document{
			ID:             r.ID,
			Title:          r.Title,
			Content:        r.Content,
			CopiedItemKeys: decodeCopiedItems(r.CopiedItems),
			CreatedAt:      fromMillis(r.CreatedAt),
			UpdatedAt:      fromMillis(r.UpdatedAt),
		})
	}

	return docs, nil
}

func encodeCopiedItems(keys []string) (string, error) {
	if len(keys) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal(keys)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// decodeCopiedItems не отбрасывает документ из-за битого copiedItems:
// теряется только отметка о копировании.
func decodeCopiedItems(raw json.RawMessage) []string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}

	// Строка с массивом внутри: разворачиваем один уровень
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil || s == "" {
			return nil
		}
		raw = []byte(s)
	}

	var keys []string
	if err := json.Unmarshal(raw, &keys); err != nil || len(keys) == 0 {
		return nil
	}
	return keys
}

func toMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}
