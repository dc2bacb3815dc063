package models

import (
	"slices"
	"strings"
	"time"
)

// Document представляет заметку пользователя.
// ID назначается хранилищем при вставке (0 = новая заметка) и после этого не меняется.
type Document struct {
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`          // строки-сниппеты, разделенные '\n'
	CopiedItemKeys []string  `json:"copied_item_keys"` // тексты строк, помеченных как скопированные
	ID             int64     `json:"id"`
}

// IsNew reports whether the document has not been stored yet.
func (d *Document) IsNew() bool {
	return d.ID == 0
}

// Lines splits content into snippet lines.
func (d *Document) Lines() []string {
	if d.Content == "" {
		return nil
	}
	return strings.Split(d.Content, "\n")
}

// IsCopied reports whether the line text is marked as copied.
func (d *Document) IsCopied(line string) bool {
	return slices.Contains(d.CopiedItemKeys, line)
}

// Clone создает глубокую копию документа
func (d *Document) Clone() Document {
	c := *d
	if d.CopiedItemKeys != nil {
		c.CopiedItemKeys = slices.Clone(d.CopiedItemKeys)
	}
	return c
}

// CloneDocuments копирует срез документов, чтобы снимок не зависел от вызывающего кода.
func CloneDocuments(docs []Document) []Document {
	if docs == nil {
		return nil
	}
	out := make([]Document, len(docs))
	for i := range docs {
		out[i] = docs[i].Clone()
	}
	return out
}

// AutoSyncState is the small persisted state of the auto-sync coordinator.
type AutoSyncState struct {
	LastBackupAt    time.Time `json:"last_backup_at"` // нулевое значение = бэкапа еще не было
	HasRestoredOnce bool      `json:"has_restored_once"`
}
