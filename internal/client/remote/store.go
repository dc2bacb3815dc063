// Package remote defines the contract of the cloud blob store used for backups.
package remote

import (
	"context"
	"time"
)

//go:generate moq -out blobstore_mock.go . BlobStore

// Object describes a stored blob without its content.
type Object struct {
	ModifiedAt time.Time
	ID         string
	Name       string
	MimeType   string
	Size       int64
}

// BlobStore is a named-object store scoped to the signed-in account.
// Trashed objects are never returned by FindByName.
type BlobStore interface {
	// FindByName returns the first non-trashed object with the given name.
	// Returns ErrObjectNotFound if there is none.
	FindByName(ctx context.Context, name string) (*Object, error)

	// Create stores a new object
	Create(ctx context.Context, name, mimeType string, data []byte) (*Object, error)

	// Update overwrites the content of an existing object in place
	Update(ctx context.Context, obj *Object, data []byte) error

	// Download returns the full content of the object
	Download(ctx context.Context, obj *Object) ([]byte, error)
}
