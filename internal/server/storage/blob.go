package storage

import (
	"context"
	"time"

	"github.com/iudanet/oneclickcopy/internal/models"
)

// BlobStorage defines interface for per-user file persistence.
// Every method is scoped by userID: a blob of another user behaves as missing.
type BlobStorage interface {
	// CreateBlob stores a new blob with its content
	CreateBlob(ctx context.Context, blob *models.Blob) error

	// FindBlobsByName returns non-trashed blobs with the given name,
	// most recently modified first. Returns empty slice if none found
	FindBlobsByName(ctx context.Context, userID, name string) ([]*models.Blob, error)

	// GetBlob retrieves blob metadata without content
	// Returns ErrBlobNotFound if blob doesn't exist or is trashed
	GetBlob(ctx context.Context, userID, id string) (*models.Blob, error)

	// GetBlobContent retrieves blob metadata together with content
	// Returns ErrBlobNotFound if blob doesn't exist or is trashed
	GetBlobContent(ctx context.Context, userID, id string) (*models.Blob, error)

	// UpdateBlobContent overwrites the content and bumps modification time
	// Returns ErrBlobNotFound if blob doesn't exist or is trashed
	UpdateBlobContent(ctx context.Context, userID, id, mimeType string, data []byte, modifiedAt time.Time) error

	// TrashBlob marks blob as trashed; trashed blobs are invisible to reads
	// Returns ErrBlobNotFound if blob doesn't exist or is already trashed
	TrashBlob(ctx context.Context, userID, id string, trashedAt time.Time) error
}
