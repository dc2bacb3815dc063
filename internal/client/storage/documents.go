package storage

import (
	"context"

	"github.com/iudanet/oneclickcopy/internal/models"
)

//go:generate moq -out documentstorage_mock.go . DocumentStorage

// DocumentStorage is the durable keyed table of documents.
type DocumentStorage interface {
	// ListDocuments returns all documents ordered by UpdatedAt descending
	ListDocuments(ctx context.Context) ([]models.Document, error)

	// GetDocument retrieves a document by ID
	// Returns ErrDocumentNotFound if document doesn't exist
	GetDocument(ctx context.Context, id int64) (*models.Document, error)

	// InsertDocument stores a new document and returns the assigned ID.
	// doc.ID is ignored on input and set on success.
	InsertDocument(ctx context.Context, doc *models.Document) (int64, error)

	// UpdateDocument replaces an existing document
	// Returns ErrDocumentNotFound if document doesn't exist
	UpdateDocument(ctx context.Context, doc *models.Document) error

	// DeleteDocument removes a document
	// Returns ErrDocumentNotFound if document doesn't exist
	DeleteDocument(ctx context.Context, id int64) error

	// WatchDocuments streams the full ordered document list after every change.
	// The current list is delivered first. Only the latest snapshot is kept
	// for slow readers. The channel is closed when ctx is done.
	WatchDocuments(ctx context.Context) (<-chan []models.Document, error)
}
