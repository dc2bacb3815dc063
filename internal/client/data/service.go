package data

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/iudanet/oneclickcopy/internal/client/storage"
	"github.com/iudanet/oneclickcopy/internal/clock"
	"github.com/iudanet/oneclickcopy/internal/models"
)

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс для работы с локальными документами
type Service interface {
	// Create stores a new document and returns it with the assigned ID
	Create(ctx context.Context, title, content string) (*models.Document, error)

	// List returns all documents, most recently updated first
	List(ctx context.Context) ([]models.Document, error)

	// Get returns a document by ID
	Get(ctx context.Context, id int64) (*models.Document, error)

	// Delete removes a document
	Delete(ctx context.Context, id int64) error

	// MergeRestored inserts restored documents as new local records.
	// Existing documents are never touched. Returns the number inserted.
	MergeRestored(ctx context.Context, docs []models.Document) (int, error)

	// Watch streams the document list after every change
	Watch(ctx context.Context) (<-chan []models.Document, error)
}

// service handles client-side document operations
type service struct {
	documents storage.DocumentStorage
	clock     clock.Clock
	logger    *slog.Logger
}

// NewService creates a new data service
func NewService(documents storage.DocumentStorage, clk clock.Clock, logger *slog.Logger) Service {
	return &service{
		documents: documents,
		clock:     clk,
		logger:    logger,
	}
}

func (s *service) Create(ctx context.Context, title, content string) (*models.Document, error) {
	now := s.clock.Now()
	doc := &models.Document{
		Title:     strings.TrimSpace(title),
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := s.documents.InsertDocument(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to insert document: %w", err)
	}
	return doc, nil
}

func (s *service) List(ctx context.Context) ([]models.Document, error) {
	docs, err := s.documents.ListDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, nil
}

func (s *service) Get(ctx context.Context, id int64) (*models.Document, error) {
	doc, err := s.documents.GetDocument(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get document %d: %w", id, err)
	}
	return doc, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.documents.DeleteDocument(ctx, id); err != nil {
		return fmt.Errorf("failed to delete document %d: %w", id, err)
	}
	return nil
}

// MergeRestored вставляет каждый документ как новую запись: новый ID,
// остальные поля (включая createdAt/updatedAt) сохраняются. Без дедупликации.
// Ошибка вставки одного документа не останавливает остальные.
func (s *service) MergeRestored(ctx context.Context, docs []models.Document) (int, error) {
	var errs []error
	inserted := 0

	for i := range docs {
		doc := docs[i].Clone()
		doc.ID = 0

		if _, err := s.documents.InsertDocument(ctx, &doc); err != nil {
			s.logger.Warn("Failed to insert restored document", "title", doc.Title, "error", err)
			errs = append(errs, fmt.Errorf("document %q: %w", doc.Title, err))
			continue
		}
		inserted++
	}

	s.logger.Info("Restored documents merged", "inserted", inserted, "failed", len(errs))

	if len(errs) > 0 {
		return inserted, fmt.Errorf("failed to merge %d of %d restored documents: %w", len(errs), len(docs), errors.Join(errs...))
	}
	return inserted, nil
}

func (s *service) Watch(ctx context.Context) (<-chan []models.Document, error) {
	ch, err := s.documents.WatchDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to watch documents: %w", err)
	}
	return ch, nil
}
