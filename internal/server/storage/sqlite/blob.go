package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/oneclickcopy/internal/models"
	"github.com/iudanet/oneclickcopy/internal/server/storage"
)

const blobColumns = `id, user_id, name, mime_type, size, created_at, modified_at, trashed_at`

// CreateBlob stores a new blob with its content
func (s *Storage) CreateBlob(ctx context.Context, blob *models.Blob) error {
	query := `
		INSERT INTO blobs (id, user_id, name, mime_type, data, size, created_at, modified_at, trashed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	data := blob.Data
	if data == nil {
		data = []byte{}
	}

	_, err := s.db.ExecContext(ctx, query,
		blob.ID,
		blob.UserID,
		blob.Name,
		blob.MimeType,
		data,
		int64(len(data)),
		toMillis(blob.CreatedAt),
		toMillis(blob.ModifiedAt),
		nullMillis(blob.TrashedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert blob: %w", err)
	}

	blob.Size = int64(len(data))
	return nil
}

// FindBlobsByName returns non-trashed blobs with the given name, newest first
func (s *Storage) FindBlobsByName(ctx context.Context, userID, name string) ([]*models.Blob, error) {
	query := `
		SELECT ` + blobColumns + `
		FROM blobs
		WHERE user_id = ? AND name = ? AND trashed_at IS NULL
		ORDER BY modified_at DESC, created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to query blobs: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	blobs := make([]*models.Blob, 0)
	for rows.Next() {
		blob, err := scanBlob(rows)
		if err != nil {
			return nil, err
		}
		blobs = append(blobs, blob)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return blobs, nil
}

// GetBlob retrieves blob metadata without content
func (s *Storage) GetBlob(ctx context.Context, userID, id string) (*models.Blob, error) {
	query := `
		SELECT ` + blobColumns + `
		FROM blobs
		WHERE id = ? AND user_id = ? AND trashed_at IS NULL
	`

	blob, err := scanBlob(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrBlobNotFound
		}
		return nil, err
	}
	return blob, nil
}

// GetBlobContent retrieves blob metadata together with content
func (s *Storage) GetBlobContent(ctx context.Context, userID, id string) (*models.Blob, error) {
	query := `
		SELECT ` + blobColumns + `, data
		FROM blobs
		WHERE id = ? AND user_id = ? AND trashed_at IS NULL
	`

	blob := &models.Blob{}
	var createdAt, modifiedAt int64
	var trashedAt sql.NullInt64

	err := s.db.QueryRowContext(ctx, query, id, userID).Scan(
		&blob.ID,
		&blob.UserID,
		&blob.Name,
		&blob.MimeType,
		&blob.Size,
		&createdAt,
		&modifiedAt,
		&trashedAt,
		&blob.Data,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrBlobNotFound
		}
		return nil, fmt.Errorf("failed to get blob content: %w", err)
	}

	blob.CreatedAt = fromMillis(createdAt)
	blob.ModifiedAt = fromMillis(modifiedAt)
	blob.TrashedAt = timeFromNull(trashedAt)

	return blob, nil
}

// UpdateBlobContent overwrites the content and bumps modification time
func (s *Storage) UpdateBlobContent(ctx context.Context, userID, id, mimeType string, data []byte, modifiedAt time.Time) error {
	if data == nil {
		data = []byte{}
	}

	query := `
		UPDATE blobs
		SET data = ?, size = ?, mime_type = COALESCE(NULLIF(?, ''), mime_type), modified_at = ?
		WHERE id = ? AND user_id = ? AND trashed_at IS NULL
	`

	result, err := s.db.ExecContext(ctx, query,
		data,
		int64(len(data)),
		mimeType,
		toMillis(modifiedAt),
		id,
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update blob: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrBlobNotFound
	}

	return nil
}

// TrashBlob marks blob as trashed
func (s *Storage) TrashBlob(ctx context.Context, userID, id string, trashedAt time.Time) error {
	query := `UPDATE blobs SET trashed_at = ? WHERE id = ? AND user_id = ? AND trashed_at IS NULL`

	result, err := s.db.ExecContext(ctx, query, toMillis(trashedAt), id, userID)
	if err != nil {
		return fmt.Errorf("failed to trash blob: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrBlobNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBlob(row rowScanner) (*models.Blob, error) {
	blob := &models.Blob{}
	var createdAt, modifiedAt int64
	var trashedAt sql.NullInt64

	err := row.Scan(
		&blob.ID,
		&blob.UserID,
		&blob.Name,
		&blob.MimeType,
		&blob.Size,
		&createdAt,
		&modifiedAt,
		&trashedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan blob: %w", err)
	}

	blob.CreatedAt = fromMillis(createdAt)
	blob.ModifiedAt = fromMillis(modifiedAt)
	blob.TrashedAt = timeFromNull(trashedAt)

	return blob, nil
}
