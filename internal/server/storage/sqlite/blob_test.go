package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/oneclickcopy/internal/models"
	"github.com/iudanet/oneclickcopy/internal/server/storage"
)

func newTestBlob(userID, name string, data []byte, modifiedAt time.Time) *models.Blob {
	return &models.Blob{
		ID:         uuid.New().String(),
		UserID:     userID,
		Name:       name,
		MimeType:   "application/json",
		Data:       data,
		CreatedAt:  modifiedAt,
		ModifiedAt: modifiedAt,
	}
}

func TestBlobStorage_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	blob := newTestBlob(userID, "backup.json", []byte(`{"documents":[]}`), time.Now())

	require.NoError(t, s.CreateBlob(ctx, blob))
	assert.Equal(t, int64(16), blob.Size)

	meta, err := s.GetBlob(ctx, userID, blob.ID)
	require.NoError(t, err)
	assert.Equal(t, blob.Name, meta.Name)
	assert.Equal(t, "application/json", meta.MimeType)
	assert.Equal(t, int64(16), meta.Size)
	assert.Nil(t, meta.Data)
	assert.Nil(t, meta.TrashedAt)

	full, err := s.GetBlobContent(ctx, userID, blob.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"documents":[]}`), full.Data)
	assert.WithinDuration(t, blob.ModifiedAt, full.ModifiedAt, time.Millisecond)
}

func TestBlobStorage_CreateEmptyContent(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	blob := newTestBlob(userID, "empty", nil, time.Now())
	require.NoError(t, s.CreateBlob(ctx, blob))

	full, err := s.GetBlobContent(ctx, userID, blob.ID)
	require.NoError(t, err)
	assert.Empty(t, full.Data)
	assert.Zero(t, full.Size)
}

func TestBlobStorage_IsolatedPerUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	owner := createTestUser(t, ctx, s)
	other := createTestUser(t, ctx, s)

	blob := newTestBlob(owner, "backup.json", []byte("secret"), time.Now())
	require.NoError(t, s.CreateBlob(ctx, blob))

	_, err := s.GetBlob(ctx, other, blob.ID)
	assert.ErrorIs(t, err, storage.ErrBlobNotFound)

	_, err = s.GetBlobContent(ctx, other, blob.ID)
	assert.ErrorIs(t, err, storage.ErrBlobNotFound)

	err = s.UpdateBlobContent(ctx, other, blob.ID, "", []byte("stolen"), time.Now())
	assert.ErrorIs(t, err, storage.ErrBlobNotFound)

	err = s.TrashBlob(ctx, other, blob.ID, time.Now())
	assert.ErrorIs(t, err, storage.ErrBlobNotFound)

	found, err := s.FindBlobsByName(ctx, other, "backup.json")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestBlobStorage_FindBlobsByName(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	now := time.Now()

	older := newTestBlob(userID, "backup.json", []byte("old"), now.Add(-time.Hour))
	newer := newTestBlob(userID, "backup.json", []byte("new"), now)
	trashed := newTestBlob(userID, "backup.json", []byte("gone"), now.Add(time.Hour))
	otherName := newTestBlob(userID, "notes.txt", []byte("x"), now)

	for _, b := range []*models.Blob{older, newer, trashed, otherName} {
		require.NoError(t, s.CreateBlob(ctx, b))
	}
	require.NoError(t, s.TrashBlob(ctx, userID, trashed.ID, now))

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{
			name:    "newest first, trashed excluded",
			query:   "backup.json",
			wantIDs: []string{newer.ID, older.ID},
		},
		{
			name:    "exact name match",
			query:   "notes.txt",
			wantIDs: []string{otherName.ID},
		},
		{
			name:    "no match",
			query:   "missing",
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := s.FindBlobsByName(ctx, userID, tt.query)
			require.NoError(t, err)

			ids := make([]string, 0, len(found))
			for _, b := range found {
				ids = append(ids, b.ID)
				assert.Nil(t, b.Data)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestBlobStorage_UpdateBlobContent(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	created := time.Now().Add(-time.Hour)
	blob := newTestBlob(userID, "backup.json", []byte("v1"), created)
	require.NoError(t, s.CreateBlob(ctx, blob))

	modified := time.Now()
	require.NoError(t, s.UpdateBlobContent(ctx, userID, blob.ID, "", []byte("version two"), modified))

	full, err := s.GetBlobContent(ctx, userID, blob.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("version two"), full.Data)
	assert.Equal(t, int64(11), full.Size)
	// Пустой mime type сохраняет прежний
	assert.Equal(t, "application/json", full.MimeType)
	assert.WithinDuration(t, modified, full.ModifiedAt, time.Millisecond)
	assert.WithinDuration(t, created, full.CreatedAt, time.Millisecond)

	require.NoError(t, s.UpdateBlobContent(ctx, userID, blob.ID, "text/plain", []byte("v3"), modified))
	meta, err := s.GetBlob(ctx, userID, blob.ID)
	require.NoError(t, err)
	assert.Equal(t, "text/plain", meta.MimeType)

	err = s.UpdateBlobContent(ctx, userID, "nonexistent", "", []byte("x"), modified)
	assert.ErrorIs(t, err, storage.ErrBlobNotFound)
}

func TestBlobStorage_TrashBlob(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	blob := newTestBlob(userID, "backup.json", []byte("data"), time.Now())
	require.NoError(t, s.CreateBlob(ctx, blob))

	require.NoError(t, s.TrashBlob(ctx, userID, blob.ID, time.Now()))

	_, err := s.GetBlob(ctx, userID, blob.ID)
	assert.ErrorIs(t, err, storage.ErrBlobNotFound)

	err = s.UpdateBlobContent(ctx, userID, blob.ID, "", []byte("x"), time.Now())
	assert.ErrorIs(t, err, storage.ErrBlobNotFound)

	// Повторное удаление
	err = s.TrashBlob(ctx, userID, blob.ID, time.Now())
	assert.ErrorIs(t, err, storage.ErrBlobNotFound)
}
