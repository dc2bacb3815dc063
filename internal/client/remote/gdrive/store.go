package gdrive

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/iudanet/oneclickcopy/internal/client/remote"
)

// Scope grants access only to files created by this application.
const Scope = drive.DriveFileScope

const (
	fileFields = "id, name, mimeType, modifiedTime, size"
	listFields = "files(id, name, mimeType, modifiedTime, size)"

	// DefaultMaxDownloadSize ограничивает размер скачиваемого бэкапа
	DefaultMaxDownloadSize = 64 << 20
)

// Ensure Store implements remote.BlobStore.
var _ remote.BlobStore = (*Store)(nil)

// Store is a Google Drive backed remote.BlobStore.
type Store struct {
	svc         *drive.Service
	limiter     *RateLimiter
	logger      *slog.Logger
	maxDownload int64
}

// New creates a Drive store. Authentication is supplied through opts,
// usually option.WithTokenSource.
func New(ctx context.Context, logger *slog.Logger, opts ...option.ClientOption) (*Store, error) {
	svc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &Store{
		svc:         svc,
		limiter:     NewRateLimiter(DefaultRateLimit),
		logger:      logger,
		maxDownload: DefaultMaxDownloadSize,
	}, nil
}

// FindByName returns the first non-trashed file with the given name
func (s *Store) FindByName(ctx context.Context, name string) (*remote.Object, error) {
	query := fmt.Sprintf("name = '%s' and trashed = false", escapeQuery(name))

	var list *drive.FileList
	err := s.call(ctx, "find", func() error {
		var err error
		list, err = s.svc.Files.List().
			Q(query).
			Spaces("drive").
			Fields(listFields).
			PageSize(1).
			Context(ctx).
			Do()
		return err
	})
	if err != nil {
		return nil, err
	}

	if len(list.Files) == 0 {
		return nil, remote.ErrObjectNotFound
	}

	return toObject(list.Files[0]), nil
}

// Create uploads a new file
func (s *Store) Create(ctx context.Context, name, mimeType string, data []byte) (*remote.Object, error) {
	meta := &drive.File{Name: name, MimeType: mimeType}

	var created *drive.File
	err := s.call(ctx, "create", func() error {
		var err error
		created, err = s.svc.Files.Create(meta).
			Media(bytes.NewReader(data), googleapi.ContentType(mimeType)).
			Fields(fileFields).
			Context(ctx).
			Do()
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Drive file created", "id", created.Id, "size", len(data))
	return toObject(created), nil
}

// Update overwrites the content of an existing file, keeping its ID
func (s *Store) Update(ctx context.Context, obj *remote.Object, data []byte) error {
	mimeType := obj.MimeType
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	err := s.call(ctx, "update", func() error {
		_, err := s.svc.Files.Update(obj.ID, &drive.File{}).
			Media(bytes.NewReader(data), googleapi.ContentType(mimeType)).
			Fields(fileFields).
			Context(ctx).
			Do()
		return err
	})
	if err != nil {
		return err
	}

	s.logger.Debug("Drive file updated", "id", obj.ID, "size", len(data))
	return nil
}

// Download returns the content of a file
func (s *Store) Download(ctx context.Context, obj *remote.Object) ([]byte, error) {
	var data []byte
	err := s.call(ctx, "download", func() error {
		resp, err := s.svc.Files.Get(obj.ID).Context(ctx).Download()
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		// Лишний байт отличает файл ровно на лимите от обрезанного
		data, err = io.ReadAll(io.LimitReader(resp.Body, s.maxDownload+1))
		if err != nil {
			return fmt.Errorf("failed to read file content: %w", err)
		}
		if int64(len(data)) > s.maxDownload {
			data = nil
			return fmt.Errorf("%w: backup exceeds %d bytes", remote.ErrObjectTooLarge, s.maxDownload)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return data, nil
}

// call ждет лимитер, выполняет запрос и переводит ошибки Google API в ошибки remote
func (s *Store) call(ctx context.Context, op string, fn func() error) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("drive %s: %w", op, err)
	}

	err := fn()
	if err == nil {
		return nil
	}

	wrapped := wrapError(err)
	if errors.Is(wrapped, remote.ErrRateLimited) {
		s.limiter.RecordRateLimitError(retryAfter(err))
	}

	s.logger.Warn("Drive request failed", "op", op, "error", err)
	return fmt.Errorf("drive %s: %w", op, wrapped)
}

func toObject(f *drive.File) *remote.Object {
	obj := &remote.Object{
		ID:       f.Id,
		Name:     f.Name,
		MimeType: f.MimeType,
		Size:     f.Size,
	}
	if t, err := time.Parse(time.RFC3339, f.ModifiedTime); err == nil {
		obj.ModifiedAt = t
	}
	return obj
}

// escapeQuery экранирует строку для языка запросов Drive
func escapeQuery(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}
