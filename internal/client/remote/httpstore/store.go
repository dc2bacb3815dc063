package httpstore

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/iudanet/oneclickcopy/internal/client/remote"
	"github.com/iudanet/oneclickcopy/pkg/api"
)

// Store is a remote.BlobStore backed by the server files API
type Store struct {
	client *Client
}

var _ remote.BlobStore = (*Store)(nil)

// NewStore creates a blob store over the client
func NewStore(client *Client) *Store {
	return &Store{client: client}
}

func (s *Store) FindByName(ctx context.Context, name string) (*remote.Object, error) {
	body, err := s.client.authorized(ctx, http.MethodGet, "/api/v1/files?name="+url.QueryEscape(name), nil, "")
	if err != nil {
		return nil, fmt.Errorf("find %q: %w", name, err)
	}

	var resp api.FileListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode file list: %w", err)
	}
	if len(resp.Files) == 0 {
		return nil, remote.ErrObjectNotFound
	}
	return toObject(resp.Files[0]), nil
}

func (s *Store) Create(ctx context.Context, name, mimeType string, data []byte) (*remote.Object, error) {
	payload, err := json.Marshal(api.CreateFileRequest{Name: name, MimeType: mimeType, Content: data})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	body, err := s.client.authorized(ctx, http.MethodPost, "/api/v1/files", payload, contentTypeJSON)
	if err != nil {
		return nil, fmt.Errorf("create %q: %w", name, err)
	}

	var resp api.FileResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode file: %w", err)
	}
	return toObject(resp), nil
}

func (s *Store) Update(ctx context.Context, obj *remote.Object, data []byte) error {
	mimeType := obj.MimeType
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	if _, err := s.client.authorized(ctx, http.MethodPut, contentPath(obj.ID), data, mimeType); err != nil {
		return fmt.Errorf("update %s: %w", obj.ID, err)
	}
	return nil
}

func (s *Store) Download(ctx context.Context, obj *remote.Object) ([]byte, error) {
	body, err := s.client.authorized(ctx, http.MethodGet, contentPath(obj.ID), nil, "")
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", obj.ID, err)
	}
	return body, nil
}

func contentPath(id string) string {
	return "/api/v1/files/" + url.PathEscape(id) + "/content"
}

func toObject(f api.FileResponse) *remote.Object {
	return &remote.Object{
		ID:         f.ID,
		Name:       f.Name,
		MimeType:   f.MimeType,
		Size:       f.Size,
		ModifiedAt: f.ModifiedAt,
	}
}
