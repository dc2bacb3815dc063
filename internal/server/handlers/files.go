package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/iudanet/oneclickcopy/internal/clock"
	"github.com/iudanet/oneclickcopy/internal/models"
	"github.com/iudanet/oneclickcopy/internal/server/storage"
	"github.com/iudanet/oneclickcopy/pkg/api"
)

const (
	// DefaultMaxBlobSize ограничение на размер содержимого одного файла
	DefaultMaxBlobSize = 10 << 20

	defaultMimeType = "application/octet-stream"
)

// FilesHandler обслуживает /api/v1/files: хранилище файлов пользователя
type FilesHandler struct {
	logger  *slog.Logger
	storage storage.BlobStorage
	clock   clock.Clock
	maxSize int64
}

// NewFilesHandler создает handler файлов. maxSize <= 0 означает DefaultMaxBlobSize.
func NewFilesHandler(logger *slog.Logger, blobs storage.BlobStorage, clk clock.Clock, maxSize int64) *FilesHandler {
	if maxSize <= 0 {
		maxSize = DefaultMaxBlobSize
	}
	return &FilesHandler{
		logger:  logger,
		storage: blobs,
		clock:   clk,
		maxSize: maxSize,
	}
}

// Find обрабатывает GET /api/v1/files?name=
// Возвращает не удаленные файлы с таким именем, новые первыми
func (h *FilesHandler) Find(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	name := r.URL.Query().Get("name")
	if name == "" {
		h.sendError(w, "name is required", http.StatusBadRequest)
		return
	}

	blobs, err := h.storage.FindBlobsByName(ctx, userID, name)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to find files", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.FileListResponse{Files: make([]api.FileResponse, 0, len(blobs))}
	for _, b := range blobs {
		resp.Files = append(resp.Files, toFileResponse(b))
	}

	h.sendJSON(w, resp, http.StatusOK)
}

// Create обрабатывает POST /api/v1/files
func (h *FilesHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	// base64 раздувает содержимое примерно на треть
	limit := h.maxSize*4/3 + maxAuthBody
	var req api.CreateFileRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, limit)).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.sendError(w, "file is too large", http.StatusRequestEntityTooLarge)
			return
		}
		h.logger.WarnContext(ctx, "failed to decode create file request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Name == "" {
		h.sendError(w, "name is required", http.StatusBadRequest)
		return
	}
	if int64(len(req.Content)) > h.maxSize {
		h.sendError(w, "file is too large", http.StatusRequestEntityTooLarge)
		return
	}
	if req.MimeType == "" {
		req.MimeType = defaultMimeType
	}

	now := h.clock.Now()
	blob := &models.Blob{
		ID:         uuid.New().String(),
		UserID:     userID,
		Name:       req.Name,
		MimeType:   req.MimeType,
		Data:       req.Content,
		CreatedAt:  now,
		ModifiedAt: now,
	}

	if err := h.storage.CreateBlob(ctx, blob); err != nil {
		h.logger.ErrorContext(ctx, "failed to create file", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "file created",
		slog.String("user_id", userID),
		slog.String("file_id", blob.ID),
		slog.Int64("size", blob.Size))

	h.sendJSON(w, toFileResponse(blob), http.StatusCreated)
}

// PutContent обрабатывает PUT /api/v1/files/{id}/content
// Тело запроса целиком заменяет содержимое файла
func (h *FilesHandler) PutContent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		h.sendError(w, "id is required", http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxSize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.sendError(w, "file is too large", http.StatusRequestEntityTooLarge)
			return
		}
		h.logger.WarnContext(ctx, "failed to read file content", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	mimeType := ""
	if ct := r.Header.Get("Content-Type"); ct != "" {
		if mediaType, _, err := mime.ParseMediaType(ct); err == nil {
			mimeType = mediaType
		}
	}

	if err := h.storage.UpdateBlobContent(ctx, userID, id, mimeType, data, h.clock.Now()); err != nil {
		h.storageError(w, r, "failed to update file", err)
		return
	}

	blob, err := h.storage.GetBlob(ctx, userID, id)
	if err != nil {
		h.storageError(w, r, "failed to get file", err)
		return
	}

	h.logger.InfoContext(ctx, "file content updated",
		slog.String("user_id", userID),
		slog.String("file_id", id),
		slog.Int("size", len(data)))

	h.sendJSON(w, toFileResponse(blob), http.StatusOK)
}

// GetContent обрабатывает GET /api/v1/files/{id}/content
func (h *FilesHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	blob, err := h.storage.GetBlobContent(ctx, userID, r.PathValue("id"))
	if err != nil {
		h.storageError(w, r, "failed to get file content", err)
		return
	}

	w.Header().Set("Content-Type", blob.MimeType)
	w.Header().Set("Content-Length", strconv.Itoa(len(blob.Data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(blob.Data); err != nil {
		h.logger.WarnContext(ctx, "failed to write file content", slog.Any("error", err))
	}
}

// Delete обрабатывает DELETE /api/v1/files/{id}
// Файл переносится в корзину и перестает находиться через Find
func (h *FilesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")
	if err := h.storage.TrashBlob(ctx, userID, id, h.clock.Now()); err != nil {
		h.storageError(w, r, "failed to trash file", err)
		return
	}

	h.logger.InfoContext(ctx, "file trashed", slog.String("user_id", userID), slog.String("file_id", id))
	w.WriteHeader(http.StatusNoContent)
}

// userID достает пользователя, установленного AuthMiddleware
func (h *FilesHandler) userID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		h.logger.ErrorContext(r.Context(), "user ID not found in context")
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return "", false
	}
	return userID, true
}

func (h *FilesHandler) storageError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	if errors.Is(err, storage.ErrBlobNotFound) {
		h.sendError(w, "file not found", http.StatusNotFound)
		return
	}
	h.logger.ErrorContext(r.Context(), msg, slog.Any("error", err))
	h.sendError(w, "internal server error", http.StatusInternalServerError)
}

func (h *FilesHandler) sendJSON(w http.ResponseWriter, data any, statusCode int) {
	sendJSON(h.logger, w, data, statusCode)
}

func (h *FilesHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	sendError(h.logger, w, message, statusCode)
}

func toFileResponse(b *models.Blob) api.FileResponse {
	return api.FileResponse{
		ID:         b.ID,
		Name:       b.Name,
		MimeType:   b.MimeType,
		Size:       b.Size,
		ModifiedAt: b.ModifiedAt,
	}
}
