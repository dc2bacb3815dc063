package api

import "time"

// FileResponse описывает сохраненный объект без содержимого
type FileResponse struct {
	ModifiedAt time.Time `json:"modified_at"`
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	MimeType   string    `json:"mime_type"`
	Size       int64     `json:"size"`
}

// FileListResponse представляет результат поиска по имени
type FileListResponse struct {
	Files []FileResponse `json:"files"`
}

// CreateFileRequest представляет запрос на создание объекта.
// Content передается в base64 (стандартное кодирование []byte в JSON).
type CreateFileRequest struct {
	Name     string `json:"name"`
	MimeType string `json:"mime_type"`
	Content  []byte `json:"content"`
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status string `json:"status"`
}
