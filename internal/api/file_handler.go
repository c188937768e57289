package api

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hrithikqw/Invoice-Tracker-App/internal/application/port"
	"github.com/hrithikqw/Invoice-Tracker-App/internal/auth"
)

// allowedExtensions lists the upload types accepted for invoice documents
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// FileHandler serves invoice document uploads
type FileHandler struct {
	storage        port.FileStorage
	maxUploadBytes int64
	logger         *zap.Logger
}

// NewFileHandler creates a new file handler
func NewFileHandler(storage port.FileStorage, maxUploadBytes int64, logger *zap.Logger) *FileHandler {
	return &FileHandler{storage: storage, maxUploadBytes: maxUploadBytes, logger: logger}
}

// Upload stores a multipart invoice document and returns its public URL
func (h *FileHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		respondError(c, h.logger, validationError("missing file field"))
		return
	}

	if header.Size > h.maxUploadBytes {
		respondError(c, h.logger, validationError("file exceeds %d byte limit", h.maxUploadBytes))
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		respondError(c, h.logger, validationError("unsupported file type %q", ext))
		return
	}

	f, err := header.Open()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, h.maxUploadBytes+1))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if int64(len(content)) > h.maxUploadBytes {
		respondError(c, h.logger, validationError("file exceeds %d byte limit", h.maxUploadBytes))
		return
	}

	stored, err := h.storage.Save(c.Request.Context(), auth.Principal(c), header.Filename, content)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Info("File uploaded",
		zap.String("owner", auth.Principal(c)),
		zap.String("path", stored.Path),
		zap.Int("bytes", len(content)))
	c.JSON(http.StatusCreated, gin.H{"file_url": stored.URL, "path": stored.Path})
}

// Download serves a previously uploaded document. Lookups are confined to the
// authenticated user's namespace, so another user's filename reads as missing.
func (h *FileHandler) Download(c *gin.Context) {
	name := filepath.Base(c.Param("name"))
	relPath := filepath.Join(auth.Principal(c), name)

	content, err := h.storage.Read(c.Request.Context(), relPath)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Data(http.StatusOK, contentType, content)
}
