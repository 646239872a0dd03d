package handlers

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/leafload/leafload-api/internal/httperr"
	"github.com/leafload/leafload-api/internal/upload"
)

// 5 MiB per image.
const maxUploadSize = 5 << 20

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type UploadHandler struct {
	storage upload.Storage
}

func NewUploadHandler(storage upload.Storage) *UploadHandler {
	return &UploadHandler{storage: storage}
}

// Image receives a multipart image, stores it under a random name and
// returns the path it will be served from. The original filename is only
// used for its extension.
func (h *UploadHandler) Image(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "No file provided")
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		httperr.BadRequest(c, "file_too_large", "File exceeds the 5 MB limit")
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExts[ext] {
		httperr.BadRequest(c, "unsupported_file_type", "Only jpg, jpeg, png, gif and webp images are allowed")
		return
	}

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	filename := uuid.NewString() + ext

	if err := h.storage.Save(c.Request.Context(), filename, contentType, io.LimitReader(file, maxUploadSize)); err != nil {
		httperr.Internal(c, "failed_to_store_file", "Could not store file.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"path": "/uploads/serve/" + filename,
	})
}

// Serve streams a previously uploaded image back.
func (h *UploadHandler) Serve(c *gin.Context) {
	filename := filepath.Base(c.Param("filename"))

	r, err := h.storage.Open(c.Request.Context(), filename)
	if err != nil {
		httperr.NotFound(c, "file_not_found", "File not found")
		return
	}
	defer r.Close()

	if contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename))); contentType != "" {
		c.Header("Content-Type", contentType)
	}

	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, r)
}
