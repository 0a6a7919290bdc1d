package storage

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	storage Storage
}

func NewHandler(storage Storage) *Handler {
	return &Handler{storage: storage}
}

// --------------------------------------------------
// POST /api/upload
// --------------------------------------------------
func (h *Handler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})
		return
	}

	f, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return
	}
	defer f.Close()

	key := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(header.Filename))

	url, err := h.storage.Upload(c.Request.Context(), key, f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}

// --------------------------------------------------
// GET /api/upload?filename=...
// --------------------------------------------------
// Only available when uploads are stored locally; R2 serves its own URLs.
func (h *Handler) Download(c *gin.Context) {
	local, ok := h.storage.(*LocalStorage)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "downloads not served from this backend"})
		return
	}

	filename := c.Query("filename")
	if filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing filename"})
		return
	}

	f, err := local.Open(filename)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}
	f.Close()

	c.File(f.Name())
}
