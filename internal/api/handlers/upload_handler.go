package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/leopard-dev/portfolio-backend/internal/services"
	"github.com/leopard-dev/portfolio-backend/internal/utils"
)

type UploadHandler struct {
	svc        services.UploadService
	baseURL    string
	production bool
}

func NewUploadHandler(svc services.UploadService, baseURL string, production bool) *UploadHandler {
	return &UploadHandler{svc: svc, baseURL: baseURL, production: production}
}

// Single accepts one image under the "image" field and returns its stored
// path plus an absolute, cache-busted URL.
func (h *UploadHandler) Single(c *gin.Context) {
	fh := formFile(c, "image")
	if fh == nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "UploadHandler.Single", "No file uploaded", nil))
		return
	}

	stored, err := h.svc.SaveImage(fh)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "File uploaded successfully",
		"data": gin.H{
			"filename":     stored.FileName,
			"originalname": stored.OriginalName,
			"mimetype":     stored.MimeType,
			"size":         stored.Size,
			"path":         stored.Path,
			"url":          fmt.Sprintf("%s%s?t=%d", h.publicBase(c), stored.Path, time.Now().UnixMilli()),
		},
	})
}

func (h *UploadHandler) publicBase(c *gin.Context) string {
	base := h.baseURL
	if base == "" {
		scheme := "http"
		if c.Request.TLS != nil {
			scheme = "https"
		}
		base = scheme + "://" + c.Request.Host
	}
	if h.production && strings.HasPrefix(base, "http://") {
		base = "https://" + strings.TrimPrefix(base, "http://")
	}
	return base
}
