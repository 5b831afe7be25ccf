package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pgrepo "github.com/leopard-dev/portfolio-backend/internal/repositories/postgres"
	"github.com/leopard-dev/portfolio-backend/internal/services"
)

type GalleryHandler struct {
	svc     services.GalleryService
	uploads services.UploadService
}

func NewGalleryHandler(svc services.GalleryService, uploads services.UploadService) *GalleryHandler {
	return &GalleryHandler{svc: svc, uploads: uploads}
}

func (h *GalleryHandler) List(c *gin.Context) {
	f := pgrepo.GalleryFilter{
		Category:     c.Query("category"),
		FeaturedOnly: c.Query("featured") == "true",
	}

	gallery, err := h.svc.List(c.Request.Context(), f)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "gallery": gallery})
}

func (h *GalleryHandler) Categories(c *gin.Context) {
	categories, err := h.svc.Categories(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "categories": categories})
}

func (h *GalleryHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	item, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "gallery": item})
}

func (h *GalleryHandler) Create(c *gin.Context) {
	var in services.GalleryInput
	if err := c.ShouldBind(&in); err != nil {
		invalidBody(c, "GalleryHandler.Create", err)
		return
	}

	if fh := formFile(c, "gallery_image"); fh != nil {
		stored, err := h.uploads.SaveImage(fh)
		if err != nil {
			writeError(c, err)
			return
		}
		in.ImagePath = stored.Path
	}

	item, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Gallery image uploaded successfully",
		"gallery": item,
	})
}

func (h *GalleryHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var in services.GalleryInput
	if err := c.ShouldBind(&in); err != nil {
		invalidBody(c, "GalleryHandler.Update", err)
		return
	}

	if fh := formFile(c, "gallery_image"); fh != nil {
		stored, err := h.uploads.SaveImage(fh)
		if err != nil {
			writeError(c, err)
			return
		}
		in.ImagePath = stored.Path
	}

	if err := h.svc.Update(c.Request.Context(), id, in); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Gallery image updated successfully",
	})
}

func (h *GalleryHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Gallery image deleted successfully",
	})
}
