package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leopard-dev/portfolio-backend/internal/services"
)

type ProfileHandler struct {
	svc     services.ProfileService
	uploads services.UploadService
}

func NewProfileHandler(svc services.ProfileService, uploads services.UploadService) *ProfileHandler {
	return &ProfileHandler{svc: svc, uploads: uploads}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "profile": p})
}

func (h *ProfileHandler) Update(c *gin.Context) {
	var in services.ProfileInput
	if err := c.ShouldBind(&in); err != nil {
		invalidBody(c, "ProfileHandler.Update", err)
		return
	}

	if fh := formFile(c, "profile_image"); fh != nil {
		stored, err := h.uploads.SaveImage(fh)
		if err != nil {
			writeError(c, err)
			return
		}
		in.ImagePath = stored.Path
	}

	created, wasCreated, err := h.svc.Upsert(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}

	if wasCreated {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Profile created successfully",
			"profile": created,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile updated successfully",
	})
}
