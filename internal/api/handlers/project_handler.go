package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pgrepo "github.com/leopard-dev/portfolio-backend/internal/repositories/postgres"
	"github.com/leopard-dev/portfolio-backend/internal/services"
)

type ProjectHandler struct {
	svc     services.ProjectService
	uploads services.UploadService
}

func NewProjectHandler(svc services.ProjectService, uploads services.UploadService) *ProjectHandler {
	return &ProjectHandler{svc: svc, uploads: uploads}
}

func (h *ProjectHandler) List(c *gin.Context) {
	f := pgrepo.ProjectFilter{
		FeaturedOnly: c.Query("featured") == "true",
		Status:       c.Query("status"),
	}

	projects, err := h.svc.List(c.Request.Context(), f)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "projects": projects})
}

func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	project, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "project": project})
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var in services.ProjectInput
	if err := c.ShouldBind(&in); err != nil {
		invalidBody(c, "ProjectHandler.Create", err)
		return
	}

	if fh := formFile(c, "project_image"); fh != nil {
		stored, err := h.uploads.SaveImage(fh)
		if err != nil {
			writeError(c, err)
			return
		}
		in.ImagePath = stored.Path
	}

	project, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Project created successfully",
		"project": project,
	})
}

func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var in services.ProjectInput
	if err := c.ShouldBind(&in); err != nil {
		invalidBody(c, "ProjectHandler.Update", err)
		return
	}

	if fh := formFile(c, "project_image"); fh != nil {
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
		"message": "Project updated successfully",
	})
}

func (h *ProjectHandler) Delete(c *gin.Context) {
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
		"message": "Project deleted successfully",
	})
}
