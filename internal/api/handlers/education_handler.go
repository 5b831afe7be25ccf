package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leopard-dev/portfolio-backend/internal/services"
)

type EducationHandler struct {
	svc services.EducationService
}

func NewEducationHandler(svc services.EducationService) *EducationHandler {
	return &EducationHandler{svc: svc}
}

func (h *EducationHandler) List(c *gin.Context) {
	education, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "education": education})
}

func (h *EducationHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	education, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "education": education})
}

func (h *EducationHandler) Create(c *gin.Context) {
	var in services.EducationInput
	if err := c.ShouldBind(&in); err != nil {
		invalidBody(c, "EducationHandler.Create", err)
		return
	}

	education, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   "Education record created successfully",
		"education": education,
	})
}

func (h *EducationHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var in services.EducationInput
	if err := c.ShouldBind(&in); err != nil {
		invalidBody(c, "EducationHandler.Update", err)
		return
	}

	if err := h.svc.Update(c.Request.Context(), id, in); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Education record updated successfully",
	})
}

func (h *EducationHandler) Delete(c *gin.Context) {
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
		"message": "Education record deleted successfully",
	})
}
