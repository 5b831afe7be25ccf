package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leopard-dev/portfolio-backend/internal/services"
)

type SkillHandler struct {
	svc services.SkillService
}

func NewSkillHandler(svc services.SkillService) *SkillHandler {
	return &SkillHandler{svc: svc}
}

func (h *SkillHandler) List(c *gin.Context) {
	featured := c.Query("featured") == "true"

	skills, err := h.svc.List(c.Request.Context(), featured)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "skills": skills})
}

func (h *SkillHandler) Create(c *gin.Context) {
	var in services.SkillInput
	if err := c.ShouldBind(&in); err != nil {
		invalidBody(c, "SkillHandler.Create", err)
		return
	}

	skill, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Skill created successfully",
		"skill":   skill,
	})
}

func (h *SkillHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var in services.SkillInput
	if err := c.ShouldBind(&in); err != nil {
		invalidBody(c, "SkillHandler.Update", err)
		return
	}

	if err := h.svc.Update(c.Request.Context(), id, in); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Skill updated successfully",
	})
}

func (h *SkillHandler) Delete(c *gin.Context) {
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
		"message": "Skill deleted successfully",
	})
}
