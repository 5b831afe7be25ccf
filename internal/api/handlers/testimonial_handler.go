package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leopard-dev/portfolio-backend/internal/services"
)

type TestimonialHandler struct {
	svc     services.TestimonialService
	uploads services.UploadService
}

func NewTestimonialHandler(svc services.TestimonialService, uploads services.UploadService) *TestimonialHandler {
	return &TestimonialHandler{svc: svc, uploads: uploads}
}

func (h *TestimonialHandler) List(c *gin.Context) {
	featured := c.Query("featured") == "true"

	testimonials, err := h.svc.List(c.Request.Context(), featured)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "testimonials": testimonials})
}

func (h *TestimonialHandler) Create(c *gin.Context) {
	var in services.TestimonialInput
	if err := c.ShouldBind(&in); err != nil {
		invalidBody(c, "TestimonialHandler.Create", err)
		return
	}

	if fh := formFile(c, "testimonial_avatar"); fh != nil {
		stored, err := h.uploads.SaveImage(fh)
		if err != nil {
			writeError(c, err)
			return
		}
		in.AvatarPath = stored.Path
	}

	testimonial, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     "Testimonial created successfully",
		"testimonial": testimonial,
	})
}

func (h *TestimonialHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var in services.TestimonialInput
	if err := c.ShouldBind(&in); err != nil {
		invalidBody(c, "TestimonialHandler.Update", err)
		return
	}

	if fh := formFile(c, "testimonial_avatar"); fh != nil {
		stored, err := h.uploads.SaveImage(fh)
		if err != nil {
			writeError(c, err)
			return
		}
		in.AvatarPath = stored.Path
	}

	if err := h.svc.Update(c.Request.Context(), id, in); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Testimonial updated successfully",
	})
}

func (h *TestimonialHandler) Delete(c *gin.Context) {
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
		"message": "Testimonial deleted successfully",
	})
}
