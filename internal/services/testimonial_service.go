package services

import (
	"context"
	"errors"

	"github.com/leopard-dev/portfolio-backend/internal/models"
	pgrepo "github.com/leopard-dev/portfolio-backend/internal/repositories/postgres"
	"github.com/leopard-dev/portfolio-backend/internal/utils"
)

type TestimonialInput struct {
	Name       string `json:"name" form:"name"`
	Position   string `json:"position" form:"position"`
	Company    string `json:"company" form:"company"`
	Content    string `json:"content" form:"content"`
	Rating     *int   `json:"rating" form:"rating"`
	IsFeatured bool   `json:"is_featured" form:"is_featured"`
	SortOrder  int    `json:"sort_order" form:"sort_order"`

	AvatarPath string `json:"-" form:"-"`
}

func (in TestimonialInput) validate() []utils.FieldError {
	var fields []utils.FieldError
	if in.Name == "" {
		fields = append(fields, utils.FieldError{Field: "name", Message: "Name is required"})
	}
	if in.Content == "" {
		fields = append(fields, utils.FieldError{Field: "content", Message: "Content is required"})
	}
	if in.Rating == nil || *in.Rating < 1 || *in.Rating > 5 {
		fields = append(fields, utils.FieldError{Field: "rating", Message: "Rating must be between 1 and 5"})
	}
	return fields
}

type TestimonialService interface {
	List(ctx context.Context, featuredOnly bool) ([]models.Testimonial, error)
	Create(ctx context.Context, in TestimonialInput) (*models.Testimonial, error)
	Update(ctx context.Context, id uint, in TestimonialInput) error
	Delete(ctx context.Context, id uint) error
}

type testimonialService struct {
	testimonials pgrepo.TestimonialRepository
	files        UploadService
}

func NewTestimonialService(testimonials pgrepo.TestimonialRepository, files UploadService) TestimonialService {
	return &testimonialService{testimonials: testimonials, files: files}
}

func (s *testimonialService) List(ctx context.Context, featuredOnly bool) ([]models.Testimonial, error) {
	const op = "TestimonialService.List"

	out, err := s.testimonials.List(ctx, featuredOnly)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list testimonials", err)
	}
	return out, nil
}

func (s *testimonialService) Create(ctx context.Context, in TestimonialInput) (*models.Testimonial, error) {
	const op = "TestimonialService.Create"

	if fields := in.validate(); len(fields) > 0 {
		return nil, utils.Ev(op, fields)
	}

	row := &models.Testimonial{
		Name:       in.Name,
		Position:   in.Position,
		Company:    in.Company,
		Content:    in.Content,
		AvatarURL:  in.AvatarPath,
		Rating:     *in.Rating,
		IsFeatured: in.IsFeatured,
		SortOrder:  in.SortOrder,
	}
	if err := s.testimonials.Insert(ctx, row); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create testimonial", err)
	}

	out, err := s.testimonials.GetByID(ctx, row.ID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to reload testimonial", err)
	}
	return out, nil
}

func (s *testimonialService) Update(ctx context.Context, id uint, in TestimonialInput) error {
	const op = "TestimonialService.Update"

	if fields := in.validate(); len(fields) > 0 {
		return utils.Ev(op, fields)
	}

	updates := map[string]any{
		"name":        in.Name,
		"position":    in.Position,
		"company":     in.Company,
		"content":     in.Content,
		"rating":      *in.Rating,
		"is_featured": in.IsFeatured,
		"sort_order":  in.SortOrder,
	}

	if in.AvatarPath != "" {
		if existing, err := s.testimonials.GetByID(ctx, id); err == nil && existing.AvatarURL != "" {
			s.files.Remove(existing.AvatarURL)
		}
		updates["avatar_url"] = in.AvatarPath
	}

	if err := s.testimonials.Update(ctx, id, updates); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Testimonial not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to update testimonial", err)
	}
	return nil
}

func (s *testimonialService) Delete(ctx context.Context, id uint) error {
	const op = "TestimonialService.Delete"

	existing, err := s.testimonials.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Testimonial not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to get testimonial", err)
	}
	if existing.AvatarURL != "" {
		s.files.Remove(existing.AvatarURL)
	}

	if err := s.testimonials.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Testimonial not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete testimonial", err)
	}
	return nil
}
