package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/leopard-dev/portfolio-backend/internal/cache"
	"github.com/leopard-dev/portfolio-backend/internal/models"
	pgrepo "github.com/leopard-dev/portfolio-backend/internal/repositories/postgres"
	"github.com/leopard-dev/portfolio-backend/internal/utils"
)

type ProjectInput struct {
	Title           string            `json:"title" form:"title"`
	Description     string            `json:"description" form:"description"`
	LongDescription string            `json:"long_description" form:"long_description"`
	Technologies    models.StringList `json:"technologies" form:"technologies"`
	GalleryImages   models.StringList `json:"gallery_images" form:"gallery_images"`
	GithubURL       string            `json:"github_url" form:"github_url"`
	DemoURL         string            `json:"demo_url" form:"demo_url"`
	IsFeatured      bool              `json:"is_featured" form:"is_featured"`
	Status          string            `json:"status" form:"status"`
	SortOrder       int               `json:"sort_order" form:"sort_order"`

	// ImagePath is the stored path of a freshly uploaded image, set by the
	// handler after the upload service accepted the file.
	ImagePath string `json:"-" form:"-"`
}

func (in *ProjectInput) validate() []utils.FieldError {
	var fields []utils.FieldError
	if in.Title == "" {
		fields = append(fields, utils.FieldError{Field: "title", Message: "Project title is required"})
	}
	if in.Description == "" {
		fields = append(fields, utils.FieldError{Field: "description", Message: "Project description is required"})
	}
	if in.Status == "" {
		in.Status = string(models.ProjectCompleted)
	} else if !models.ValidProjectStatus(in.Status) {
		fields = append(fields, utils.FieldError{Field: "status", Message: "Status must be one of completed, in_progress, planned"})
	}
	return fields
}

type ProjectService interface {
	List(ctx context.Context, f pgrepo.ProjectFilter) ([]models.Project, error)
	Get(ctx context.Context, id uint) (*models.Project, error)
	Create(ctx context.Context, in ProjectInput) (*models.Project, error)
	Update(ctx context.Context, id uint, in ProjectInput) error
	Delete(ctx context.Context, id uint) error
}

type projectService struct {
	projects pgrepo.ProjectRepository
	files    UploadService
	cache    cache.Cache // optional
}

func NewProjectService(projects pgrepo.ProjectRepository, files UploadService, c cache.Cache) ProjectService {
	return &projectService{projects: projects, files: files, cache: c}
}

func (s *projectService) List(ctx context.Context, f pgrepo.ProjectFilter) ([]models.Project, error) {
	const op = "ProjectService.List"

	key := fmt.Sprintf("projects:featured=%t:status=%s", f.FeaturedOnly, f.Status)
	if s.cache != nil {
		var cached []models.Project
		if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	out, err := s.projects.List(ctx, f)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list projects", err)
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, key, out, listCacheTTL)
	}
	return out, nil
}

func (s *projectService) Get(ctx context.Context, id uint) (*models.Project, error) {
	const op = "ProjectService.Get"

	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "Project not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get project", err)
	}
	return p, nil
}

func (s *projectService) Create(ctx context.Context, in ProjectInput) (*models.Project, error) {
	const op = "ProjectService.Create"

	if fields := in.validate(); len(fields) > 0 {
		return nil, utils.Ev(op, fields)
	}

	row := &models.Project{
		Title:           in.Title,
		Description:     in.Description,
		LongDescription: in.LongDescription,
		Technologies:    in.Technologies.JSON(),
		ImageURL:        in.ImagePath,
		GalleryImages:   in.GalleryImages.JSON(),
		GithubURL:       in.GithubURL,
		DemoURL:         in.DemoURL,
		IsFeatured:      in.IsFeatured,
		Status:          models.ProjectStatus(in.Status),
		SortOrder:       in.SortOrder,
	}
	if err := s.projects.Insert(ctx, row); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create project", err)
	}

	out, err := s.projects.GetByID(ctx, row.ID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to reload project", err)
	}

	s.invalidate(ctx)
	return out, nil
}

func (s *projectService) Update(ctx context.Context, id uint, in ProjectInput) error {
	const op = "ProjectService.Update"

	if fields := in.validate(); len(fields) > 0 {
		return utils.Ev(op, fields)
	}

	updates := map[string]any{
		"title":            in.Title,
		"description":      in.Description,
		"long_description": in.LongDescription,
		"technologies":     in.Technologies.JSON(),
		"gallery_images":   in.GalleryImages.JSON(),
		"github_url":       in.GithubURL,
		"demo_url":         in.DemoURL,
		"is_featured":      in.IsFeatured,
		"status":           in.Status,
		"sort_order":       in.SortOrder,
	}

	if in.ImagePath != "" {
		// Replace the stored image; removal of the old file is best-effort
		// and not transactional with the row update.
		if existing, err := s.projects.GetByID(ctx, id); err == nil && existing.ImageURL != "" {
			s.files.Remove(existing.ImageURL)
		}
		updates["image_url"] = in.ImagePath
	}

	if err := s.projects.Update(ctx, id, updates); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Project not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to update project", err)
	}

	s.invalidate(ctx)
	return nil
}

func (s *projectService) Delete(ctx context.Context, id uint) error {
	const op = "ProjectService.Delete"

	existing, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Project not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to get project", err)
	}
	if existing.ImageURL != "" {
		s.files.Remove(existing.ImageURL)
	}

	if err := s.projects.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Project not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete project", err)
	}

	s.invalidate(ctx)
	return nil
}

func (s *projectService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	keys := make([]string, 0, 8)
	for _, featured := range []bool{true, false} {
		for _, st := range []string{"", "completed", "in_progress", "planned"} {
			keys = append(keys, fmt.Sprintf("projects:featured=%t:status=%s", featured, st))
		}
	}
	_ = s.cache.Del(ctx, keys...)
}
