package services

import (
	"context"
	"errors"

	"github.com/leopard-dev/portfolio-backend/internal/cache"
	"github.com/leopard-dev/portfolio-backend/internal/models"
	pgrepo "github.com/leopard-dev/portfolio-backend/internal/repositories/postgres"
	"github.com/leopard-dev/portfolio-backend/internal/utils"
)

const galleryCategoriesKey = "gallery:categories"

type GalleryInput struct {
	Title       string            `json:"title" form:"title"`
	Description string            `json:"description" form:"description"`
	Category    string            `json:"category" form:"category"`
	Tags        models.StringList `json:"tags" form:"tags"`
	IsFeatured  bool              `json:"is_featured" form:"is_featured"`
	SortOrder   int               `json:"sort_order" form:"sort_order"`

	ImagePath string `json:"-" form:"-"`
}

type GalleryService interface {
	List(ctx context.Context, f pgrepo.GalleryFilter) ([]models.GalleryItem, error)
	Categories(ctx context.Context) ([]string, error)
	Get(ctx context.Context, id uint) (*models.GalleryItem, error)
	Create(ctx context.Context, in GalleryInput) (*models.GalleryItem, error)
	Update(ctx context.Context, id uint, in GalleryInput) error
	Delete(ctx context.Context, id uint) error
}

type galleryService struct {
	gallery pgrepo.GalleryRepository
	files   UploadService
	cache   cache.Cache // optional
}

func NewGalleryService(gallery pgrepo.GalleryRepository, files UploadService, c cache.Cache) GalleryService {
	return &galleryService{gallery: gallery, files: files, cache: c}
}

func (s *galleryService) List(ctx context.Context, f pgrepo.GalleryFilter) ([]models.GalleryItem, error) {
	const op = "GalleryService.List"

	out, err := s.gallery.List(ctx, f)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list gallery", err)
	}
	return out, nil
}

func (s *galleryService) Categories(ctx context.Context) ([]string, error) {
	const op = "GalleryService.Categories"

	if s.cache != nil {
		var cached []string
		if hit, err := s.cache.GetJSON(ctx, galleryCategoriesKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	out, err := s.gallery.Categories(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list gallery categories", err)
	}
	if out == nil {
		out = []string{}
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, galleryCategoriesKey, out, listCacheTTL)
	}
	return out, nil
}

func (s *galleryService) Get(ctx context.Context, id uint) (*models.GalleryItem, error) {
	const op = "GalleryService.Get"

	g, err := s.gallery.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "Gallery item not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get gallery item", err)
	}
	return g, nil
}

func (s *galleryService) Create(ctx context.Context, in GalleryInput) (*models.GalleryItem, error) {
	const op = "GalleryService.Create"

	var fields []utils.FieldError
	if in.Title == "" {
		fields = append(fields, utils.FieldError{Field: "title", Message: "Title is required"})
	}
	if in.ImagePath == "" {
		fields = append(fields, utils.FieldError{Field: "gallery_image", Message: "Image file is required"})
	}
	if len(fields) > 0 {
		return nil, utils.Ev(op, fields)
	}

	row := &models.GalleryItem{
		Title:        in.Title,
		Description:  in.Description,
		ImageURL:     in.ImagePath,
		ThumbnailURL: in.ImagePath, // full image doubles as thumbnail
		Category:     in.Category,
		Tags:         in.Tags.JSON(),
		IsFeatured:   in.IsFeatured,
		SortOrder:    in.SortOrder,
	}
	if err := s.gallery.Insert(ctx, row); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create gallery item", err)
	}

	out, err := s.gallery.GetByID(ctx, row.ID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to reload gallery item", err)
	}

	s.invalidate(ctx)
	return out, nil
}

func (s *galleryService) Update(ctx context.Context, id uint, in GalleryInput) error {
	const op = "GalleryService.Update"

	if in.Title == "" {
		return utils.Ev(op, []utils.FieldError{{Field: "title", Message: "Title is required"}})
	}

	updates := map[string]any{
		"title":       in.Title,
		"description": in.Description,
		"category":    in.Category,
		"tags":        in.Tags.JSON(),
		"is_featured": in.IsFeatured,
		"sort_order":  in.SortOrder,
	}

	if in.ImagePath != "" {
		if existing, err := s.gallery.GetByID(ctx, id); err == nil && existing.ImageURL != "" {
			s.files.Remove(existing.ImageURL)
		}
		updates["image_url"] = in.ImagePath
		updates["thumbnail_url"] = in.ImagePath
	}

	if err := s.gallery.Update(ctx, id, updates); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Gallery item not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to update gallery item", err)
	}

	s.invalidate(ctx)
	return nil
}

func (s *galleryService) Delete(ctx context.Context, id uint) error {
	const op = "GalleryService.Delete"

	existing, err := s.gallery.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Gallery item not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to get gallery item", err)
	}
	if existing.ImageURL != "" {
		s.files.Remove(existing.ImageURL)
	}

	if err := s.gallery.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Gallery item not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete gallery item", err)
	}

	s.invalidate(ctx)
	return nil
}

func (s *galleryService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Del(ctx, galleryCategoriesKey)
}
