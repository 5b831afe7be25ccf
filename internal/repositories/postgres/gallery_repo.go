package postgres

import (
	"context"
	"errors"

	"github.com/leopard-dev/portfolio-backend/internal/models"
	"github.com/leopard-dev/portfolio-backend/internal/utils"
	"gorm.io/gorm"
)

type GalleryFilter struct {
	Category     string
	FeaturedOnly bool
}

type GalleryRepository interface {
	List(ctx context.Context, f GalleryFilter) ([]models.GalleryItem, error)
	Categories(ctx context.Context) ([]string, error)
	GetByID(ctx context.Context, id uint) (*models.GalleryItem, error)
	Insert(ctx context.Context, g *models.GalleryItem) error
	Update(ctx context.Context, id uint, fields map[string]any) error
	Delete(ctx context.Context, id uint) error
}

type galleryRepo struct {
	db *gorm.DB
}

func NewGalleryRepo(db *gorm.DB) GalleryRepository {
	return &galleryRepo{db: db}
}

func (r *galleryRepo) List(ctx context.Context, f GalleryFilter) ([]models.GalleryItem, error) {
	q := r.db.WithContext(ctx).Model(&models.GalleryItem{})
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.FeaturedOnly {
		q = q.Where("is_featured = ?", true)
	}

	var out []models.GalleryItem
	err := q.Order("sort_order ASC, created_at DESC").Find(&out).Error
	return out, err
}

func (r *galleryRepo) Categories(ctx context.Context) ([]string, error) {
	var out []string
	err := r.db.WithContext(ctx).
		Model(&models.GalleryItem{}).
		Distinct("category").
		Where("category IS NOT NULL AND category <> ''").
		Order("category").
		Pluck("category", &out).Error
	return out, err
}

func (r *galleryRepo) GetByID(ctx context.Context, id uint) (*models.GalleryItem, error) {
	var g models.GalleryItem
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&g).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &g, err
}

func (r *galleryRepo) Insert(ctx context.Context, g *models.GalleryItem) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *galleryRepo) Update(ctx context.Context, id uint, fields map[string]any) error {
	res := r.db.WithContext(ctx).
		Model(&models.GalleryItem{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *galleryRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.GalleryItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}
