package postgres

import (
	"context"
	"errors"

	"github.com/leopard-dev/portfolio-backend/internal/models"
	"github.com/leopard-dev/portfolio-backend/internal/utils"
	"gorm.io/gorm"
)

type TestimonialRepository interface {
	List(ctx context.Context, featuredOnly bool) ([]models.Testimonial, error)
	GetByID(ctx context.Context, id uint) (*models.Testimonial, error)
	Insert(ctx context.Context, t *models.Testimonial) error
	Update(ctx context.Context, id uint, fields map[string]any) error
	Delete(ctx context.Context, id uint) error
}

type testimonialRepo struct {
	db *gorm.DB
}

func NewTestimonialRepo(db *gorm.DB) TestimonialRepository {
	return &testimonialRepo{db: db}
}

func (r *testimonialRepo) List(ctx context.Context, featuredOnly bool) ([]models.Testimonial, error) {
	q := r.db.WithContext(ctx).Model(&models.Testimonial{})
	if featuredOnly {
		q = q.Where("is_featured = ?", true)
	}

	var out []models.Testimonial
	err := q.Order("sort_order ASC, created_at DESC").Find(&out).Error
	return out, err
}

func (r *testimonialRepo) GetByID(ctx context.Context, id uint) (*models.Testimonial, error) {
	var t models.Testimonial
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &t, err
}

func (r *testimonialRepo) Insert(ctx context.Context, t *models.Testimonial) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *testimonialRepo) Update(ctx context.Context, id uint, fields map[string]any) error {
	res := r.db.WithContext(ctx).
		Model(&models.Testimonial{}).
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

func (r *testimonialRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Testimonial{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}
