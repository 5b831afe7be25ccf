package postgres

import (
	"context"
	"errors"

	"github.com/leopard-dev/portfolio-backend/internal/models"
	"github.com/leopard-dev/portfolio-backend/internal/utils"
	"gorm.io/gorm"
)

type SkillRepository interface {
	List(ctx context.Context, featuredOnly bool) ([]models.Skill, error)
	GetByID(ctx context.Context, id uint) (*models.Skill, error)
	Insert(ctx context.Context, s *models.Skill) error
	Update(ctx context.Context, id uint, fields map[string]any) error
	Delete(ctx context.Context, id uint) error
}

type skillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) SkillRepository {
	return &skillRepo{db: db}
}

func (r *skillRepo) List(ctx context.Context, featuredOnly bool) ([]models.Skill, error) {
	q := r.db.WithContext(ctx).Model(&models.Skill{})
	if featuredOnly {
		q = q.Where("is_featured = ?", true)
	}

	var out []models.Skill
	err := q.Order("sort_order ASC, name ASC").Find(&out).Error
	return out, err
}

func (r *skillRepo) GetByID(ctx context.Context, id uint) (*models.Skill, error) {
	var s models.Skill
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &s, err
}

func (r *skillRepo) Insert(ctx context.Context, s *models.Skill) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *skillRepo) Update(ctx context.Context, id uint, fields map[string]any) error {
	res := r.db.WithContext(ctx).
		Model(&models.Skill{}).
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

func (r *skillRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Skill{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}
