package postgres

import (
	"context"
	"errors"

	"github.com/leopard-dev/portfolio-backend/internal/models"
	"github.com/leopard-dev/portfolio-backend/internal/utils"
	"gorm.io/gorm"
)

type EducationRepository interface {
	List(ctx context.Context) ([]models.Education, error)
	GetByID(ctx context.Context, id uint) (*models.Education, error)
	Insert(ctx context.Context, e *models.Education) error
	Update(ctx context.Context, id uint, fields map[string]any) error
	Delete(ctx context.Context, id uint) error
}

type educationRepo struct {
	db *gorm.DB
}

func NewEducationRepo(db *gorm.DB) EducationRepository {
	return &educationRepo{db: db}
}

func (r *educationRepo) List(ctx context.Context) ([]models.Education, error) {
	var out []models.Education
	err := r.db.WithContext(ctx).
		Order("end_date DESC, start_date DESC").
		Find(&out).Error
	return out, err
}

func (r *educationRepo) GetByID(ctx context.Context, id uint) (*models.Education, error) {
	var e models.Education
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &e, err
}

func (r *educationRepo) Insert(ctx context.Context, e *models.Education) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *educationRepo) Update(ctx context.Context, id uint, fields map[string]any) error {
	res := r.db.WithContext(ctx).
		Model(&models.Education{}).
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

func (r *educationRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Education{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}
