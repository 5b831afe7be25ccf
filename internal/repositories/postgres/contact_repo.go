package postgres

import (
	"context"

	"github.com/leopard-dev/portfolio-backend/internal/models"
	"github.com/leopard-dev/portfolio-backend/internal/utils"
	"gorm.io/gorm"
)

type ContactRepository interface {
	List(ctx context.Context, status string) ([]models.ContactMessage, error)
	Insert(ctx context.Context, m *models.ContactMessage) error
	UpdateStatus(ctx context.Context, id uint, status models.MessageStatus) error
	Delete(ctx context.Context, id uint) error
	Stats(ctx context.Context) (*models.ContactStats, error)
}

type contactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) ContactRepository {
	return &contactRepo{db: db}
}

func (r *contactRepo) List(ctx context.Context, status string) ([]models.ContactMessage, error) {
	q := r.db.WithContext(ctx).Model(&models.ContactMessage{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var out []models.ContactMessage
	err := q.Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *contactRepo) Insert(ctx context.Context, m *models.ContactMessage) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *contactRepo) UpdateStatus(ctx context.Context, id uint, status models.MessageStatus) error {
	res := r.db.WithContext(ctx).
		Model(&models.ContactMessage{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *contactRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.ContactMessage{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *contactRepo) Stats(ctx context.Context) (*models.ContactStats, error) {
	type row struct {
		Status models.MessageStatus
		N      int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&models.ContactMessage{}).
		Select("status, COUNT(*) AS n").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := &models.ContactStats{}
	for _, rw := range rows {
		stats.Total += rw.N
		switch rw.Status {
		case models.MessageUnread:
			stats.Unread = rw.N
		case models.MessageRead:
			stats.Read = rw.N
		case models.MessageReplied:
			stats.Replied = rw.N
		}
	}
	return stats, nil
}
