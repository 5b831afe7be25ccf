package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type GalleryItem struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Title        string         `gorm:"type:varchar(255);not null" json:"title"`
	Description  string         `gorm:"type:text" json:"description"`
	ImageURL     string         `gorm:"column:image_url;type:varchar(500);not null" json:"image_url"`
	ThumbnailURL string         `gorm:"column:thumbnail_url;type:varchar(500)" json:"thumbnail_url"`
	Category     string         `gorm:"type:varchar(100)" json:"category"`
	Tags         datatypes.JSON `gorm:"type:jsonb" json:"tags"`
	IsFeatured   bool           `gorm:"default:false" json:"is_featured"`
	SortOrder    int            `gorm:"default:0" json:"sort_order"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func (GalleryItem) TableName() string { return "gallery" }

func (g *GalleryItem) AfterFind(*gorm.DB) error {
	g.Tags = emptyJSONArray(g.Tags)
	return nil
}
