package models

import "time"

type Skill struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	Level      int       `gorm:"not null" json:"level"` // 0-100
	Category   string    `gorm:"type:varchar(100)" json:"category"`
	Icon       string    `gorm:"type:varchar(100)" json:"icon"`
	IsFeatured bool      `gorm:"default:false" json:"is_featured"`
	SortOrder  int       `gorm:"default:0" json:"sort_order"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Skill) TableName() string { return "skills" }
