package models

import "time"

type Testimonial struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	Position   string    `gorm:"type:varchar(255)" json:"position"`
	Company    string    `gorm:"type:varchar(255)" json:"company"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	AvatarURL  string    `gorm:"column:avatar_url;type:varchar(500)" json:"avatar_url"`
	Rating     int       `json:"rating"` // 1-5
	IsFeatured bool      `gorm:"default:false" json:"is_featured"`
	SortOrder  int       `gorm:"default:0" json:"sort_order"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Testimonial) TableName() string { return "testimonials" }
