package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProjectStatus string

const (
	ProjectCompleted  ProjectStatus = "completed"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectPlanned    ProjectStatus = "planned"
)

func ValidProjectStatus(s string) bool {
	switch ProjectStatus(s) {
	case ProjectCompleted, ProjectInProgress, ProjectPlanned:
		return true
	}
	return false
}

type Project struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	Title           string         `gorm:"type:varchar(255);not null" json:"title"`
	Description     string         `gorm:"type:text" json:"description"`
	LongDescription string         `gorm:"type:text" json:"long_description"`
	Technologies    datatypes.JSON `gorm:"type:jsonb" json:"technologies"`
	ImageURL        string         `gorm:"column:image_url;type:varchar(500)" json:"image_url"`
	GalleryImages   datatypes.JSON `gorm:"type:jsonb" json:"gallery_images"`
	GithubURL       string         `gorm:"column:github_url;type:varchar(500)" json:"github_url"`
	DemoURL         string         `gorm:"column:demo_url;type:varchar(500)" json:"demo_url"`
	IsFeatured      bool           `gorm:"default:false" json:"is_featured"`
	Status          ProjectStatus  `gorm:"type:varchar(20);default:completed" json:"status"`
	SortOrder       int            `gorm:"default:0" json:"sort_order"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func (Project) TableName() string { return "projects" }

// List columns always read back as arrays, never null.
func (p *Project) AfterFind(*gorm.DB) error {
	p.Technologies = emptyJSONArray(p.Technologies)
	p.GalleryImages = emptyJSONArray(p.GalleryImages)
	return nil
}
