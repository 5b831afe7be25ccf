package models

import "time"

type Education struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Institution  string     `gorm:"type:varchar(255);not null" json:"institution"`
	Degree       string     `gorm:"type:varchar(255);not null" json:"degree"`
	FieldOfStudy string     `gorm:"column:field_of_study;type:varchar(255)" json:"field_of_study"`
	StartDate    *time.Time `gorm:"type:date" json:"start_date"`
	EndDate      *time.Time `gorm:"type:date" json:"end_date"`
	IsCurrent    bool       `gorm:"default:false" json:"is_current"`
	Description  string     `gorm:"type:text" json:"description"`
	Grade        string     `gorm:"type:varchar(50)" json:"grade"`
	Activities   string     `gorm:"type:text" json:"activities"`
	SortOrder    int        `gorm:"default:0" json:"sort_order"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (Education) TableName() string { return "education" }
