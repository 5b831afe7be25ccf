package models

import "time"

// Profile is a singleton: reads and writes both target the lowest-id row.
type Profile struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Title        string    `gorm:"type:varchar(255);not null" json:"title"`
	Bio          string    `gorm:"type:text" json:"bio"`
	Email        string    `gorm:"type:varchar(255)" json:"email"`
	Phone        string    `gorm:"type:varchar(50)" json:"phone"`
	Location     string    `gorm:"type:varchar(255)" json:"location"`
	ResumeURL    string    `gorm:"column:resume_url;type:varchar(500)" json:"resume_url"`
	ProfileImage string    `gorm:"type:varchar(500)" json:"profile_image"`
	GithubURL    string    `gorm:"column:github_url;type:varchar(500)" json:"github_url"`
	LinkedinURL  string    `gorm:"column:linkedin_url;type:varchar(500)" json:"linkedin_url"`
	TwitterURL   string    `gorm:"column:twitter_url;type:varchar(500)" json:"twitter_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Profile) TableName() string { return "profile" }
