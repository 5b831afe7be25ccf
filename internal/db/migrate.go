package db

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/leopard-dev/portfolio-backend/internal/models"
	"github.com/leopard-dev/portfolio-backend/internal/utils"
)

// Migrate creates or updates the schema for every model.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Skill{},
		&models.Project{},
		&models.Testimonial{},
		&models.Education{},
		&models.GalleryItem{},
		&models.ContactMessage{},
	)
}

// Seed makes sure an admin account and a profile row exist so a fresh
// database is immediately usable. Existing rows are never touched.
func Seed(gdb *gorm.DB, log *logrus.Logger, adminEmail, adminPassword string) error {
	if err := seedAdmin(gdb, log, adminEmail, adminPassword); err != nil {
		return err
	}
	return seedProfile(gdb, log)
}

func seedAdmin(gdb *gorm.DB, log *logrus.Logger, email, password string) error {
	var existing models.User
	err := gdb.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	user := models.User{
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}
	if err := gdb.Create(&user).Error; err != nil {
		return err
	}
	log.WithField("email", email).Info("admin user created")
	return nil
}

func seedProfile(gdb *gorm.DB, log *logrus.Logger) error {
	var count int64
	if err := gdb.Model(&models.Profile{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	profile := models.Profile{
		Name:     "Your Name",
		Title:    "Full Stack Developer & UI/UX Designer",
		Bio:      "Passionate full-stack developer with 5+ years of experience creating innovative web applications.",
		Email:    "your@email.com",
		Phone:    "+1 (234) 567-8900",
		Location: "Your City, Country",
	}
	if err := gdb.Create(&profile).Error; err != nil {
		return err
	}
	log.Info("default profile created")
	return nil
}
