package services

import (
	"context"
	"errors"

	"github.com/leopard-dev/portfolio-backend/internal/models"
	pgrepo "github.com/leopard-dev/portfolio-backend/internal/repositories/postgres"
	"github.com/leopard-dev/portfolio-backend/internal/utils"
)

type ProfileInput struct {
	Name        string `json:"name" form:"name"`
	Title       string `json:"title" form:"title"`
	Bio         string `json:"bio" form:"bio"`
	Email       string `json:"email" form:"email"`
	Phone       string `json:"phone" form:"phone"`
	Location    string `json:"location" form:"location"`
	ResumeURL   string `json:"resume_url" form:"resume_url"`
	GithubURL   string `json:"github_url" form:"github_url"`
	LinkedinURL string `json:"linkedin_url" form:"linkedin_url"`
	TwitterURL  string `json:"twitter_url" form:"twitter_url"`

	ImagePath string `json:"-" form:"-"`
}

func (in ProfileInput) validate() []utils.FieldError {
	var fields []utils.FieldError
	if in.Name == "" {
		fields = append(fields, utils.FieldError{Field: "name", Message: "Name is required"})
	}
	if in.Title == "" {
		fields = append(fields, utils.FieldError{Field: "title", Message: "Title is required"})
	}
	if !validEmail(in.Email) {
		fields = append(fields, utils.FieldError{Field: "email", Message: "Please include a valid email"})
	}
	return fields
}

type ProfileService interface {
	// Get returns the profile row.
	Get(ctx context.Context) (*models.Profile, error)

	// Upsert updates the existing profile or creates one when none exists.
	// The returned profile is non-nil only on the create path.
	Upsert(ctx context.Context, in ProfileInput) (*models.Profile, bool, error)
}

type profileService struct {
	profiles pgrepo.ProfileRepository
	files    UploadService
}

func NewProfileService(profiles pgrepo.ProfileRepository, files UploadService) ProfileService {
	return &profileService{profiles: profiles, files: files}
}

func (s *profileService) Get(ctx context.Context) (*models.Profile, error) {
	const op = "ProfileService.Get"

	p, err := s.profiles.First(ctx)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "Profile not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get profile", err)
	}
	return p, nil
}

func (s *profileService) Upsert(ctx context.Context, in ProfileInput) (*models.Profile, bool, error) {
	const op = "ProfileService.Upsert"

	if fields := in.validate(); len(fields) > 0 {
		return nil, false, utils.Ev(op, fields)
	}

	existing, err := s.profiles.First(ctx)
	if err != nil && !errors.Is(err, utils.ErrNotFound) {
		return nil, false, utils.E(utils.CodeInternal, op, "failed to load profile", err)
	}

	if existing == nil {
		row := &models.Profile{
			Name:         in.Name,
			Title:        in.Title,
			Bio:          in.Bio,
			Email:        in.Email,
			Phone:        in.Phone,
			Location:     in.Location,
			ResumeURL:    in.ResumeURL,
			ProfileImage: in.ImagePath,
			GithubURL:    in.GithubURL,
			LinkedinURL:  in.LinkedinURL,
			TwitterURL:   in.TwitterURL,
		}
		if err := s.profiles.Insert(ctx, row); err != nil {
			return nil, false, utils.E(utils.CodeInternal, op, "failed to create profile", err)
		}
		return row, true, nil
	}

	updates := map[string]any{
		"name":         in.Name,
		"title":        in.Title,
		"bio":          in.Bio,
		"email":        in.Email,
		"phone":        in.Phone,
		"location":     in.Location,
		"resume_url":   in.ResumeURL,
		"github_url":   in.GithubURL,
		"linkedin_url": in.LinkedinURL,
		"twitter_url":  in.TwitterURL,
	}

	if in.ImagePath != "" {
		if existing.ProfileImage != "" {
			s.files.Remove(existing.ProfileImage)
		}
		updates["profile_image"] = in.ImagePath
	}

	if err := s.profiles.Update(ctx, existing.ID, updates); err != nil {
		return nil, false, utils.E(utils.CodeInternal, op, "failed to update profile", err)
	}
	return nil, false, nil
}
