package services

import (
	"context"
	"errors"
	"time"

	"github.com/leopard-dev/portfolio-backend/internal/models"
	pgrepo "github.com/leopard-dev/portfolio-backend/internal/repositories/postgres"
	"github.com/leopard-dev/portfolio-backend/internal/utils"
)

type EducationInput struct {
	Institution  string `json:"institution" form:"institution"`
	Degree       string `json:"degree" form:"degree"`
	FieldOfStudy string `json:"field_of_study" form:"field_of_study"`
	StartDate    string `json:"start_date" form:"start_date"` // YYYY-MM-DD
	EndDate      string `json:"end_date" form:"end_date"`     // YYYY-MM-DD
	IsCurrent    bool   `json:"is_current" form:"is_current"`
	Description  string `json:"description" form:"description"`
	Grade        string `json:"grade" form:"grade"`
	Activities   string `json:"activities" form:"activities"`
	SortOrder    int    `json:"sort_order" form:"sort_order"`
}

type EducationService interface {
	List(ctx context.Context) ([]models.Education, error)
	Get(ctx context.Context, id uint) (*models.Education, error)
	Create(ctx context.Context, in EducationInput) (*models.Education, error)
	Update(ctx context.Context, id uint, in EducationInput) error
	Delete(ctx context.Context, id uint) error
}

type educationService struct {
	education pgrepo.EducationRepository
}

func NewEducationService(education pgrepo.EducationRepository) EducationService {
	return &educationService{education: education}
}

type educationDates struct {
	start, end *time.Time
}

func (s *educationService) List(ctx context.Context) ([]models.Education, error) {
	const op = "EducationService.List"

	out, err := s.education.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list education records", err)
	}
	return out, nil
}

func (s *educationService) Get(ctx context.Context, id uint) (*models.Education, error) {
	const op = "EducationService.Get"

	e, err := s.education.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "Education record not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get education record", err)
	}
	return e, nil
}

func (s *educationService) Create(ctx context.Context, in EducationInput) (*models.Education, error) {
	const op = "EducationService.Create"

	dates, fields := validateEducation(in)
	if len(fields) > 0 {
		return nil, utils.Ev(op, fields)
	}

	row := &models.Education{
		Institution:  in.Institution,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		StartDate:    dates.start,
		EndDate:      dates.end,
		IsCurrent:    in.IsCurrent,
		Description:  in.Description,
		Grade:        in.Grade,
		Activities:   in.Activities,
		SortOrder:    in.SortOrder,
	}
	if err := s.education.Insert(ctx, row); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create education record", err)
	}

	out, err := s.education.GetByID(ctx, row.ID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to reload education record", err)
	}
	return out, nil
}

func (s *educationService) Update(ctx context.Context, id uint, in EducationInput) error {
	const op = "EducationService.Update"

	dates, fields := validateEducation(in)
	if len(fields) > 0 {
		return utils.Ev(op, fields)
	}

	err := s.education.Update(ctx, id, map[string]any{
		"institution":    in.Institution,
		"degree":         in.Degree,
		"field_of_study": in.FieldOfStudy,
		"start_date":     dates.start,
		"end_date":       dates.end,
		"is_current":     in.IsCurrent,
		"description":    in.Description,
		"grade":          in.Grade,
		"activities":     in.Activities,
		"sort_order":     in.SortOrder,
	})
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Education record not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to update education record", err)
	}
	return nil
}

func (s *educationService) Delete(ctx context.Context, id uint) error {
	const op = "EducationService.Delete"

	if err := s.education.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Education record not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete education record", err)
	}
	return nil
}

func validateEducation(in EducationInput) (educationDates, []utils.FieldError) {
	var fields []utils.FieldError
	if in.Institution == "" {
		fields = append(fields, utils.FieldError{Field: "institution", Message: "Institution is required"})
	}
	if in.Degree == "" {
		fields = append(fields, utils.FieldError{Field: "degree", Message: "Degree is required"})
	}

	var d educationDates
	var ok bool
	if d.start, ok = parseDate(in.StartDate); !ok {
		fields = append(fields, utils.FieldError{Field: "start_date", Message: "Start date must be YYYY-MM-DD"})
	}
	if d.end, ok = parseDate(in.EndDate); !ok {
		fields = append(fields, utils.FieldError{Field: "end_date", Message: "End date must be YYYY-MM-DD"})
	}
	return d, fields
}
