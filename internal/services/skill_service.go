package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/leopard-dev/portfolio-backend/internal/cache"
	"github.com/leopard-dev/portfolio-backend/internal/models"
	pgrepo "github.com/leopard-dev/portfolio-backend/internal/repositories/postgres"
	"github.com/leopard-dev/portfolio-backend/internal/utils"
)

type SkillInput struct {
	Name       string `json:"name" form:"name"`
	Level      *int   `json:"level" form:"level"`
	Category   string `json:"category" form:"category"`
	Icon       string `json:"icon" form:"icon"`
	IsFeatured bool   `json:"is_featured" form:"is_featured"`
	SortOrder  int    `json:"sort_order" form:"sort_order"`
}

func (in SkillInput) validate() []utils.FieldError {
	var fields []utils.FieldError
	if in.Name == "" {
		fields = append(fields, utils.FieldError{Field: "name", Message: "Skill name is required"})
	}
	if in.Level == nil || *in.Level < 0 || *in.Level > 100 {
		fields = append(fields, utils.FieldError{Field: "level", Message: "Level must be between 0 and 100"})
	}
	return fields
}

type SkillService interface {
	List(ctx context.Context, featuredOnly bool) ([]models.Skill, error)
	Create(ctx context.Context, in SkillInput) (*models.Skill, error)
	Update(ctx context.Context, id uint, in SkillInput) error
	Delete(ctx context.Context, id uint) error
}

type skillService struct {
	skills pgrepo.SkillRepository
	cache  cache.Cache // optional, nil disables caching
}

func NewSkillService(skills pgrepo.SkillRepository, c cache.Cache) SkillService {
	return &skillService{skills: skills, cache: c}
}

func (s *skillService) List(ctx context.Context, featuredOnly bool) ([]models.Skill, error) {
	const op = "SkillService.List"

	key := fmt.Sprintf("skills:featured=%t", featuredOnly)
	if s.cache != nil {
		var cached []models.Skill
		if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	out, err := s.skills.List(ctx, featuredOnly)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list skills", err)
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, key, out, listCacheTTL)
	}
	return out, nil
}

func (s *skillService) Create(ctx context.Context, in SkillInput) (*models.Skill, error) {
	const op = "SkillService.Create"

	if fields := in.validate(); len(fields) > 0 {
		return nil, utils.Ev(op, fields)
	}

	row := &models.Skill{
		Name:       in.Name,
		Level:      *in.Level,
		Category:   in.Category,
		Icon:       in.Icon,
		IsFeatured: in.IsFeatured,
		SortOrder:  in.SortOrder,
	}
	if err := s.skills.Insert(ctx, row); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create skill", err)
	}

	out, err := s.skills.GetByID(ctx, row.ID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to reload skill", err)
	}

	s.invalidate(ctx)
	return out, nil
}

func (s *skillService) Update(ctx context.Context, id uint, in SkillInput) error {
	const op = "SkillService.Update"

	if fields := in.validate(); len(fields) > 0 {
		return utils.Ev(op, fields)
	}

	err := s.skills.Update(ctx, id, map[string]any{
		"name":        in.Name,
		"level":       *in.Level,
		"category":    in.Category,
		"icon":        in.Icon,
		"is_featured": in.IsFeatured,
		"sort_order":  in.SortOrder,
	})
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Skill not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to update skill", err)
	}

	s.invalidate(ctx)
	return nil
}

func (s *skillService) Delete(ctx context.Context, id uint) error {
	const op = "SkillService.Delete"

	if err := s.skills.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Skill not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete skill", err)
	}

	s.invalidate(ctx)
	return nil
}

func (s *skillService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Del(ctx, "skills:featured=true", "skills:featured=false")
}
