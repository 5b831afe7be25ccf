package services

import (
	"context"
	"testing"

	pgrepo "github.com/leopard-dev/portfolio-backend/internal/repositories/postgres"
	"github.com/leopard-dev/portfolio-backend/internal/utils"
)

func newSkillService(t *testing.T) SkillService {
	t.Helper()
	return NewSkillService(pgrepo.NewSkillRepo(newTestDB(t)), nil)
}

func TestSkillCreateAndList(t *testing.T) {
	svc := newSkillService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, SkillInput{Name: "Go", Level: intPtr(90), Category: "Backend"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected assigned id")
	}
	if created.IsFeatured {
		t.Error("expected is_featured to default to false")
	}

	if _, err := svc.Create(ctx, SkillInput{Name: "React", Level: intPtr(80), IsFeatured: true}); err != nil {
		t.Fatalf("create second: %v", err)
	}

	all, err := svc.List(ctx, false)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d skills, want 2", len(all))
	}

	featured, err := svc.List(ctx, true)
	if err != nil {
		t.Fatalf("list featured: %v", err)
	}
	if len(featured) != 1 || featured[0].Name != "React" {
		t.Errorf("featured = %+v", featured)
	}
}

func TestSkillCreateValidation(t *testing.T) {
	svc := newSkillService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		in    SkillInput
		field string
	}{
		{"missing name", SkillInput{Level: intPtr(50)}, "name"},
		{"missing level", SkillInput{Name: "Go"}, "level"},
		{"level too high", SkillInput{Name: "Go", Level: intPtr(101)}, "level"},
		{"level negative", SkillInput{Name: "Go", Level: intPtr(-1)}, "level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.in)
			if !utils.IsCode(err, utils.CodeInvalidArgument) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if !hasField(t, err, tt.field) {
				t.Errorf("expected field error on %q, got %v", tt.field, err)
			}
		})
	}
}

func TestSkillUpdate(t *testing.T) {
	svc := newSkillService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, SkillInput{Name: "Go", Level: intPtr(50)})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Update(ctx, created.ID, SkillInput{Name: "Golang", Level: intPtr(95)}); err != nil {
		t.Fatalf("update: %v", err)
	}

	all, err := svc.List(ctx, false)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if all[0].Name != "Golang" || all[0].Level != 95 {
		t.Errorf("updated skill = %+v", all[0])
	}
}

func TestSkillUpdateMissing(t *testing.T) {
	svc := newSkillService(t)

	err := svc.Update(context.Background(), 999, SkillInput{Name: "Go", Level: intPtr(50)})
	if !utils.IsCode(err, utils.CodeNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestSkillDeleteMissing(t *testing.T) {
	svc := newSkillService(t)

	err := svc.Delete(context.Background(), 999)
	if !utils.IsCode(err, utils.CodeNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

// hasField reports whether err carries a field-level error for name.
func hasField(t *testing.T, err error, name string) bool {
	t.Helper()
	ae, ok := err.(*utils.AppError)
	if !ok {
		return false
	}
	for _, f := range ae.Fields {
		if f.Field == name {
			return true
		}
	}
	return false
}
