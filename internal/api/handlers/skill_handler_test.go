package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/leopard-dev/portfolio-backend/internal/models"
	"github.com/leopard-dev/portfolio-backend/internal/services"
	"github.com/leopard-dev/portfolio-backend/internal/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// mockSkillService implements services.SkillService for handler tests.
type mockSkillService struct {
	ListFunc   func(ctx context.Context, featuredOnly bool) ([]models.Skill, error)
	CreateFunc func(ctx context.Context, in services.SkillInput) (*models.Skill, error)
	UpdateFunc func(ctx context.Context, id uint, in services.SkillInput) error
	DeleteFunc func(ctx context.Context, id uint) error
}

func (m *mockSkillService) List(ctx context.Context, featuredOnly bool) ([]models.Skill, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, featuredOnly)
	}
	return nil, nil
}

func (m *mockSkillService) Create(ctx context.Context, in services.SkillInput) (*models.Skill, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, in)
	}
	return nil, nil
}

func (m *mockSkillService) Update(ctx context.Context, id uint, in services.SkillInput) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, in)
	}
	return nil
}

func (m *mockSkillService) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func skillRouter(svc services.SkillService) *gin.Engine {
	h := NewSkillHandler(svc)
	r := gin.New()
	r.GET("/api/skills", h.List)
	r.POST("/api/skills", h.Create)
	r.PUT("/api/skills/:id", h.Update)
	r.DELETE("/api/skills/:id", h.Delete)
	return r
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestSkillHandlerList(t *testing.T) {
	var gotFeatured bool
	r := skillRouter(&mockSkillService{
		ListFunc: func(_ context.Context, featuredOnly bool) ([]models.Skill, error) {
			gotFeatured = featuredOnly
			return []models.Skill{{ID: 1, Name: "Go", Level: 90}}, nil
		},
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/skills?featured=true", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !gotFeatured {
		t.Error("featured query not passed through")
	}
	body := decodeBody(t, w)
	if body["success"] != true {
		t.Errorf("body = %v", body)
	}
	if skills, ok := body["skills"].([]any); !ok || len(skills) != 1 {
		t.Errorf("skills = %v", body["skills"])
	}
}

func TestSkillHandlerCreate(t *testing.T) {
	r := skillRouter(&mockSkillService{
		CreateFunc: func(_ context.Context, in services.SkillInput) (*models.Skill, error) {
			return &models.Skill{ID: 7, Name: in.Name, Level: *in.Level}, nil
		},
	})

	req := httptest.NewRequest("POST", "/api/skills", strings.NewReader(`{"name":"Go","level":90}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	skill, _ := body["skill"].(map[string]any)
	if skill == nil || skill["id"] != float64(7) {
		t.Errorf("skill = %v", body["skill"])
	}
}

func TestSkillHandlerCreateValidationEnvelope(t *testing.T) {
	r := skillRouter(&mockSkillService{
		CreateFunc: func(_ context.Context, in services.SkillInput) (*models.Skill, error) {
			return nil, utils.Ev("SkillService.Create", []utils.FieldError{
				{Field: "level", Message: "Level must be between 0 and 100"},
			})
		},
	})

	req := httptest.NewRequest("POST", "/api/skills", strings.NewReader(`{"name":"Go","level":200}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["success"] != false {
		t.Errorf("success = %v", body["success"])
	}
	errs, _ := body["errors"].([]any)
	if len(errs) != 1 {
		t.Fatalf("errors = %v", body["errors"])
	}
	first, _ := errs[0].(map[string]any)
	if first["field"] != "level" {
		t.Errorf("field = %v", first)
	}
}

func TestSkillHandlerUpdateNotFound(t *testing.T) {
	r := skillRouter(&mockSkillService{
		UpdateFunc: func(_ context.Context, id uint, in services.SkillInput) error {
			return utils.E(utils.CodeNotFound, "SkillService.Update", "Skill not found", utils.ErrNotFound)
		},
	})

	req := httptest.NewRequest("PUT", "/api/skills/99", strings.NewReader(`{"name":"Go","level":90}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	if body := decodeBody(t, w); body["message"] != "Skill not found" {
		t.Errorf("message = %v", body["message"])
	}
}

func TestSkillHandlerBadID(t *testing.T) {
	r := skillRouter(&mockSkillService{})

	for _, id := range []string{"abc", "0", "-3"} {
		req := httptest.NewRequest("DELETE", "/api/skills/"+id, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("id %q: status = %d, want 400", id, w.Code)
		}
	}
}
