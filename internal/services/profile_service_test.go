package services

import (
	"context"
	"testing"

	pgrepo "github.com/leopard-dev/portfolio-backend/internal/repositories/postgres"
	"github.com/leopard-dev/portfolio-backend/internal/utils"
)

func newProfileService(t *testing.T) (ProfileService, *uploadStub) {
	t.Helper()
	stub := &uploadStub{}
	svc := NewProfileService(pgrepo.NewProfileRepo(newTestDB(t)), stub)
	return svc, stub
}

func TestProfileGetEmpty(t *testing.T) {
	svc, _ := newProfileService(t)

	_, err := svc.Get(context.Background())
	if !utils.IsCode(err, utils.CodeNotFound) {
		t.Errorf("expected not found on empty table, got %v", err)
	}
}

func TestProfileUpsertCreatesThenUpdates(t *testing.T) {
	svc, _ := newProfileService(t)
	ctx := context.Background()

	in := ProfileInput{Name: "Jane", Title: "Developer", Email: "jane@example.com"}
	created, wasCreated, err := svc.Upsert(ctx, in)
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if !wasCreated || created == nil {
		t.Fatal("expected create path on empty table")
	}

	in.Title = "Senior Developer"
	updated, wasCreated, err := svc.Upsert(ctx, in)
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if wasCreated || updated != nil {
		t.Error("expected update path on populated table")
	}

	got, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("got row %d, want singleton row %d", got.ID, created.ID)
	}
	if got.Title != "Senior Developer" {
		t.Errorf("title = %q", got.Title)
	}
}

func TestProfileUpsertReplacesImage(t *testing.T) {
	svc, stub := newProfileService(t)
	ctx := context.Background()

	in := ProfileInput{Name: "Jane", Title: "Dev", Email: "jane@example.com", ImagePath: "/uploads/images/v1.png"}
	if _, _, err := svc.Upsert(ctx, in); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	in.ImagePath = "/uploads/images/v2.png"
	if _, _, err := svc.Upsert(ctx, in); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if len(stub.removed) != 1 || stub.removed[0] != "/uploads/images/v1.png" {
		t.Errorf("removed = %v, want old image", stub.removed)
	}

	got, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ProfileImage != "/uploads/images/v2.png" {
		t.Errorf("profile_image = %q", got.ProfileImage)
	}
}

func TestProfileUpsertValidation(t *testing.T) {
	svc, _ := newProfileService(t)

	_, _, err := svc.Upsert(context.Background(), ProfileInput{Name: "Jane"})
	if !utils.IsCode(err, utils.CodeInvalidArgument) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !hasField(t, err, "title") || !hasField(t, err, "email") {
		t.Errorf("expected title and email field errors, got %v", err)
	}
}
