package services

import (
	"context"
	"encoding/json"
	"reflect"
	"sync"
	"testing"
	"time"

	pgrepo "github.com/leopard-dev/portfolio-backend/internal/repositories/postgres"
	"github.com/leopard-dev/portfolio-backend/internal/utils"
)

// memCache is a map-backed Cache for asserting hit and invalidation behavior.
type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
	hits int
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (c *memCache) GetJSON(_ context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	c.hits++
	return true, json.Unmarshal(b, dst)
}

func (c *memCache) SetJSON(_ context.Context, key string, val any, _ time.Duration) error {
	b, err := json.Marshal(val)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = b
	return nil
}

func (c *memCache) Del(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

func newGalleryService(t *testing.T, c *memCache) GalleryService {
	t.Helper()
	var svc GalleryService
	if c != nil {
		svc = NewGalleryService(pgrepo.NewGalleryRepo(newTestDB(t)), &uploadStub{}, c)
	} else {
		svc = NewGalleryService(pgrepo.NewGalleryRepo(newTestDB(t)), &uploadStub{}, nil)
	}
	return svc
}

func TestGalleryCreateRequiresImage(t *testing.T) {
	svc := newGalleryService(t, nil)

	_, err := svc.Create(context.Background(), GalleryInput{Title: "Sunset"})
	if !utils.IsCode(err, utils.CodeInvalidArgument) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !hasField(t, err, "gallery_image") {
		t.Errorf("expected field error on gallery_image, got %v", err)
	}
}

func TestGalleryCategoriesCached(t *testing.T) {
	c := newMemCache()
	svc := newGalleryService(t, c)
	ctx := context.Background()

	seed := []GalleryInput{
		{Title: "A", Category: "travel", ImagePath: "/uploads/images/a.png"},
		{Title: "B", Category: "food", ImagePath: "/uploads/images/b.png"},
		{Title: "C", Category: "travel", ImagePath: "/uploads/images/c.png"},
	}
	for _, in := range seed {
		if _, err := svc.Create(ctx, in); err != nil {
			t.Fatalf("seed %q: %v", in.Title, err)
		}
	}

	first, err := svc.Categories(ctx)
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if len(first) != 2 {
		t.Errorf("categories = %v", first)
	}

	second, err := svc.Categories(ctx)
	if err != nil {
		t.Fatalf("categories again: %v", err)
	}
	if c.hits != 1 {
		t.Errorf("cache hits = %d, want second call served from cache", c.hits)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("cached result differs: %v vs %v", first, second)
	}

	// a write drops the cached category list
	if _, err := svc.Create(ctx, GalleryInput{Title: "D", Category: "nature", ImagePath: "/uploads/images/d.png"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	third, err := svc.Categories(ctx)
	if err != nil {
		t.Fatalf("categories after write: %v", err)
	}
	if len(third) != 3 {
		t.Errorf("categories after write = %v", third)
	}
}

func TestGalleryListFilters(t *testing.T) {
	svc := newGalleryService(t, nil)
	ctx := context.Background()

	seed := []GalleryInput{
		{Title: "A", Category: "travel", IsFeatured: true, ImagePath: "/uploads/images/a.png"},
		{Title: "B", Category: "food", ImagePath: "/uploads/images/b.png"},
	}
	for _, in := range seed {
		if _, err := svc.Create(ctx, in); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	travel, err := svc.List(ctx, pgrepo.GalleryFilter{Category: "travel"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(travel) != 1 || travel[0].Title != "A" {
		t.Errorf("travel = %+v", travel)
	}

	featured, err := svc.List(ctx, pgrepo.GalleryFilter{FeaturedOnly: true})
	if err != nil {
		t.Fatalf("list featured: %v", err)
	}
	if len(featured) != 1 {
		t.Errorf("featured = %+v", featured)
	}
}
