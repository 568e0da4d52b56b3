package service

import (
	"context"
	"errors"
	"testing"

	"gigportal_backend/internal/categories/repository"
	"gigportal_backend/internal/categories/seed"
	"gigportal_backend/platform/logger"

	"github.com/google/uuid"
)

type fakeRepo struct {
	rows     []repository.Category
	listErr  error
	lists    int
	upserted []repository.UpsertParams
}

func (f *fakeRepo) ListActive(ctx context.Context) ([]repository.Category, error) {
	f.lists++
	return f.rows, f.listErr
}

func (f *fakeRepo) Upsert(ctx context.Context, params repository.UpsertParams) (uuid.UUID, error) {
	f.upserted = append(f.upserted, params)
	return uuid.New(), nil
}

type memoryCache struct {
	data        map[string][]Node
	invalidated int
}

func (m *memoryCache) Get(ctx context.Context, key string, dest interface{}) bool {
	v, ok := m.data[key]
	if ok {
		*(dest.(*[]Node)) = v
	}
	return ok
}

func (m *memoryCache) Set(ctx context.Context, key string, value interface{}) {
	m.data[key] = value.([]Node)
}

func (m *memoryCache) InvalidateAll(ctx context.Context) {
	m.data = map[string][]Node{}
	m.invalidated++
}

func TestListUsesCachePerLocale(t *testing.T) {
	nl := "Ontwerp"
	repo := &fakeRepo{rows: []repository.Category{{ID: uuid.New(), Slug: "design", NameEN: "Design", NameNL: &nl}}}
	cache := &memoryCache{data: map[string][]Node{}}
	svc := New(repo, cache, logger.Discard())
	ctx := context.Background()

	first, err := svc.List(ctx, "nl")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if _, err := svc.List(ctx, "nl-NL"); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if repo.lists != 1 {
		t.Fatalf("expected one repository hit for the same locale, got %d", repo.lists)
	}
	if first[0].Name != "Ontwerp" {
		t.Fatalf("expected dutch tree, got %q", first[0].Name)
	}

	en, _ := svc.List(ctx, "")
	if repo.lists != 2 || en[0].Name != "Design" {
		t.Fatalf("expected separate english load, got %d loads and %q", repo.lists, en[0].Name)
	}
}

func TestListWithoutCache(t *testing.T) {
	repo := &fakeRepo{listErr: errors.New("db down")}
	svc := New(repo, nil, logger.Discard())

	if _, err := svc.List(context.Background(), "en"); err == nil {
		t.Fatal("expected repository error to propagate")
	}
}

func TestOptions(t *testing.T) {
	parent := uuid.New()
	repo := &fakeRepo{rows: []repository.Category{
		{ID: parent, Slug: "design", NameEN: "Design"},
		{ID: uuid.New(), ParentID: &parent, Slug: "logo", NameEN: "Logo"},
	}}
	svc := New(repo, nil, logger.Discard())

	opts, err := svc.Options(context.Background(), "en")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(opts) != 2 || opts[1].Depth != 1 || opts[1].Label != Prefix(1)+"Logo" {
		t.Fatalf("unexpected options %+v", opts)
	}
}

func TestSeedUpsertsParentsFirstAndInvalidates(t *testing.T) {
	repo := &fakeRepo{}
	cache := &memoryCache{data: map[string][]Node{"tree:en": nil}}
	svc := New(repo, cache, logger.Discard())

	nodes := []seed.Node{
		{Slug: "design", NameEN: "Design", Children: []seed.Node{{Slug: "logo", NameEN: "Logo"}}},
		{Slug: "tech", NameEN: "Tech"},
	}

	count, err := svc.Seed(context.Background(), nodes)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 upserts, got %d", count)
	}
	if repo.upserted[0].ParentID != nil || repo.upserted[1].ParentID == nil {
		t.Fatalf("expected parent before child, got %+v", repo.upserted)
	}
	if repo.upserted[2].SortOrder != 1 {
		t.Fatalf("expected sibling position as sort order, got %d", repo.upserted[2].SortOrder)
	}
	if cache.invalidated != 1 {
		t.Fatal("expected cache invalidation after seeding")
	}
}
