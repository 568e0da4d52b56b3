package service

import (
	"context"

	"gigportal_backend/internal/categories/repository"
	"gigportal_backend/internal/categories/seed"
	"gigportal_backend/internal/categories/transport"
	"gigportal_backend/platform/i18n"
	"gigportal_backend/platform/logger"

	"github.com/google/uuid"
)

// TreeCache stores localized category trees. A nil TreeCache disables caching.
type TreeCache interface {
	Get(ctx context.Context, key string, dest interface{}) bool
	Set(ctx context.Context, key string, value interface{})
	InvalidateAll(ctx context.Context)
}

// Service provides business logic for categories.
type Service struct {
	repo  repository.Repository
	cache TreeCache
	log   *logger.Logger
}

// New creates a new category service. cache may be nil.
func New(repo repository.Repository, cache TreeCache, log *logger.Logger) *Service {
	return &Service{repo: repo, cache: cache, log: log}
}

func treeKey(locale string) string {
	return "tree:" + locale
}

// List returns the active category tree with names for locale.
func (s *Service) List(ctx context.Context, locale string) ([]Node, error) {
	locale = i18n.Normalize(locale)

	if s.cache != nil {
		var cached []Node
		if s.cache.Get(ctx, treeKey(locale), &cached) {
			return cached, nil
		}
	}

	rows, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	tree := BuildTree(rows, locale)

	if s.cache != nil {
		s.cache.Set(ctx, treeKey(locale), tree)
	}
	return tree, nil
}

// Options returns the tree flattened into dropdown entries.
func (s *Service) Options(ctx context.Context, locale string) ([]transport.CategoryOption, error) {
	tree, err := s.List(ctx, locale)
	if err != nil {
		return nil, err
	}
	return ToOptions(Flatten(tree)), nil
}

// ToOptions converts flattened categories to their transport form.
func ToOptions(flat []FlatCategory) []transport.CategoryOption {
	out := make([]transport.CategoryOption, 0, len(flat))
	for _, fc := range flat {
		out = append(out, transport.CategoryOption{
			ID:    fc.ID,
			Name:  fc.Name,
			Label: fc.Label(),
			Depth: fc.Depth,
		})
	}
	return out
}

// Seed upserts a seed tree, parents before children, and drops cached trees.
// Sibling order in the seed becomes sort_order.
func (s *Service) Seed(ctx context.Context, nodes []seed.Node) (int, error) {
	count, err := s.seedLevel(ctx, nodes, nil)
	if err != nil {
		return count, err
	}
	if s.cache != nil {
		s.cache.InvalidateAll(ctx)
	}
	s.log.Info("categories seeded", "count", count)
	return count, nil
}

func (s *Service) seedLevel(ctx context.Context, nodes []seed.Node, parentID *uuid.UUID) (int, error) {
	count := 0
	for i, n := range nodes {
		id, err := s.repo.Upsert(ctx, repository.UpsertParams{
			ParentID:  parentID,
			Slug:      n.Slug,
			NameEN:    n.NameEN,
			NameNL:    n.NameNL,
			SortOrder: i,
		})
		if err != nil {
			return count, err
		}
		count++

		parent := id
		nested, err := s.seedLevel(ctx, n.Children, &parent)
		count += nested
		if err != nil {
			return count, err
		}
	}
	return count, nil
}
