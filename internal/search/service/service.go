package service

import (
	"context"
	"strings"

	"gigportal_backend/internal/search/repository"
	"gigportal_backend/internal/search/transport"
	"gigportal_backend/platform/apperr"
	"gigportal_backend/platform/i18n"
)

const defaultLimit = 20

// GigSearcher runs the ranked listing query.
type GigSearcher interface {
	SearchGigs(ctx context.Context, f repository.Filters) ([]repository.SearchResult, error)
}

type Service struct {
	repo GigSearcher
}

func New(repo GigSearcher) *Service {
	return &Service{repo: repo}
}

// SearchGigs searches active listings. An empty query browses newest first.
func (s *Service) SearchGigs(ctx context.Context, req transport.SearchRequest) (*transport.SearchResponse, error) {
	locale := i18n.Normalize(req.Locale)

	limit := req.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	results, err := s.repo.SearchGigs(ctx, repository.Filters{
		Query:        strings.TrimSpace(req.Query),
		TextConfig:   textConfig(locale),
		CategorySlug: strings.ToLower(strings.TrimSpace(req.Category)),
		WorkType:     strings.ToLower(strings.TrimSpace(req.WorkType)),
		Limit:        limit,
		Offset:       req.Offset,
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "search failed", err).WithOp("search.SearchGigs")
	}

	total := 0
	if len(results) > 0 && results[0].Total > 0 {
		// COUNT(*) OVER() returns bigint
		if results[0].Total > int64(^uint(0)>>1) {
			total = int(^uint(0) >> 1)
		} else {
			total = int(results[0].Total)
		}
	}

	items := make([]transport.SearchResultItem, len(results))
	for i, r := range results {
		items[i] = transport.SearchResultItem{
			ID:        r.ID.String(),
			Slug:      r.Slug,
			Title:     r.Title,
			Preview:   r.Preview,
			WorkType:  r.WorkType,
			Location:  r.LocationCity,
			Category:  r.CategorySlug,
			FromPrice: fromPrice(r.FromPriceCents),
			Currency:  r.Currency,
			Link:      buildFrontendLink(locale, r.Slug),
			Score:     float64(r.Score),
			CreatedAt: r.CreatedAt,
		}
	}

	return &transport.SearchResponse{Items: items, Total: total}, nil
}

// textConfig picks the Postgres stemming dictionary for the site locale.
func textConfig(locale string) string {
	if locale == i18n.NL {
		return "dutch"
	}
	return "english"
}

func fromPrice(cents *int64) *float64 {
	if cents == nil {
		return nil
	}
	p := float64(*cents) / 100
	return &p
}

func buildFrontendLink(locale, slug string) string {
	return "/" + locale + "/gigs/" + slug
}
