package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Filters narrows a gig search. Empty fields do not filter.
type Filters struct {
	Query        string
	TextConfig   string
	CategorySlug string
	WorkType     string
	Limit        int
	Offset       int
}

type SearchResult struct {
	ID             uuid.UUID
	Slug           string
	Title          string
	Preview        string
	Locale         string
	WorkType       string
	LocationCity   *string
	CategorySlug   *string
	FromPriceCents *int64
	Currency       *string
	Score          float32
	CreatedAt      time.Time
	Total          int64
}

// SearchGigs ranks active listings by title (A), tags (B) and description (C).
// A category filter includes the category's descendants.
func (r *Repository) SearchGigs(ctx context.Context, f Filters) ([]SearchResult, error) {
	querySQL := `
		WITH RECURSIVE search_query AS (
			SELECT
				websearch_to_tsquery('simple', $1) ||
				websearch_to_tsquery($2::regconfig, $1) AS q
		),
		category_scope AS (
			SELECT id FROM categories WHERE slug = $3
			UNION
			SELECT c.id FROM categories c JOIN category_scope cs ON c.parent_id = cs.id
		)
		SELECT
			g.id,
			g.slug,
			g.title,
			CASE WHEN $1 = '' THEN left(g.description, 160)
			     ELSE ts_headline($2::regconfig, g.description, sq.q,
			         'MaxWords=24, MinWords=8, ShortWord=2, StartSel=[, StopSel=]')
			END AS preview,
			g.locale,
			g.work_type,
			g.location_city,
			c.slug,
			p.from_price_cents,
			p.currency,
			CASE WHEN $1 = '' THEN 0 ELSE ts_rank(
				setweight(to_tsvector('simple', g.title), 'A') ||
				setweight(to_tsvector('simple', array_to_string(g.tags, ' ')), 'B') ||
				setweight(to_tsvector($2::regconfig, g.description), 'C'),
				sq.q
			) END AS score,
			g.created_at,
			COUNT(*) OVER() AS total
		FROM gigs g
		CROSS JOIN search_query sq
		LEFT JOIN categories c ON c.id = g.category_id
		LEFT JOIN LATERAL (
			SELECT price_cents AS from_price_cents, currency
			FROM gig_packages
			WHERE gig_id = g.id
			ORDER BY price_cents ASC
			LIMIT 1
		) p ON true
		WHERE g.status = 'active'
			AND (
				$1 = ''
				OR to_tsvector('simple', g.title || ' ' || g.description) @@ sq.q
				OR to_tsvector('simple', array_to_string(g.tags, ' ')) @@ sq.q
				OR to_tsvector($2::regconfig, g.description) @@ sq.q
			)
			AND ($3 = '' OR g.category_id IN (SELECT id FROM category_scope))
			AND ($4 = '' OR g.work_type = $4)
		ORDER BY score DESC, g.created_at DESC
		LIMIT $5 OFFSET $6`

	rows, err := r.pool.Query(ctx, querySQL, f.Query, f.TextConfig, f.CategorySlug, f.WorkType, f.Limit, f.Offset)
	if err != nil {
		return nil, fmt.Errorf("search gigs: %w", err)
	}
	defer rows.Close()

	var results []SearchResult
	for rows.Next() {
		var res SearchResult
		if err := rows.Scan(
			&res.ID,
			&res.Slug,
			&res.Title,
			&res.Preview,
			&res.Locale,
			&res.WorkType,
			&res.LocationCity,
			&res.CategorySlug,
			&res.FromPriceCents,
			&res.Currency,
			&res.Score,
			&res.CreatedAt,
			&res.Total,
		); err != nil {
			return nil, fmt.Errorf("scan search result: %w", err)
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate search results: %w", err)
	}
	return results, nil
}
