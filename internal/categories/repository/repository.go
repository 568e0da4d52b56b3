package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo implements the category repository.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new category repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

const listActiveQuery = `
	SELECT id, parent_id, slug, name_en, name_nl, sort_order
	FROM categories
	WHERE is_active = true
	ORDER BY sort_order ASC, name_en ASC`

// ListActive returns active categories in display order.
func (r *Repo) ListActive(ctx context.Context) ([]Category, error) {
	rows, err := r.pool.Query(ctx, listActiveQuery)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	defer rows.Close()

	items := make([]Category, 0)
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.ParentID, &c.Slug, &c.NameEN, &c.NameNL, &c.SortOrder); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return items, nil
}

const upsertQuery = `
	INSERT INTO categories (parent_id, slug, name_en, name_nl, sort_order)
	VALUES ($1, $2, $3, NULLIF($4, ''), $5)
	ON CONFLICT (slug) DO UPDATE
	SET parent_id = EXCLUDED.parent_id,
		name_en = EXCLUDED.name_en,
		name_nl = EXCLUDED.name_nl,
		sort_order = EXCLUDED.sort_order,
		is_active = true,
		updated_at = now()
	RETURNING id`

// Upsert inserts or refreshes a category keyed by slug.
func (r *Repo) Upsert(ctx context.Context, params UpsertParams) (uuid.UUID, error) {
	var id uuid.UUID
	if err := r.pool.QueryRow(ctx, upsertQuery,
		params.ParentID, params.Slug, params.NameEN, params.NameNL, params.SortOrder,
	).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("upsert category %s: %w", params.Slug, err)
	}
	return id, nil
}
