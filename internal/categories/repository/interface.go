package repository

import (
	"context"

	"github.com/google/uuid"
)

// Category is a single row of the category tree in parent-pointer form.
type Category struct {
	ID        uuid.UUID  `db:"id"`
	ParentID  *uuid.UUID `db:"parent_id"`
	Slug      string     `db:"slug"`
	NameEN    string     `db:"name_en"`
	NameNL    *string    `db:"name_nl"`
	SortOrder int        `db:"sort_order"`
}

// UpsertParams contains data for inserting or refreshing a category by slug.
type UpsertParams struct {
	ParentID  *uuid.UUID
	Slug      string
	NameEN    string
	NameNL    string
	SortOrder int
}

// Repository defines the category persistence operations.
type Repository interface {
	// ListActive returns active categories ordered by sort_order, then English name.
	ListActive(ctx context.Context) ([]Category, error)
	// Upsert inserts a category or updates the row with the same slug, returning its ID.
	Upsert(ctx context.Context, params UpsertParams) (uuid.UUID, error)
}
