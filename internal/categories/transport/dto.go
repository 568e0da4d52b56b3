package transport

import "github.com/google/uuid"

type ListCategoriesRequest struct {
	Locale string `form:"locale" validate:"omitempty,locale"`
}

// CategoryOption is a flattened dropdown entry.
type CategoryOption struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Label string    `json:"label"`
	Depth int       `json:"depth"`
}

type SeedResult struct {
	Upserted int `json:"upserted"`
}
