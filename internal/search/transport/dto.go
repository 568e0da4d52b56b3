package transport

import "time"

type SearchRequest struct {
	Query    string `form:"q" validate:"omitempty,max=100"`
	Category string `form:"category" validate:"omitempty,max=80"`
	WorkType string `form:"workType" validate:"omitempty,worktype"`
	Locale   string `form:"locale" validate:"omitempty,locale"`
	Limit    int    `form:"limit" validate:"omitempty,min=1,max=50"`
	Offset   int    `form:"offset" validate:"omitempty,min=0,max=1000"`
}

type SearchResultItem struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Preview   string    `json:"preview"`   // Snippet of the description around the match
	WorkType  string    `json:"workType"`  // "remote", "local", "hybrid"
	Location  *string   `json:"location"`  // City for local and hybrid listings
	Category  *string   `json:"category"`  // Category slug
	FromPrice *float64  `json:"fromPrice"` // Cheapest package, nil when unpriced
	Currency  *string   `json:"currency"`
	Link      string    `json:"link"`  // Frontend route
	Score     float64   `json:"score"` // Relevance score
	CreatedAt time.Time `json:"createdAt"`
}

type SearchResponse struct {
	Items []SearchResultItem `json:"items"`
	Total int                `json:"total"`
}
