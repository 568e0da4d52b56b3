package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Listing statuses.
const (
	StatusActive     = "active"
	StatusPaused     = "paused"
	StatusIncomplete = "incomplete"
)

// Gig is a freelancer's service listing.
type Gig struct {
	ID              uuid.UUID  `db:"id"`
	FreelancerID    uuid.UUID  `db:"freelancer_id"`
	UserID          uuid.UUID  `db:"user_id"`
	Slug            string     `db:"slug"`
	Locale          string     `db:"locale"`
	Title           string     `db:"title"`
	Description     string     `db:"description"`
	CategoryID      *uuid.UUID `db:"category_id"`
	CategoryName    *string    `db:"category_name"`
	Tags            []string   `db:"tags"`
	WorkType        string     `db:"work_type"`
	LocationCity    *string    `db:"location_city"`
	LocationCountry *string    `db:"location_country"`
	ServiceRadiusKm *int       `db:"service_radius_km"`
	Status          string     `db:"status"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}

// GigSummary is a listing row for the freelancer's management view.
type GigSummary struct {
	ID            uuid.UUID `db:"id"`
	Slug          string    `db:"slug"`
	Title         string    `db:"title"`
	Status        string    `db:"status"`
	PackageCount  int       `db:"package_count"`
	StartingCents *int64    `db:"starting_cents"`
	Currency      *string   `db:"currency"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// Package is a priced tier attached to a gig.
type Package struct {
	ID            uuid.UUID `db:"id"`
	GigID         uuid.UUID `db:"gig_id"`
	Tier          string    `db:"tier"`
	Title         string    `db:"title"`
	Description   string    `db:"description"`
	PriceCents    int64     `db:"price_cents"`
	Currency      string    `db:"currency"`
	DeliveryDays  int       `db:"delivery_days"`
	RevisionCount int       `db:"revision_count"`
	CreatedAt     time.Time `db:"created_at"`
}

// Image is an uploaded listing image.
type Image struct {
	ID          uuid.UUID `db:"id"`
	GigID       uuid.UUID `db:"gig_id"`
	FileKey     string    `db:"file_key"`
	ContentType string    `db:"content_type"`
	SizeBytes   int64     `db:"size_bytes"`
	SortOrder   int       `db:"sort_order"`
	CreatedAt   time.Time `db:"created_at"`
}

// CreateGigParams contains data for inserting a gig.
type CreateGigParams struct {
	FreelancerID    uuid.UUID
	UserID          uuid.UUID
	Slug            string
	Locale          string
	Title           string
	Description     string
	CategoryID      *uuid.UUID
	Tags            []string
	WorkType        string
	LocationCity    *string
	LocationCountry *string
	ServiceRadiusKm *int
}

// UpdateGigParams contains the fields that stay editable after creation.
type UpdateGigParams struct {
	ID              uuid.UUID
	Title           string
	Description     string
	CategoryID      *uuid.UUID
	Tags            []string
	WorkType        string
	LocationCity    *string
	LocationCountry *string
	ServiceRadiusKm *int
}

// CreatePackageParams contains data for inserting a package.
type CreatePackageParams struct {
	GigID         uuid.UUID
	Tier          string
	Title         string
	Description   string
	PriceCents    int64
	Currency      string
	DeliveryDays  int
	RevisionCount int
}

// CreateImageParams contains data for registering an uploaded image.
type CreateImageParams struct {
	GigID       uuid.UUID
	FileKey     string
	ContentType string
	SizeBytes   int64
}

// Repository defines gig persistence operations.
type Repository interface {
	CreateGig(ctx context.Context, params CreateGigParams) (Gig, error)
	GetGigByID(ctx context.Context, id uuid.UUID) (Gig, error)
	// GetGigBySlug loads a gig with its category name in the given locale.
	GetGigBySlug(ctx context.Context, slug, locale string) (Gig, error)
	UpdateGig(ctx context.Context, params UpdateGigParams) (Gig, error)
	SetStatus(ctx context.Context, id uuid.UUID, status string) error
	ListGigsByFreelancer(ctx context.Context, freelancerID uuid.UUID) ([]GigSummary, error)
	// ListUnpricedGigIDs returns up to limit gigs created before cutoff without any package.
	ListUnpricedGigIDs(ctx context.Context, cutoff time.Time, limit int) ([]uuid.UUID, error)

	CreatePackage(ctx context.Context, params CreatePackageParams) (Package, error)
	// ListPackages returns packages ordered basic, standard, premium.
	ListPackages(ctx context.Context, gigID uuid.UUID) ([]Package, error)

	CreateImage(ctx context.Context, params CreateImageParams) (Image, error)
	ListImages(ctx context.Context, gigID uuid.UUID) ([]Image, error)
}
