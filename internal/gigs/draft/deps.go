package draft

import (
	"context"
	"time"

	categories "gigportal_backend/internal/categories/service"

	"github.com/google/uuid"
)

// User is the local account behind a Clerk session.
type User struct {
	ID     uuid.UUID
	Locale string
}

// Freelancer is the seller profile of a user.
type Freelancer struct {
	ID uuid.UUID
}

// Package is the first pricing package of an existing listing.
type Package struct {
	Title         string
	Description   string
	Price         float64
	DeliveryDays  int
	RevisionCount int
}

// Gig is an existing listing loaded for editing.
type Gig struct {
	ID              uuid.UUID
	FreelancerID    uuid.UUID
	Slug            string
	Title           string
	Description     string
	CategoryID      *uuid.UUID
	Tags            []string
	WorkType        string
	LocationCity    string
	LocationCountry string
	ServiceRadiusKm *int
	Package         *Package
}

// CreateGig is the payload for a new listing.
type CreateGig struct {
	FreelancerID    uuid.UUID
	UserID          uuid.UUID
	Slug            string
	Locale          string
	Title           string
	Description     string
	CategoryID      *uuid.UUID
	Tags            []string
	WorkType        WorkType
	LocationCity    string
	LocationCountry string
	ServiceRadiusKm *int
}

// CreatePackage is the payload for attaching a package to a listing.
type CreatePackage struct {
	GigID         uuid.UUID
	UserID        uuid.UUID
	Tier          string
	Title         string
	Description   string
	Price         float64
	Currency      string
	DeliveryDays  int
	RevisionCount int
}

// UpdateGig carries the fields that stay editable after creation.
type UpdateGig struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Title           string
	Description     string
	CategoryID      *uuid.UUID
	Tags            []string
	WorkType        WorkType
	LocationCity    string
	LocationCountry string
	ServiceRadiusKm *int
}

// SessionProvider resolves the signed-in user. A nil result with a nil error means not found.
type SessionProvider interface {
	UserByClerkID(ctx context.Context, clerkID string) (*User, error)
	FreelancerByUserID(ctx context.Context, userID uuid.UUID) (*Freelancer, error)
}

// CategorySource returns the category tree for a locale.
type CategorySource interface {
	List(ctx context.Context, locale string) ([]categories.Node, error)
}

// GigBackend performs the listing lookups and writes. GetBySlug returns nil, nil when missing.
type GigBackend interface {
	GetBySlug(ctx context.Context, slug, locale string) (*Gig, error)
	Create(ctx context.Context, payload CreateGig) (uuid.UUID, error)
	CreatePackage(ctx context.Context, payload CreatePackage) (uuid.UUID, error)
	Update(ctx context.Context, payload UpdateGig) error
}

// Navigator moves the client to another dashboard page.
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) { f(path) }

// AfterFunc runs f once d has elapsed. time.AfterFunc satisfies it after wrapping.
type AfterFunc func(d time.Duration, f func())
