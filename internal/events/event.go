// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"gigportal_backend/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Accounts Domain Events
// =============================================================================

// FreelancerCreated is published when a user completes their freelancer profile.
type FreelancerCreated struct {
	BaseEvent
	FreelancerID uuid.UUID `json:"freelancerId"`
	UserID       uuid.UUID `json:"userId"`
	DisplayName  string    `json:"displayName"`
}

func (e FreelancerCreated) EventName() string { return "accounts.freelancer.created" }

// =============================================================================
// Gigs Domain Events
// =============================================================================

// GigCreated is published after a new listing row is stored.
type GigCreated struct {
	BaseEvent
	GigID        uuid.UUID `json:"gigId"`
	FreelancerID uuid.UUID `json:"freelancerId"`
	UserID       uuid.UUID `json:"userId"`
	Slug         string    `json:"slug"`
	Title        string    `json:"title"`
	Locale       string    `json:"locale"`
}

func (e GigCreated) EventName() string { return "gigs.gig.created" }

// GigUpdated is published after the owner edits a listing.
type GigUpdated struct {
	BaseEvent
	GigID  uuid.UUID `json:"gigId"`
	UserID uuid.UUID `json:"userId"`
	Slug   string    `json:"slug"`
}

func (e GigUpdated) EventName() string { return "gigs.gig.updated" }

// GigPackageCreated is published when a pricing tier is attached to a listing.
type GigPackageCreated struct {
	BaseEvent
	GigID      uuid.UUID `json:"gigId"`
	PackageID  uuid.UUID `json:"packageId"`
	Tier       string    `json:"tier"`
	PriceCents int64     `json:"priceCents"`
	Currency   string    `json:"currency"`
}

func (e GigPackageCreated) EventName() string { return "gigs.package.created" }
