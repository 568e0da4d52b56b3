package service

import (
	"context"
	"math"
	"strings"

	"gigportal_backend/internal/events"
	"gigportal_backend/internal/gigs/repository"
	"gigportal_backend/platform/apperr"
	"gigportal_backend/platform/sanitize"

	"github.com/google/uuid"
)

// Package tiers.
const (
	TierBasic    = "basic"
	TierStandard = "standard"
	TierPremium  = "premium"

	DefaultCurrency      = "EUR"
	DefaultDeliveryDays  = 7
	DefaultRevisionCount = 1

	msgInvalidTier  = "tier must be basic, standard or premium"
	msgInvalidPrice = "price must be greater than 0"
)

// CreatePackageParams is the input for CreatePackage. UserID must own the gig.
// Zero DeliveryDays falls back to 7. Negative RevisionCount falls back to 1.
type CreatePackageParams struct {
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

// PriceToCents converts a decimal price to integer cents, rounding half away from zero.
func PriceToCents(price float64) int64 {
	return int64(math.Round(price * 100))
}

// CentsToPrice converts integer cents back to a decimal price.
func CentsToPrice(cents int64) float64 {
	return float64(cents) / 100
}

// CreatePackage attaches a priced tier to a listing and returns its ID.
func (s *Service) CreatePackage(ctx context.Context, p CreatePackageParams) (uuid.UUID, error) {
	gig, err := s.ownedGig(ctx, p.GigID, p.UserID)
	if err != nil {
		return uuid.Nil, err
	}

	tier := strings.ToLower(strings.TrimSpace(p.Tier))
	switch tier {
	case TierBasic, TierStandard, TierPremium:
	default:
		return uuid.Nil, apperr.Validation(msgInvalidTier)
	}

	if math.IsNaN(p.Price) || math.IsInf(p.Price, 0) || p.Price <= 0 {
		return uuid.Nil, apperr.Validation(msgInvalidPrice)
	}
	cents := PriceToCents(p.Price)
	if cents <= 0 {
		return uuid.Nil, apperr.Validation(msgInvalidPrice)
	}

	title := sanitize.Line(p.Title)
	if title == "" {
		title = gig.Title
	}
	currency := strings.ToUpper(strings.TrimSpace(p.Currency))
	if currency == "" {
		currency = DefaultCurrency
	}
	deliveryDays := p.DeliveryDays
	if deliveryDays <= 0 {
		deliveryDays = DefaultDeliveryDays
	}
	revisions := p.RevisionCount
	if revisions < 0 {
		revisions = DefaultRevisionCount
	}

	pkg, err := s.repo.CreatePackage(ctx, repository.CreatePackageParams{
		GigID:         gig.ID,
		Tier:          tier,
		Title:         title,
		Description:   sanitize.Text(p.Description),
		PriceCents:    cents,
		Currency:      currency,
		DeliveryDays:  deliveryDays,
		RevisionCount: revisions,
	})
	if err != nil {
		return uuid.Nil, err
	}

	if gig.Status == repository.StatusIncomplete {
		if err := s.repo.SetStatus(ctx, gig.ID, repository.StatusActive); err != nil {
			s.log.Warn("failed to reactivate gig", "gigId", gig.ID, "error", err)
		}
	}

	s.eventBus.Publish(ctx, events.GigPackageCreated{
		BaseEvent:  events.NewBaseEvent(),
		GigID:      gig.ID,
		PackageID:  pkg.ID,
		Tier:       pkg.Tier,
		PriceCents: pkg.PriceCents,
		Currency:   pkg.Currency,
	})
	s.log.Info("gig package created", "gigId", gig.ID, "packageId", pkg.ID, "tier", pkg.Tier)
	return pkg.ID, nil
}
