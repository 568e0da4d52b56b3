package adapters

import (
	"context"

	"gigportal_backend/internal/gigs/draft"
	gigsvc "gigportal_backend/internal/gigs/service"

	"github.com/google/uuid"
)

// GigWriter is the part of the gigs service the draft form calls.
type GigWriter interface {
	GetBySlug(ctx context.Context, slug, locale string) (*gigsvc.GigDetail, error)
	Create(ctx context.Context, p gigsvc.CreateGigParams) (uuid.UUID, error)
	CreatePackage(ctx context.Context, p gigsvc.CreatePackageParams) (uuid.UUID, error)
	Update(ctx context.Context, p gigsvc.UpdateGigParams) error
}

// DraftGigBackend runs the draft form's listing operations against the gigs service.
type DraftGigBackend struct {
	gigs GigWriter
}

func NewDraftGigBackend(gigs GigWriter) *DraftGigBackend {
	return &DraftGigBackend{gigs: gigs}
}

func (a *DraftGigBackend) GetBySlug(ctx context.Context, slug, locale string) (*draft.Gig, error) {
	d, err := a.gigs.GetBySlug(ctx, slug, locale)
	if err != nil || d == nil {
		return nil, err
	}

	g := d.Gig
	out := &draft.Gig{
		ID:              g.ID,
		FreelancerID:    g.FreelancerID,
		Slug:            g.Slug,
		Title:           g.Title,
		Description:     g.Description,
		CategoryID:      g.CategoryID,
		Tags:            g.Tags,
		WorkType:        g.WorkType,
		LocationCity:    deref(g.LocationCity),
		LocationCountry: deref(g.LocationCountry),
		ServiceRadiusKm: g.ServiceRadiusKm,
	}
	if p := d.Package; p != nil {
		out.Package = &draft.Package{
			Title:         p.Title,
			Description:   p.Description,
			Price:         gigsvc.CentsToPrice(p.PriceCents),
			DeliveryDays:  p.DeliveryDays,
			RevisionCount: p.RevisionCount,
		}
	}
	return out, nil
}

func (a *DraftGigBackend) Create(ctx context.Context, p draft.CreateGig) (uuid.UUID, error) {
	return a.gigs.Create(ctx, gigsvc.CreateGigParams{
		FreelancerID:    p.FreelancerID,
		UserID:          p.UserID,
		Slug:            p.Slug,
		Locale:          p.Locale,
		Title:           p.Title,
		Description:     p.Description,
		CategoryID:      p.CategoryID,
		Tags:            p.Tags,
		WorkType:        string(p.WorkType),
		LocationCity:    p.LocationCity,
		LocationCountry: p.LocationCountry,
		ServiceRadiusKm: p.ServiceRadiusKm,
	})
}

func (a *DraftGigBackend) CreatePackage(ctx context.Context, p draft.CreatePackage) (uuid.UUID, error) {
	return a.gigs.CreatePackage(ctx, gigsvc.CreatePackageParams{
		GigID:         p.GigID,
		UserID:        p.UserID,
		Tier:          p.Tier,
		Title:         p.Title,
		Description:   p.Description,
		Price:         p.Price,
		Currency:      p.Currency,
		DeliveryDays:  p.DeliveryDays,
		RevisionCount: p.RevisionCount,
	})
}

func (a *DraftGigBackend) Update(ctx context.Context, p draft.UpdateGig) error {
	return a.gigs.Update(ctx, gigsvc.UpdateGigParams{
		ID:              p.ID,
		UserID:          p.UserID,
		Title:           p.Title,
		Description:     p.Description,
		CategoryID:      p.CategoryID,
		Tags:            p.Tags,
		WorkType:        string(p.WorkType),
		LocationCity:    p.LocationCity,
		LocationCountry: p.LocationCountry,
		ServiceRadiusKm: p.ServiceRadiusKm,
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

var _ draft.GigBackend = (*DraftGigBackend)(nil)
