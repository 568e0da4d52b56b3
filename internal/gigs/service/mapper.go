package service

import (
	"context"

	"gigportal_backend/internal/gigs/repository"
	"gigportal_backend/internal/gigs/transport"
)

func ToPackageResponse(p repository.Package) transport.PackageResponse {
	return transport.PackageResponse{
		ID:            p.ID,
		Tier:          p.Tier,
		Title:         p.Title,
		Description:   p.Description,
		Price:         CentsToPrice(p.PriceCents),
		PriceCents:    p.PriceCents,
		Currency:      p.Currency,
		DeliveryDays:  p.DeliveryDays,
		RevisionCount: p.RevisionCount,
	}
}

// ToGigResponse maps a detail to its API shape, presigning image URLs when storage is on.
func (s *Service) ToGigResponse(ctx context.Context, d GigDetail) transport.GigResponse {
	g := d.Gig
	resp := transport.GigResponse{
		ID:              g.ID,
		FreelancerID:    g.FreelancerID,
		Slug:            g.Slug,
		Locale:          g.Locale,
		Title:           g.Title,
		Description:     g.Description,
		CategoryID:      g.CategoryID,
		CategoryName:    g.CategoryName,
		Tags:            g.Tags,
		WorkType:        g.WorkType,
		LocationCity:    g.LocationCity,
		LocationCountry: g.LocationCountry,
		ServiceRadiusKm: g.ServiceRadiusKm,
		Status:          g.Status,
		Packages:        make([]transport.PackageResponse, 0, len(d.Packages)),
		Images:          make([]transport.ImageResponse, 0, len(d.Images)),
		CreatedAt:       g.CreatedAt,
		UpdatedAt:       g.UpdatedAt,
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	for _, p := range d.Packages {
		resp.Packages = append(resp.Packages, ToPackageResponse(p))
	}
	if d.Package != nil {
		first := ToPackageResponse(*d.Package)
		resp.Package = &first
	}
	for _, img := range d.Images {
		resp.Images = append(resp.Images, s.ToImageResponse(ctx, img))
	}
	return resp
}

func (s *Service) ToImageResponse(ctx context.Context, img repository.Image) transport.ImageResponse {
	return transport.ImageResponse{
		ID:          img.ID,
		FileKey:     img.FileKey,
		URL:         s.ImageURL(ctx, img),
		ContentType: img.ContentType,
		SortOrder:   img.SortOrder,
	}
}

func ToGigSummaryResponse(g repository.GigSummary) transport.GigSummaryResponse {
	resp := transport.GigSummaryResponse{
		ID:           g.ID,
		Slug:         g.Slug,
		Title:        g.Title,
		Status:       g.Status,
		PackageCount: g.PackageCount,
		Currency:     g.Currency,
		UpdatedAt:    g.UpdatedAt,
	}
	if g.StartingCents != nil {
		price := CentsToPrice(*g.StartingCents)
		resp.StartingPrice = &price
	}
	return resp
}
