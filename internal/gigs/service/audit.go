package service

import (
	"context"
	"time"

	"gigportal_backend/internal/gigs/repository"
	"gigportal_backend/platform/apperr"

	"github.com/google/uuid"
)

// AuditPackages marks a listing incomplete when it has no package. Creating a
// listing and its first package are separate calls, so a failure between them
// leaves a listing without pricing. Deleted listings are ignored.
func (s *Service) AuditPackages(ctx context.Context, gigID uuid.UUID) error {
	gig, err := s.repo.GetGigByID(ctx, gigID)
	if apperr.Is(err, apperr.KindNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	packages, err := s.repo.ListPackages(ctx, gigID)
	if err != nil {
		return err
	}
	if len(packages) > 0 || gig.Status == repository.StatusIncomplete {
		return nil
	}

	if err := s.repo.SetStatus(ctx, gigID, repository.StatusIncomplete); err != nil {
		return err
	}
	s.log.Warn("gig has no package, marked incomplete", "gigId", gigID, "slug", gig.Slug)
	return nil
}

// SweepBatchSize bounds how many listings one sweep audits.
const SweepBatchSize = 100

// AuditUnpricedBefore audits listings created before cutoff that still have no
// package. It catches listings whose delayed audit was never enqueued.
func (s *Service) AuditUnpricedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	ids, err := s.repo.ListUnpricedGigIDs(ctx, cutoff, SweepBatchSize)
	if err != nil {
		return 0, err
	}
	audited := 0
	for _, id := range ids {
		if err := s.AuditPackages(ctx, id); err != nil {
			return audited, err
		}
		audited++
	}
	return audited, nil
}
