package scheduler

import (
	"context"
	"time"

	"gigportal_backend/platform/logger"
)

const (
	defaultPackageSweepInterval = time.Hour
	defaultPackageSweepGrace    = time.Hour
)

// UnpricedAuditor audits listings created before a cutoff that have no package.
type UnpricedAuditor interface {
	AuditUnpricedBefore(ctx context.Context, cutoff time.Time) (int, error)
}

// PackageAuditSweep periodically audits listings whose delayed audit was never enqueued.
type PackageAuditSweep struct {
	auditor  UnpricedAuditor
	log      *logger.Logger
	interval time.Duration
	grace    time.Duration
	now      func() time.Time
}

func NewPackageAuditSweep(auditor UnpricedAuditor, log *logger.Logger, interval, grace time.Duration) *PackageAuditSweep {
	if interval <= 0 {
		interval = defaultPackageSweepInterval
	}
	if grace <= 0 {
		grace = defaultPackageSweepGrace
	}

	return &PackageAuditSweep{
		auditor:  auditor,
		log:      log,
		interval: interval,
		grace:    grace,
		now:      time.Now,
	}
}

func (s *PackageAuditSweep) Run(ctx context.Context) {
	if s == nil || s.auditor == nil {
		return
	}

	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *PackageAuditSweep) sweep(ctx context.Context) {
	audited, err := s.auditor.AuditUnpricedBefore(ctx, s.now().Add(-s.grace))
	if err != nil {
		s.log.Warn("package audit sweep failed", "error", err)
		return
	}

	if audited > 0 {
		s.log.Info("package audit sweep marked listings incomplete", "count", audited)
	}
}
