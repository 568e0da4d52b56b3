package service

import (
	"context"
	"strings"
	"time"

	"gigportal_backend/internal/adapters/storage"
	"gigportal_backend/internal/events"
	"gigportal_backend/internal/gigs/repository"
	"gigportal_backend/internal/gigs/slug"
	"gigportal_backend/platform/apperr"
	"gigportal_backend/platform/i18n"
	"gigportal_backend/platform/logger"
	"gigportal_backend/platform/sanitize"

	"github.com/google/uuid"
)

const (
	// MaxTags is the most tags a listing can carry.
	MaxTags = 10

	WorkTypeRemote = "remote"
	WorkTypeLocal  = "local"
	WorkTypeHybrid = "hybrid"

	msgNotOwner        = "you can only change your own listings"
	msgTitleRequired   = "title is required"
	msgInvalidWorkType = "work type must be remote, local or hybrid"
	msgInvalidSlug     = "slug may only contain lowercase letters, digits and single hyphens"
)

// AuditScheduler enqueues the delayed check that a new listing received a package.
type AuditScheduler interface {
	SchedulePackageAudit(ctx context.Context, gigID uuid.UUID, delay time.Duration) error
}

// Service provides business logic for gigs, their packages and media.
type Service struct {
	repo       repository.Repository
	eventBus   events.Bus
	storage    storage.StorageService
	bucket     string
	baseURL    string
	audits     AuditScheduler
	auditDelay time.Duration
	now        func() time.Time
	log        *logger.Logger
}

// New creates a new gigs service. storageSvc may be nil when uploads are disabled.
func New(repo repository.Repository, eventBus events.Bus, storageSvc storage.StorageService, bucket, baseURL string, log *logger.Logger) *Service {
	return &Service{
		repo:     repo,
		eventBus: eventBus,
		storage:  storageSvc,
		bucket:   bucket,
		baseURL:  strings.TrimRight(baseURL, "/"),
		now:      time.Now,
		log:      log,
	}
}

// SetAuditScheduler enables the delayed package audit for new listings.
func (s *Service) SetAuditScheduler(audits AuditScheduler, delay time.Duration) {
	s.audits = audits
	s.auditDelay = delay
}

// CreateGigParams is the input for Create.
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
	LocationCity    string
	LocationCountry string
	ServiceRadiusKm *int
}

// UpdateGigParams is the input for Update. UserID must own the gig.
type UpdateGigParams struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Title           string
	Description     string
	CategoryID      *uuid.UUID
	Tags            []string
	WorkType        string
	LocationCity    string
	LocationCountry string
	ServiceRadiusKm *int
}

// GigDetail is a gig with its packages and images. Package is the first one, if any.
type GigDetail struct {
	Gig      repository.Gig
	Package  *repository.Package
	Packages []repository.Package
	Images   []repository.Image
}

type location struct {
	city    *string
	country *string
	radius  *int
}

// normalizeLocation drops location fields for remote work.
func normalizeLocation(workType, city, country string, radius *int) location {
	if workType == WorkTypeRemote {
		return location{}
	}
	return location{
		city:    optional(sanitize.Line(city)),
		country: optional(sanitize.Line(country)),
		radius:  radius,
	}
}

func normalizeWorkType(wt string) (string, error) {
	wt = strings.ToLower(strings.TrimSpace(wt))
	switch wt {
	case "":
		return WorkTypeRemote, nil
	case WorkTypeRemote, WorkTypeLocal, WorkTypeHybrid:
		return wt, nil
	default:
		return "", apperr.Validation(msgInvalidWorkType)
	}
}

// Create stores a new listing and returns its ID. An empty slug is derived from the title.
func (s *Service) Create(ctx context.Context, p CreateGigParams) (uuid.UUID, error) {
	title := sanitize.Line(p.Title)
	if title == "" {
		return uuid.Nil, apperr.Validation(msgTitleRequired)
	}
	workType, err := normalizeWorkType(p.WorkType)
	if err != nil {
		return uuid.Nil, err
	}

	gigSlug := strings.TrimSpace(p.Slug)
	switch {
	case gigSlug == "":
		gigSlug = slug.Unique(title, s.now())
	case !slug.Valid(gigSlug):
		return uuid.Nil, apperr.Validation(msgInvalidSlug)
	}

	loc := normalizeLocation(workType, p.LocationCity, p.LocationCountry, p.ServiceRadiusKm)
	gig, err := s.repo.CreateGig(ctx, repository.CreateGigParams{
		FreelancerID:    p.FreelancerID,
		UserID:          p.UserID,
		Slug:            gigSlug,
		Locale:          i18n.Normalize(p.Locale),
		Title:           title,
		Description:     sanitize.Text(p.Description),
		CategoryID:      p.CategoryID,
		Tags:            sanitize.Tags(p.Tags, MaxTags),
		WorkType:        workType,
		LocationCity:    loc.city,
		LocationCountry: loc.country,
		ServiceRadiusKm: loc.radius,
	})
	if err != nil {
		return uuid.Nil, err
	}

	s.eventBus.Publish(ctx, events.GigCreated{
		BaseEvent:    events.NewBaseEvent(),
		GigID:        gig.ID,
		FreelancerID: gig.FreelancerID,
		UserID:       gig.UserID,
		Slug:         gig.Slug,
		Title:        gig.Title,
		Locale:       gig.Locale,
	})

	if s.audits != nil {
		if err := s.audits.SchedulePackageAudit(ctx, gig.ID, s.auditDelay); err != nil {
			s.log.Warn("failed to schedule package audit", "gigId", gig.ID, "error", err)
		}
	}

	s.log.Info("gig created", "id", gig.ID, "slug", gig.Slug)
	return gig.ID, nil
}

// Update overwrites the editable fields of a listing owned by p.UserID.
func (s *Service) Update(ctx context.Context, p UpdateGigParams) error {
	if _, err := s.ownedGig(ctx, p.ID, p.UserID); err != nil {
		return err
	}

	title := sanitize.Line(p.Title)
	if title == "" {
		return apperr.Validation(msgTitleRequired)
	}
	workType, err := normalizeWorkType(p.WorkType)
	if err != nil {
		return err
	}

	loc := normalizeLocation(workType, p.LocationCity, p.LocationCountry, p.ServiceRadiusKm)
	gig, err := s.repo.UpdateGig(ctx, repository.UpdateGigParams{
		ID:              p.ID,
		Title:           title,
		Description:     sanitize.Text(p.Description),
		CategoryID:      p.CategoryID,
		Tags:            sanitize.Tags(p.Tags, MaxTags),
		WorkType:        workType,
		LocationCity:    loc.city,
		LocationCountry: loc.country,
		ServiceRadiusKm: loc.radius,
	})
	if err != nil {
		return err
	}

	s.eventBus.Publish(ctx, events.GigUpdated{
		BaseEvent: events.NewBaseEvent(),
		GigID:     gig.ID,
		UserID:    p.UserID,
		Slug:      gig.Slug,
	})
	s.log.Info("gig updated", "id", gig.ID)
	return nil
}

// GetBySlug loads a listing with its packages and images. Returns nil, nil when
// no listing has the slug.
func (s *Service) GetBySlug(ctx context.Context, gigSlug, locale string) (*GigDetail, error) {
	gig, err := s.repo.GetGigBySlug(ctx, gigSlug, i18n.Normalize(locale))
	if apperr.Is(err, apperr.KindNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	packages, err := s.repo.ListPackages(ctx, gig.ID)
	if err != nil {
		return nil, err
	}
	images, err := s.repo.ListImages(ctx, gig.ID)
	if err != nil {
		return nil, err
	}

	detail := &GigDetail{Gig: gig, Packages: packages, Images: images}
	if len(packages) > 0 {
		first := packages[0]
		detail.Package = &first
	}
	return detail, nil
}

// ListByFreelancer returns a freelancer's listings for the management view.
func (s *Service) ListByFreelancer(ctx context.Context, freelancerID uuid.UUID) ([]repository.GigSummary, error) {
	return s.repo.ListGigsByFreelancer(ctx, freelancerID)
}

func (s *Service) ownedGig(ctx context.Context, gigID, userID uuid.UUID) (repository.Gig, error) {
	gig, err := s.repo.GetGigByID(ctx, gigID)
	if err != nil {
		return repository.Gig{}, err
	}
	if gig.UserID != userID {
		return repository.Gig{}, apperr.Forbidden(msgNotOwner)
	}
	return gig, nil
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
