// Package service drives the service draft form for the freelancer dashboard.
package service

import (
	"context"
	"time"

	"gigportal_backend/internal/gigs/draft"
	gigrepo "gigportal_backend/internal/gigs/repository"
	"gigportal_backend/platform/apperr"
	"gigportal_backend/platform/logger"

	"github.com/google/uuid"
)

// ListingReader returns a freelancer's listings.
type ListingReader interface {
	ListByFreelancer(ctx context.Context, freelancerID uuid.UUID) ([]gigrepo.GigSummary, error)
}

// Service builds one draft controller per request.
type Service struct {
	session    draft.SessionProvider
	categories draft.CategorySource
	gigs       draft.GigBackend
	listings   ListingReader
	now        func() time.Time
	log        *logger.Logger
}

// New creates the dashboard service.
func New(session draft.SessionProvider, categories draft.CategorySource, gigs draft.GigBackend, listings ListingReader, log *logger.Logger) *Service {
	return &Service{
		session:    session,
		categories: categories,
		gigs:       gigs,
		listings:   listings,
		now:        time.Now,
		log:        log,
	}
}

// newController wires a controller whose redirect is reported to the client
// in the submit result instead of being driven by a server timer.
func (s *Service) newController() *draft.Controller {
	return draft.New(draft.Deps{
		Session:    s.session,
		Categories: s.categories,
		Gigs:       s.gigs,
		Navigator: draft.NavigatorFunc(func(path string) {
			s.log.Debug("dashboard redirect", "path", path)
		}),
		AfterFunc: func(_ time.Duration, f func()) { f() },
		Now:       s.now,
		Log:       s.log,
	})
}

// LoadForm prepares the form for a new listing, or for editing editSlug.
func (s *Service) LoadForm(ctx context.Context, clerkID, locale, editSlug string) (*draft.Controller, error) {
	ctrl := s.newController()
	if err := ctrl.Load(ctx, draft.LoadRequest{ClerkID: clerkID, Locale: locale, EditSlug: editSlug}); err != nil {
		return nil, err
	}
	return ctrl, nil
}

// Submit loads a fresh controller, applies form and submits it. The returned
// error covers load failures only. Validation and remote failures come back
// as a Result with StatusError.
func (s *Service) Submit(ctx context.Context, clerkID, locale, editSlug string, form draft.ServiceForm) (draft.Result, error) {
	ctrl, err := s.LoadForm(ctx, clerkID, locale, editSlug)
	if err != nil {
		return draft.Result{}, err
	}
	ctrl.Replace(form)
	return ctrl.Submit(ctx)
}

// Listings returns the caller's listings for the management view.
func (s *Service) Listings(ctx context.Context, clerkID string) ([]gigrepo.GigSummary, error) {
	user, err := s.session.UserByClerkID(ctx, clerkID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("user not found")
	}
	freelancer, err := s.session.FreelancerByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if freelancer == nil {
		return []gigrepo.GigSummary{}, nil
	}
	return s.listings.ListByFreelancer(ctx, freelancer.ID)
}
