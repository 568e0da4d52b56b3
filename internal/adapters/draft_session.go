package adapters

import (
	"context"

	accountsrepo "gigportal_backend/internal/accounts/repository"
	"gigportal_backend/internal/gigs/draft"
	"gigportal_backend/internal/gigs/handler"
	"gigportal_backend/platform/apperr"

	"github.com/google/uuid"
)

// AccountLookup is the part of the accounts service the dashboard needs.
type AccountLookup interface {
	GetByClerkID(ctx context.Context, clerkID string) (*accountsrepo.User, error)
	GetFreelancerByUserID(ctx context.Context, userID uuid.UUID) (*accountsrepo.Freelancer, error)
}

// DraftSessionAdapter resolves the signed-in user for the service draft form.
type DraftSessionAdapter struct {
	accounts AccountLookup
}

func NewDraftSessionAdapter(accounts AccountLookup) *DraftSessionAdapter {
	return &DraftSessionAdapter{accounts: accounts}
}

func (a *DraftSessionAdapter) UserByClerkID(ctx context.Context, clerkID string) (*draft.User, error) {
	u, err := a.accounts.GetByClerkID(ctx, clerkID)
	if err != nil || u == nil {
		return nil, err
	}
	return &draft.User{ID: u.ID, Locale: u.Locale}, nil
}

func (a *DraftSessionAdapter) FreelancerByUserID(ctx context.Context, userID uuid.UUID) (*draft.Freelancer, error) {
	f, err := a.accounts.GetFreelancerByUserID(ctx, userID)
	if err != nil || f == nil {
		return nil, err
	}
	return &draft.Freelancer{ID: f.ID}, nil
}

var _ draft.SessionProvider = (*DraftSessionAdapter)(nil)

// GigOwnerResolver maps a Clerk user to the freelancer that owns gigs.
type GigOwnerResolver struct {
	accounts AccountLookup
}

func NewGigOwnerResolver(accounts AccountLookup) *GigOwnerResolver {
	return &GigOwnerResolver{accounts: accounts}
}

func (r *GigOwnerResolver) ResolveOwner(ctx context.Context, clerkID string) (handler.Owner, error) {
	u, err := r.accounts.GetByClerkID(ctx, clerkID)
	if err != nil {
		return handler.Owner{}, err
	}
	if u == nil {
		return handler.Owner{}, apperr.NotFound("user not found")
	}
	f, err := r.accounts.GetFreelancerByUserID(ctx, u.ID)
	if err != nil {
		return handler.Owner{}, err
	}
	if f == nil {
		return handler.Owner{}, apperr.NotFound("freelancer profile not found")
	}
	return handler.Owner{UserID: u.ID, FreelancerID: f.ID, Locale: u.Locale}, nil
}

var _ handler.OwnerResolver = (*GigOwnerResolver)(nil)
