package adapters

import (
	"context"
	"testing"

	accountsrepo "gigportal_backend/internal/accounts/repository"
	"gigportal_backend/internal/gigs/draft"
	gigsrepo "gigportal_backend/internal/gigs/repository"
	gigsvc "gigportal_backend/internal/gigs/service"
	"gigportal_backend/platform/apperr"

	"github.com/google/uuid"
)

type fakeAccounts struct {
	users       map[string]*accountsrepo.User
	freelancers map[uuid.UUID]*accountsrepo.Freelancer
}

func (f fakeAccounts) GetByClerkID(_ context.Context, clerkID string) (*accountsrepo.User, error) {
	return f.users[clerkID], nil
}

func (f fakeAccounts) GetFreelancerByUserID(_ context.Context, userID uuid.UUID) (*accountsrepo.Freelancer, error) {
	return f.freelancers[userID], nil
}

func newFakeAccounts(withFreelancer bool) (fakeAccounts, uuid.UUID, uuid.UUID) {
	userID, freelancerID := uuid.New(), uuid.New()
	f := fakeAccounts{
		users:       map[string]*accountsrepo.User{"user_1": {ID: userID, Locale: "nl"}},
		freelancers: map[uuid.UUID]*accountsrepo.Freelancer{},
	}
	if withFreelancer {
		f.freelancers[userID] = &accountsrepo.Freelancer{ID: freelancerID, UserID: userID}
	}
	return f, userID, freelancerID
}

func TestDraftSessionAdapter(t *testing.T) {
	accounts, userID, freelancerID := newFakeAccounts(true)
	a := NewDraftSessionAdapter(accounts)

	u, err := a.UserByClerkID(context.Background(), "user_1")
	if err != nil || u == nil || u.ID != userID || u.Locale != "nl" {
		t.Fatalf("expected user %s with locale nl, got %+v (%v)", userID, u, err)
	}
	f, err := a.FreelancerByUserID(context.Background(), userID)
	if err != nil || f == nil || f.ID != freelancerID {
		t.Fatalf("expected freelancer %s, got %+v (%v)", freelancerID, f, err)
	}

	u, err = a.UserByClerkID(context.Background(), "user_unknown")
	if err != nil || u != nil {
		t.Fatalf("expected nil user without error, got %+v (%v)", u, err)
	}
}

func TestGigOwnerResolver(t *testing.T) {
	accounts, userID, freelancerID := newFakeAccounts(true)
	owner, err := NewGigOwnerResolver(accounts).ResolveOwner(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("expected owner, got %v", err)
	}
	if owner.UserID != userID || owner.FreelancerID != freelancerID || owner.Locale != "nl" {
		t.Fatalf("unexpected owner %+v", owner)
	}

	noProfile, _, _ := newFakeAccounts(false)
	cases := []struct {
		name     string
		accounts fakeAccounts
		clerkID  string
	}{
		{"unknown user", accounts, "user_unknown"},
		{"no freelancer profile", noProfile, "user_1"},
	}
	for _, tc := range cases {
		_, err := NewGigOwnerResolver(tc.accounts).ResolveOwner(context.Background(), tc.clerkID)
		if !apperr.Is(err, apperr.KindNotFound) {
			t.Fatalf("%s: expected not found, got %v", tc.name, err)
		}
	}
}

type fakeGigWriter struct {
	detail  *gigsvc.GigDetail
	created gigsvc.CreateGigParams
	pkg     gigsvc.CreatePackageParams
	updated gigsvc.UpdateGigParams
}

func (f *fakeGigWriter) GetBySlug(context.Context, string, string) (*gigsvc.GigDetail, error) {
	return f.detail, nil
}

func (f *fakeGigWriter) Create(_ context.Context, p gigsvc.CreateGigParams) (uuid.UUID, error) {
	f.created = p
	return uuid.New(), nil
}

func (f *fakeGigWriter) CreatePackage(_ context.Context, p gigsvc.CreatePackageParams) (uuid.UUID, error) {
	f.pkg = p
	return uuid.New(), nil
}

func (f *fakeGigWriter) Update(_ context.Context, p gigsvc.UpdateGigParams) error {
	f.updated = p
	return nil
}

func TestDraftGigBackendGetBySlug(t *testing.T) {
	city := "Utrecht"
	gigs := &fakeGigWriter{detail: &gigsvc.GigDetail{
		Gig:     gigsrepo.Gig{ID: uuid.New(), Slug: "logo-design-abc", Title: "Logo design for startups", WorkType: "hybrid", LocationCity: &city},
		Package: &gigsrepo.Package{Title: "Basic", PriceCents: 12550, DeliveryDays: 5, RevisionCount: 2},
	}}

	g, err := NewDraftGigBackend(gigs).GetBySlug(context.Background(), "logo-design-abc", "en")
	if err != nil {
		t.Fatalf("expected gig, got %v", err)
	}
	if g.LocationCity != "Utrecht" || g.LocationCountry != "" || g.WorkType != "hybrid" {
		t.Fatalf("unexpected location fields %+v", g)
	}
	if g.Package == nil || g.Package.Price != 125.5 || g.Package.DeliveryDays != 5 {
		t.Fatalf("expected first package with price 125.5, got %+v", g.Package)
	}

	gigs.detail = nil
	if g, err := NewDraftGigBackend(gigs).GetBySlug(context.Background(), "gone", "en"); err != nil || g != nil {
		t.Fatalf("expected nil gig without error, got %+v (%v)", g, err)
	}
}

func TestDraftGigBackendWrites(t *testing.T) {
	gigs := &fakeGigWriter{}
	backend := NewDraftGigBackend(gigs)
	gigID, userID := uuid.New(), uuid.New()

	if _, err := backend.Create(context.Background(), draft.CreateGig{UserID: userID, Slug: "logo-abc", WorkType: draft.WorkLocal}); err != nil {
		t.Fatalf("expected create to pass, got %v", err)
	}
	if gigs.created.WorkType != "local" || gigs.created.Slug != "logo-abc" {
		t.Fatalf("unexpected create params %+v", gigs.created)
	}

	if _, err := backend.CreatePackage(context.Background(), draft.CreatePackage{GigID: gigID, Tier: "basic", Price: 49.99, Currency: "EUR"}); err != nil {
		t.Fatalf("expected package create to pass, got %v", err)
	}
	if gigs.pkg.GigID != gigID || gigs.pkg.Price != 49.99 || gigs.pkg.Currency != "EUR" {
		t.Fatalf("unexpected package params %+v", gigs.pkg)
	}

	if err := backend.Update(context.Background(), draft.UpdateGig{ID: gigID, UserID: userID, WorkType: draft.WorkRemote}); err != nil {
		t.Fatalf("expected update to pass, got %v", err)
	}
	if gigs.updated.ID != gigID || gigs.updated.WorkType != "remote" {
		t.Fatalf("unexpected update params %+v", gigs.updated)
	}
}
