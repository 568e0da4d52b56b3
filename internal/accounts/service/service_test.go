package service

import (
	"context"
	"testing"

	"gigportal_backend/internal/accounts/repository"
	"gigportal_backend/internal/accounts/transport"
	"gigportal_backend/internal/events"
	"gigportal_backend/platform/apperr"
	"gigportal_backend/platform/logger"

	"github.com/google/uuid"
)

type fakeRepo struct {
	users       map[string]repository.User
	freelancers map[uuid.UUID]repository.Freelancer
	lastUpsert  repository.UpsertUserParams
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:       map[string]repository.User{},
		freelancers: map[uuid.UUID]repository.Freelancer{},
	}
}

func (f *fakeRepo) GetUserByClerkID(ctx context.Context, clerkID string) (repository.User, error) {
	u, ok := f.users[clerkID]
	if !ok {
		return repository.User{}, apperr.NotFound("user not found")
	}
	return u, nil
}

func (f *fakeRepo) GetUserByID(ctx context.Context, id uuid.UUID) (repository.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return repository.User{}, apperr.NotFound("user not found")
}

func (f *fakeRepo) UpsertUser(ctx context.Context, p repository.UpsertUserParams) (repository.User, error) {
	f.lastUpsert = p
	u, ok := f.users[p.ClerkID]
	if !ok {
		u.ID = uuid.New()
	}
	u.ClerkID, u.Email, u.DisplayName, u.ImageURL, u.Locale = p.ClerkID, p.Email, p.DisplayName, p.ImageURL, p.Locale
	f.users[p.ClerkID] = u
	return u, nil
}

func (f *fakeRepo) DeleteUserByClerkID(ctx context.Context, clerkID string) error {
	if _, ok := f.users[clerkID]; !ok {
		return apperr.NotFound("user not found")
	}
	delete(f.users, clerkID)
	return nil
}

func (f *fakeRepo) GetFreelancerByUserID(ctx context.Context, userID uuid.UUID) (repository.Freelancer, error) {
	fr, ok := f.freelancers[userID]
	if !ok {
		return repository.Freelancer{}, apperr.NotFound("freelancer profile not found")
	}
	return fr, nil
}

func (f *fakeRepo) CreateFreelancer(ctx context.Context, p repository.CreateFreelancerParams) (repository.Freelancer, error) {
	if _, ok := f.freelancers[p.UserID]; ok {
		return repository.Freelancer{}, apperr.Conflict("freelancer profile already exists")
	}
	fr := repository.Freelancer{
		ID: uuid.New(), UserID: p.UserID, DisplayName: p.DisplayName, Headline: p.Headline,
		Bio: p.Bio, Phone: p.Phone, City: p.City, Country: p.Country,
	}
	f.freelancers[p.UserID] = fr
	return fr, nil
}

type recordingBus struct {
	published []events.Event
}

func (b *recordingBus) Publish(ctx context.Context, e events.Event) {
	b.published = append(b.published, e)
}

func (b *recordingBus) PublishSync(ctx context.Context, e events.Event) error {
	b.published = append(b.published, e)
	return nil
}

func (b *recordingBus) Subscribe(string, events.Handler) {}

func TestLookupsReturnNilWhenMissing(t *testing.T) {
	svc := New(newFakeRepo(), &recordingBus{}, logger.Discard())
	ctx := context.Background()

	user, err := svc.GetByClerkID(ctx, "user_missing")
	if err != nil || user != nil {
		t.Fatalf("expected nil user and no error, got %v, %v", user, err)
	}
	f, err := svc.GetFreelancerByUserID(ctx, uuid.New())
	if err != nil || f != nil {
		t.Fatalf("expected nil freelancer and no error, got %v, %v", f, err)
	}
}

func TestUpsertFromClerk(t *testing.T) {
	repo := newFakeRepo()
	svc := New(repo, &recordingBus{}, logger.Discard())

	cases := []struct {
		name       string
		in         ClerkUser
		wantName   string
		wantLocale string
		wantImage  bool
	}{
		{"full name", ClerkUser{ClerkID: "user_1", Email: " Anna@Example.NL ", FirstName: "Anna", LastName: "de Vries", Locale: "nl-NL", ImageURL: "https://img"}, "Anna de Vries", "nl", true},
		{"username fallback", ClerkUser{ClerkID: "user_2", Email: "x@example.com", Username: "pixelpro"}, "pixelpro", "en", false},
		{"email fallback", ClerkUser{ClerkID: "user_3", Email: "jan@example.com"}, "jan", "en", false},
	}

	for _, tc := range cases {
		u, err := svc.UpsertFromClerk(context.Background(), tc.in)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}
		if u.DisplayName != tc.wantName || u.Locale != tc.wantLocale {
			t.Fatalf("%s: expected %q/%q, got %q/%q", tc.name, tc.wantName, tc.wantLocale, u.DisplayName, u.Locale)
		}
		if (u.ImageURL != nil) != tc.wantImage {
			t.Fatalf("%s: unexpected image url %v", tc.name, u.ImageURL)
		}
	}
	if repo.users["user_1"].Email != "anna@example.nl" {
		t.Fatalf("expected normalized email, got %q", repo.users["user_1"].Email)
	}

	if _, err := svc.UpsertFromClerk(context.Background(), ClerkUser{}); !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error for empty clerk id, got %v", err)
	}
}

func TestDeleteByClerkIDIgnoresUnknown(t *testing.T) {
	svc := New(newFakeRepo(), &recordingBus{}, logger.Discard())
	if err := svc.DeleteByClerkID(context.Background(), "user_gone"); err != nil {
		t.Fatalf("expected unknown user delete to be ignored, got %v", err)
	}
}

func TestCreateFreelancer(t *testing.T) {
	repo := newFakeRepo()
	bus := &recordingBus{}
	svc := New(repo, bus, logger.Discard())
	userID := uuid.New()

	f, err := svc.CreateFreelancer(context.Background(), userID, transport.CreateFreelancerRequest{
		DisplayName: "  Studio <b>Noord</b> ",
		Phone:       "06 12345678",
		City:        "Utrecht",
	})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if f.DisplayName != "Studio Noord" {
		t.Fatalf("expected sanitized name, got %q", f.DisplayName)
	}
	if f.Phone == nil || *f.Phone != "+31612345678" {
		t.Fatalf("expected E.164 phone, got %v", f.Phone)
	}
	if f.Country != nil {
		t.Fatalf("expected no country, got %v", *f.Country)
	}
	if len(bus.published) != 1 || bus.published[0].EventName() != (events.FreelancerCreated{}).EventName() {
		t.Fatalf("expected FreelancerCreated event, got %v", bus.published)
	}

	_, err = svc.CreateFreelancer(context.Background(), userID, transport.CreateFreelancerRequest{DisplayName: "Again"})
	if !apperr.Is(err, apperr.KindConflict) {
		t.Fatalf("expected conflict for second profile, got %v", err)
	}
}

func TestCreateFreelancerRejectsBadPhone(t *testing.T) {
	svc := New(newFakeRepo(), &recordingBus{}, logger.Discard())

	_, err := svc.CreateFreelancer(context.Background(), uuid.New(), transport.CreateFreelancerRequest{
		DisplayName: "Studio",
		Phone:       "12",
	})
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
