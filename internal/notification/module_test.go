package notification

import (
	"context"
	"errors"
	"testing"

	"gigportal_backend/internal/accounts/repository"
	"gigportal_backend/internal/email"
	"gigportal_backend/internal/events"
	"gigportal_backend/platform/apperr"
	"gigportal_backend/platform/logger"

	"github.com/google/uuid"
)

type testConfig struct{}

func (testConfig) GetAppBaseURL() string    { return "https://gigportal.dev/" }
func (testConfig) GetDefaultLocale() string { return "en" }

type testSender struct {
	to        []string
	published []email.ListingPublished
	welcomes  []email.FreelancerWelcome
	err       error
}

func (s *testSender) SendListingPublishedEmail(_ context.Context, to string, data email.ListingPublished) error {
	s.to = append(s.to, to)
	s.published = append(s.published, data)
	return s.err
}

func (s *testSender) SendFreelancerWelcomeEmail(_ context.Context, to string, data email.FreelancerWelcome) error {
	s.to = append(s.to, to)
	s.welcomes = append(s.welcomes, data)
	return s.err
}

type testRecipients map[uuid.UUID]repository.User

func (r testRecipients) GetByID(_ context.Context, id uuid.UUID) (repository.User, error) {
	u, ok := r[id]
	if !ok {
		return repository.User{}, apperr.NotFound("user not found")
	}
	return u, nil
}

type testLinks struct {
	qrErr error
}

func (testLinks) ShareURL(gigSlug, locale string) string {
	return "https://gigportal.dev/" + locale + "/gigs/" + gigSlug
}

func (l testLinks) ShareQR(context.Context, string, string) ([]byte, error) {
	if l.qrErr != nil {
		return nil, l.qrErr
	}
	return []byte{0x89, 'P', 'N', 'G'}, nil
}

func newTestModule(sender email.Sender, users testRecipients, links testLinks) *Module {
	return New(sender, users, links, testConfig{}, logger.Discard())
}

func TestGigCreatedSendsListingMail(t *testing.T) {
	userID := uuid.New()
	sender := &testSender{}
	m := newTestModule(sender, testRecipients{userID: {ID: userID, Email: "sanne@example.dev", DisplayName: "Sanne", Locale: "en"}}, testLinks{})

	err := m.Handle(context.Background(), events.GigCreated{GigID: uuid.New(), UserID: userID, Slug: "logo-design-abc", Title: "Logo design", Locale: "nl"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(sender.published) != 1 {
		t.Fatalf("expected 1 mail, got %d", len(sender.published))
	}
	got := sender.published[0]
	if sender.to[0] != "sanne@example.dev" {
		t.Fatalf("expected mail to sanne@example.dev, got %q", sender.to[0])
	}
	if got.Locale != "nl" {
		t.Fatalf("expected listing locale to win, got %q", got.Locale)
	}
	if got.ShareURL != "https://gigportal.dev/nl/gigs/logo-design-abc" {
		t.Fatalf("unexpected share URL %q", got.ShareURL)
	}
	if len(got.QRCode) == 0 {
		t.Fatal("expected QR code to be attached")
	}
}

func TestGigCreatedStillMailsWhenQRFails(t *testing.T) {
	userID := uuid.New()
	sender := &testSender{}
	m := newTestModule(sender, testRecipients{userID: {ID: userID, Email: "sanne@example.dev"}}, testLinks{qrErr: errors.New("encode failed")})

	if err := m.Handle(context.Background(), events.GigCreated{UserID: userID, Slug: "logo", Title: "Logo"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(sender.published) != 1 || sender.published[0].QRCode != nil {
		t.Fatalf("expected one mail without QR code, got %+v", sender.published)
	}
}

func TestSkipsUnknownOrAddresslessUsers(t *testing.T) {
	noAddress := uuid.New()
	sender := &testSender{}
	m := newTestModule(sender, testRecipients{noAddress: {ID: noAddress, Email: " "}}, testLinks{})

	cases := []events.Event{
		events.GigCreated{UserID: uuid.New(), Slug: "a"},
		events.GigCreated{UserID: noAddress, Slug: "b"},
		events.FreelancerCreated{UserID: uuid.New()},
	}
	for _, e := range cases {
		if err := m.Handle(context.Background(), e); err != nil {
			t.Fatalf("%s: expected skip without error, got %v", e.EventName(), err)
		}
	}
	if len(sender.to) != 0 {
		t.Fatalf("expected no mails, got %d", len(sender.to))
	}
}

func TestFreelancerCreatedSendsWelcome(t *testing.T) {
	userID := uuid.New()
	sender := &testSender{}
	m := newTestModule(sender, testRecipients{userID: {ID: userID, Email: "daan@example.dev", Locale: "nl"}}, testLinks{})

	if err := m.Handle(context.Background(), events.FreelancerCreated{UserID: userID, DisplayName: "Daan"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(sender.welcomes) != 1 {
		t.Fatalf("expected 1 welcome mail, got %d", len(sender.welcomes))
	}
	if got := sender.welcomes[0].DashboardURL; got != "https://gigportal.dev/nl/dashboard/services/new" {
		t.Fatalf("unexpected dashboard URL %q", got)
	}
}

func TestSenderFailureIsReturned(t *testing.T) {
	userID := uuid.New()
	sender := &testSender{err: errors.New("smtp down")}
	m := newTestModule(sender, testRecipients{userID: {ID: userID, Email: "sanne@example.dev"}}, testLinks{})

	if err := m.Handle(context.Background(), events.GigCreated{UserID: userID, Slug: "logo"}); err == nil {
		t.Fatal("expected sender error to be returned")
	}
}

func TestRegisterHandlersSubscribes(t *testing.T) {
	bus := &subscribingBus{}
	newTestModule(email.NoopSender{}, testRecipients{}, testLinks{}).RegisterHandlers(bus)

	if len(bus.names) != 2 || bus.names[0] != "gigs.gig.created" || bus.names[1] != "accounts.freelancer.created" {
		t.Fatalf("unexpected subscriptions %v", bus.names)
	}
}

type subscribingBus struct {
	names []string
}

func (b *subscribingBus) Publish(context.Context, events.Event)           {}
func (b *subscribingBus) PublishSync(context.Context, events.Event) error { return nil }
func (b *subscribingBus) Subscribe(name string, _ events.Handler)         { b.names = append(b.names, name) }
