package draft

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	categories "gigportal_backend/internal/categories/service"
	"gigportal_backend/platform/apperr"

	"github.com/google/uuid"
)

type fakeSession struct {
	user       *User
	freelancer *Freelancer
	err        error
}

func (f fakeSession) UserByClerkID(context.Context, string) (*User, error) {
	return f.user, f.err
}

func (f fakeSession) FreelancerByUserID(context.Context, uuid.UUID) (*Freelancer, error) {
	return f.freelancer, nil
}

type fakeCategories struct {
	tree []categories.Node
	err  error
}

func (f fakeCategories) List(context.Context, string) ([]categories.Node, error) {
	return f.tree, f.err
}

type fakeGigs struct {
	mu       sync.Mutex
	existing *Gig

	creates  []CreateGig
	packages []CreatePackage
	updates  []UpdateGig

	createErr  error
	packageErr error
	updateErr  error
	// block, when set, holds Create until it is closed.
	block chan struct{}
	// ctxErrs records ctx.Err() seen by each write.
	ctxErrs []error
}

func (f *fakeGigs) GetBySlug(ctx context.Context, slug, locale string) (*Gig, error) {
	if f.existing != nil && f.existing.Slug == slug {
		g := *f.existing
		return &g, nil
	}
	return nil, nil
}

func (f *fakeGigs) Create(ctx context.Context, payload CreateGig) (uuid.UUID, error) {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates = append(f.creates, payload)
	f.ctxErrs = append(f.ctxErrs, ctx.Err())
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	return uuid.New(), nil
}

func (f *fakeGigs) CreatePackage(ctx context.Context, payload CreatePackage) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.packages = append(f.packages, payload)
	if f.packageErr != nil {
		return uuid.Nil, f.packageErr
	}
	return uuid.New(), nil
}

func (f *fakeGigs) Update(ctx context.Context, payload UpdateGig) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, payload)
	return f.updateErr
}

type recordedTimer struct {
	delay time.Duration
	fn    func()
}

type harness struct {
	ctrl     *Controller
	gigs     *fakeGigs
	timers   []recordedTimer
	navigate []string
}

var (
	testUser       = &User{ID: uuid.New(), Locale: "en"}
	testFreelancer = &Freelancer{ID: uuid.New()}
)

const (
	validTitle       = "Professional logo design for startups"
	validDescription = "I design memorable, scalable logos for new companies today."
)

func newHarness(t *testing.T, session fakeSession, gigs *fakeGigs, tree []categories.Node) *harness {
	t.Helper()
	h := &harness{gigs: gigs}
	h.ctrl = New(Deps{
		Session:    session,
		Categories: fakeCategories{tree: tree},
		Gigs:       gigs,
		Navigator:  NavigatorFunc(func(path string) { h.navigate = append(h.navigate, path) }),
		AfterFunc:  func(d time.Duration, f func()) { h.timers = append(h.timers, recordedTimer{d, f}) },
		Now:        func() time.Time { return time.UnixMilli(1700000000000) },
	})
	return h
}

func loadedHarness(t *testing.T, req LoadRequest) *harness {
	t.Helper()
	h := newHarness(t, fakeSession{user: testUser, freelancer: testFreelancer}, &fakeGigs{}, nil)
	if err := h.ctrl.Load(context.Background(), req); err != nil {
		t.Fatalf("load: %v", err)
	}
	return h
}

func fillValid(c *Controller) {
	c.SetTitle(validTitle)
	c.SetDescription(validDescription)
	c.SetPackagePrice("75")
}

func TestSubmitCreateScenario(t *testing.T) {
	h := loadedHarness(t, LoadRequest{ClerkID: "user_1", Locale: "en"})
	fillValid(h.ctrl)
	h.ctrl.SetTagInput("Branding")
	h.ctrl.TagKey(KeyEnter)

	res, err := h.ctrl.Submit(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if res.Status != StatusSuccess || h.ctrl.Status() != StatusSuccess {
		t.Fatalf("expected success, got %s (%s)", res.Status, res.Message)
	}
	if len(h.gigs.creates) != 1 || len(h.gigs.packages) != 1 || len(h.gigs.updates) != 0 {
		t.Fatalf("expected one create and one package, got %d/%d/%d", len(h.gigs.creates), len(h.gigs.packages), len(h.gigs.updates))
	}

	created := h.gigs.creates[0]
	if created.Slug != "professional-logo-design-for-startups-loyw3v28" {
		t.Fatalf("unexpected slug %q", created.Slug)
	}
	if created.FreelancerID != testFreelancer.ID || created.UserID != testUser.ID {
		t.Fatalf("unexpected owner ids %+v", created)
	}
	if created.WorkType != WorkRemote || len(created.Tags) != 1 || created.Tags[0] != "branding" {
		t.Fatalf("unexpected payload %+v", created)
	}

	pkg := h.gigs.packages[0]
	if pkg.Tier != "basic" || pkg.Price != 75 || pkg.Currency != "EUR" {
		t.Fatalf("unexpected package %+v", pkg)
	}
	if pkg.Title != validTitle || pkg.DeliveryDays != 7 || pkg.RevisionCount != 1 {
		t.Fatalf("expected title and term fallbacks, got %+v", pkg)
	}
	if res.Slug != created.Slug || res.RedirectTo != "/dashboard/services" {
		t.Fatalf("unexpected result %+v", res)
	}

	if len(h.timers) != 1 || h.timers[0].delay != 1200*time.Millisecond {
		t.Fatalf("expected one redirect timer of 1200ms, got %+v", h.timers)
	}
	if len(h.navigate) != 0 {
		t.Fatal("expected navigation to wait for the timer")
	}
	h.timers[0].fn()
	if len(h.navigate) != 1 || h.navigate[0] != "/dashboard/services" {
		t.Fatalf("expected navigation to listings, got %v", h.navigate)
	}
}

func TestSubmitEditScenario(t *testing.T) {
	category := uuid.New()
	radius := 15
	existing := &Gig{
		ID:              uuid.New(),
		FreelancerID:    testFreelancer.ID,
		Slug:            "logo-design-abc",
		Title:           validTitle,
		Description:     validDescription,
		CategoryID:      &category,
		Tags:            []string{"logo"},
		WorkType:        "local",
		LocationCity:    "Utrecht",
		ServiceRadiusKm: &radius,
		Package:         &Package{Title: "Starter", Price: 49.5, DeliveryDays: 3, RevisionCount: 2},
	}
	gigs := &fakeGigs{existing: existing}
	h := newHarness(t, fakeSession{user: testUser, freelancer: testFreelancer}, gigs, nil)
	if err := h.ctrl.Load(context.Background(), LoadRequest{ClerkID: "user_1", EditSlug: "logo-design-abc"}); err != nil {
		t.Fatalf("load: %v", err)
	}

	form := h.ctrl.Form()
	if !h.ctrl.Editing() || form.CategoryID != category.String() || form.ServiceRadiusKm != "15" {
		t.Fatalf("expected form loaded from listing, got %+v", form)
	}
	if form.Package.Price != "49.5" || form.Package.DeliveryDays != "3" || form.Package.Title != "Starter" {
		t.Fatalf("expected package loaded, got %+v", form.Package)
	}

	h.ctrl.SetTitle("Professional logo design for scale-ups")
	res, err := h.ctrl.Submit(context.Background())
	if err != nil || res.Status != StatusSuccess {
		t.Fatalf("expected success, got %+v %v", res, err)
	}
	if len(gigs.updates) != 1 || len(gigs.creates) != 0 || len(gigs.packages) != 0 {
		t.Fatalf("expected a single update, got %d/%d/%d", len(gigs.updates), len(gigs.creates), len(gigs.packages))
	}
	up := gigs.updates[0]
	if up.ID != existing.ID || up.Title != "Professional logo design for scale-ups" {
		t.Fatalf("unexpected update %+v", up)
	}
	if up.CategoryID == nil || *up.CategoryID != category || up.LocationCity != "Utrecht" || up.ServiceRadiusKm == nil {
		t.Fatalf("expected unchanged fields passed through, got %+v", up)
	}
	if res.Slug != "logo-design-abc" {
		t.Fatalf("expected existing slug, got %q", res.Slug)
	}
}

func TestSubmitRemoteFailureScenario(t *testing.T) {
	h := loadedHarness(t, LoadRequest{ClerkID: "user_1"})
	h.gigs.createErr = errors.New("Network error")
	fillValid(h.ctrl)

	res, err := h.ctrl.Submit(context.Background())
	if err != nil {
		t.Fatalf("expected error in result, got %v", err)
	}
	if res.Status != StatusError || h.ctrl.Message() != "Network error" {
		t.Fatalf("expected Network error, got %s %q", res.Status, h.ctrl.Message())
	}
	if len(h.gigs.packages) != 0 {
		t.Fatal("expected no package after failed create")
	}
	if h.ctrl.Form().Title != validTitle {
		t.Fatal("expected form to survive the failure")
	}
	if len(h.timers) != 0 {
		t.Fatal("expected no redirect after failure")
	}
}

func TestRemoteErrorMessages(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"domain message", apperr.Conflict("a listing with this slug already exists"), "a listing with this slug already exists"},
		{"wrapped domain message", errors.Join(errors.New("ctx"), apperr.Forbidden("nope")), "nope"},
		{"empty message", errors.New("  "), "Something went wrong. Please try again."},
	}

	for _, tc := range cases {
		h := loadedHarness(t, LoadRequest{ClerkID: "user_1"})
		h.gigs.createErr = tc.err
		fillValid(h.ctrl)
		res, _ := h.ctrl.Submit(context.Background())
		if res.Message != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, res.Message)
		}
	}
}

func TestPackageFailureLeavesListing(t *testing.T) {
	h := loadedHarness(t, LoadRequest{ClerkID: "user_1"})
	h.gigs.packageErr = errors.New("")
	fillValid(h.ctrl)

	res, _ := h.ctrl.Submit(context.Background())
	if res.Status != StatusError || res.Message != "Something went wrong. Please try again." {
		t.Fatalf("expected generic error, got %+v", res)
	}
	if len(h.gigs.creates) != 1 {
		t.Fatalf("expected the listing create to have happened, got %d", len(h.gigs.creates))
	}
}

func TestValidationOrder(t *testing.T) {
	cases := []struct {
		name    string
		session fakeSession
		title   string
		desc    string
		price   string
		want    string
	}{
		{"no freelancer beats everything", fakeSession{user: testUser}, "short", "short", "", "You need a freelancer profile before you can add a service."},
		{"title before description", fakeSession{user: testUser, freelancer: testFreelancer}, "Logo!", "Too short", "75", "Title must be at least 10 characters."},
		{"title is trimmed", fakeSession{user: testUser, freelancer: testFreelancer}, "   Logo des   ", validDescription, "75", "Title must be at least 10 characters."},
		{"description", fakeSession{user: testUser, freelancer: testFreelancer}, validTitle, "Too short", "", "Description must be at least 50 characters."},
		{"price", fakeSession{user: testUser, freelancer: testFreelancer}, validTitle, validDescription, "0", "Package price must be greater than 0."},
	}

	for _, tc := range cases {
		gigs := &fakeGigs{}
		h := newHarness(t, tc.session, gigs, nil)
		h.ctrl.Load(context.Background(), LoadRequest{ClerkID: "user_1"})
		h.ctrl.SetTitle(tc.title)
		h.ctrl.SetDescription(tc.desc)
		h.ctrl.SetPackagePrice(tc.price)

		res, err := h.ctrl.Submit(context.Background())
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}
		if res.Status != StatusError || res.Message != tc.want {
			t.Fatalf("%s: expected %q, got %s %q", tc.name, tc.want, res.Status, res.Message)
		}
		if len(gigs.creates)+len(gigs.updates)+len(gigs.packages) != 0 {
			t.Fatalf("%s: expected no remote calls", tc.name)
		}
	}
}

func TestMissingUserIsReported(t *testing.T) {
	h := loadedHarness(t, LoadRequest{ClerkID: "user_1"})
	fillValid(h.ctrl)
	h.ctrl.user = nil

	res, _ := h.ctrl.Submit(context.Background())
	if res.Message != "We could not find your account. Please sign in again." {
		t.Fatalf("expected missing user message, got %q", res.Message)
	}
	if len(h.gigs.creates) != 0 {
		t.Fatal("expected no remote calls")
	}
}

func TestParsePrice(t *testing.T) {
	cases := []struct {
		raw  string
		ok   bool
		want float64
	}{
		{"0", false, 0},
		{"", false, 0},
		{"-5", false, 0},
		{"abc", false, 0},
		{"NaN", false, 0},
		{"Inf", false, 0},
		{"12abc", false, 0},
		{"1", true, 1},
		{"50.5", true, 50.5},
		{" 75 ", true, 75},
	}

	for _, tc := range cases {
		got, ok := ParsePrice(tc.raw)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ParsePrice(%q): expected %v/%v, got %v/%v", tc.raw, tc.want, tc.ok, got, ok)
		}
	}
}

func TestPackageTermFallbacks(t *testing.T) {
	cases := []struct {
		delivery, revisions string
		wantDelivery        int
		wantRevisions       int
	}{
		{"", "", 7, 1},
		{"abc", "x", 7, 1},
		{"0", "0", 7, 1},
		{"14", "3", 14, 3},
		{"3.5", "2.9", 3, 2},
		{"5 days", "-2", 5, 1},
	}

	for _, tc := range cases {
		h := loadedHarness(t, LoadRequest{ClerkID: "user_1"})
		fillValid(h.ctrl)
		h.ctrl.SetPackageTitle("  Basic logo  ")
		h.ctrl.SetPackageDeliveryDays(tc.delivery)
		h.ctrl.SetPackageRevisions(tc.revisions)
		if _, err := h.ctrl.Submit(context.Background()); err != nil {
			t.Fatalf("submit: %v", err)
		}
		pkg := h.gigs.packages[0]
		if pkg.DeliveryDays != tc.wantDelivery || pkg.RevisionCount != tc.wantRevisions {
			t.Fatalf("%q/%q: expected %d/%d, got %d/%d", tc.delivery, tc.revisions, tc.wantDelivery, tc.wantRevisions, pkg.DeliveryDays, pkg.RevisionCount)
		}
		if pkg.Title != "Basic logo" {
			t.Fatalf("expected trimmed package title, got %q", pkg.Title)
		}
	}
}

func TestRemoteWorkDropsLocation(t *testing.T) {
	h := loadedHarness(t, LoadRequest{ClerkID: "user_1"})
	fillValid(h.ctrl)
	h.ctrl.SetLocation("Amsterdam", "NL")
	h.ctrl.SetServiceRadius("20")
	if _, err := h.ctrl.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if c := h.gigs.creates[0]; c.LocationCity != "" || c.ServiceRadiusKm != nil {
		t.Fatalf("expected remote listing without location, got %+v", c)
	}

	h = loadedHarness(t, LoadRequest{ClerkID: "user_1"})
	fillValid(h.ctrl)
	h.ctrl.SetWorkType(WorkHybrid)
	h.ctrl.SetLocation(" Amsterdam ", "NL")
	h.ctrl.SetServiceRadius("20")
	h.ctrl.SetCategory("not-a-uuid")
	if _, err := h.ctrl.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	c := h.gigs.creates[0]
	if c.LocationCity != "Amsterdam" || c.ServiceRadiusKm == nil || *c.ServiceRadiusKm != 20 {
		t.Fatalf("expected hybrid listing with location, got %+v", c)
	}
	if c.CategoryID != nil {
		t.Fatalf("expected malformed category to be unset, got %v", c.CategoryID)
	}
}

func TestRetryAfterError(t *testing.T) {
	h := loadedHarness(t, LoadRequest{ClerkID: "user_1"})
	h.ctrl.SetTitle("Too short")
	if res, _ := h.ctrl.Submit(context.Background()); res.Status != StatusError {
		t.Fatalf("expected error, got %s", res.Status)
	}

	fillValid(h.ctrl)
	if h.ctrl.Status() != StatusError {
		t.Fatalf("expected editing to keep the error status, got %s", h.ctrl.Status())
	}
	res, _ := h.ctrl.Submit(context.Background())
	if res.Status != StatusSuccess || h.ctrl.Message() != "" {
		t.Fatalf("expected success on retry, got %+v", res)
	}
}

func TestSuccessIsTerminal(t *testing.T) {
	h := loadedHarness(t, LoadRequest{ClerkID: "user_1"})
	fillValid(h.ctrl)
	first, _ := h.ctrl.Submit(context.Background())

	h.ctrl.SetTitle("x")
	second, err := h.ctrl.Submit(context.Background())
	if err != nil || second != first {
		t.Fatalf("expected the first result again, got %+v %v", second, err)
	}
	if len(h.gigs.creates) != 1 || len(h.timers) != 1 {
		t.Fatalf("expected no further calls, got %d creates and %d timers", len(h.gigs.creates), len(h.timers))
	}
}

func TestConcurrentSubmitIsRejected(t *testing.T) {
	h := loadedHarness(t, LoadRequest{ClerkID: "user_1"})
	h.gigs.block = make(chan struct{})
	fillValid(h.ctrl)

	done := make(chan Result)
	go func() {
		res, _ := h.ctrl.Submit(context.Background())
		done <- res
	}()

	deadline := time.Now().Add(2 * time.Second)
	for h.ctrl.Status() != StatusSubmitting {
		if time.Now().After(deadline) {
			t.Fatal("submit never started")
		}
		time.Sleep(time.Millisecond)
	}

	if _, err := h.ctrl.Submit(context.Background()); !errors.Is(err, ErrSubmitInProgress) {
		t.Fatalf("expected ErrSubmitInProgress, got %v", err)
	}
	close(h.gigs.block)
	if res := <-done; res.Status != StatusSuccess {
		t.Fatalf("expected first submit to succeed, got %+v", res)
	}
	if len(h.gigs.creates) != 1 {
		t.Fatalf("expected one create, got %d", len(h.gigs.creates))
	}
}

func TestSubmitIgnoresCancellation(t *testing.T) {
	h := loadedHarness(t, LoadRequest{ClerkID: "user_1"})
	fillValid(h.ctrl)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, _ := h.ctrl.Submit(ctx)
	if res.Status != StatusSuccess {
		t.Fatalf("expected success, got %+v", res)
	}
	if h.gigs.ctxErrs[0] != nil {
		t.Fatalf("expected remote calls to see a live context, got %v", h.gigs.ctxErrs[0])
	}
}

func TestDutchMessages(t *testing.T) {
	h := loadedHarness(t, LoadRequest{ClerkID: "user_1", Locale: "nl-NL"})
	h.ctrl.SetTitle("Kort")
	res, _ := h.ctrl.Submit(context.Background())
	if res.Message != "De titel moet minimaal 10 tekens bevatten." {
		t.Fatalf("expected Dutch message, got %q", res.Message)
	}
	if h.ctrl.Locale() != "nl" {
		t.Fatalf("expected locale nl, got %q", h.ctrl.Locale())
	}
}

func TestLoad(t *testing.T) {
	other := &Gig{ID: uuid.New(), FreelancerID: uuid.New(), Slug: "not-mine"}
	tree := []categories.Node{{ID: uuid.New(), Name: "Design", Children: []categories.Node{{ID: uuid.New(), Name: "Logo"}}}}

	cases := []struct {
		name      string
		session   fakeSession
		cats      fakeCategories
		editSlug  string
		wantKind  apperr.Kind
		wantState LoadState
	}{
		{"new listing", fakeSession{user: testUser, freelancer: testFreelancer}, fakeCategories{tree: tree}, "", apperr.KindUnknown, LoadLoaded},
		{"unsynced user still loads", fakeSession{}, fakeCategories{tree: tree}, "", apperr.KindUnknown, LoadLoaded},
		{"missing listing", fakeSession{user: testUser, freelancer: testFreelancer}, fakeCategories{}, "gone", apperr.KindNotFound, LoadFailed},
		{"foreign listing", fakeSession{user: testUser, freelancer: testFreelancer}, fakeCategories{}, "not-mine", apperr.KindForbidden, LoadFailed},
		{"category failure", fakeSession{user: testUser, freelancer: testFreelancer}, fakeCategories{err: errors.New("db down")}, "", apperr.KindUnknown, LoadFailed},
	}

	for _, tc := range cases {
		ctrl := New(Deps{Session: tc.session, Categories: tc.cats, Gigs: &fakeGigs{existing: other}})
		if ctrl.LoadState() != LoadIdle {
			t.Fatalf("%s: expected idle before load", tc.name)
		}
		err := ctrl.Load(context.Background(), LoadRequest{ClerkID: "user_1", EditSlug: tc.editSlug})
		if ctrl.LoadState() != tc.wantState {
			t.Fatalf("%s: expected state %s, got %s", tc.name, tc.wantState, ctrl.LoadState())
		}
		if tc.wantState == LoadLoaded && err != nil {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}
		if tc.wantState == LoadFailed && (err == nil || apperr.GetKind(err) != tc.wantKind) {
			t.Fatalf("%s: expected kind %d, got %v", tc.name, tc.wantKind, err)
		}
	}
}

func TestEditWithoutProfileReportsMissingProfile(t *testing.T) {
	existing := &Gig{ID: uuid.New(), FreelancerID: uuid.New(), Slug: "logo-design-abc", Title: validTitle}
	gigs := &fakeGigs{existing: existing}
	h := newHarness(t, fakeSession{user: testUser}, gigs, nil)

	if err := h.ctrl.Load(context.Background(), LoadRequest{ClerkID: "user_1", EditSlug: existing.Slug}); err != nil {
		t.Fatalf("expected load without profile to pass, got %v", err)
	}
	res, _ := h.ctrl.Submit(context.Background())
	if res.Message != "You need a freelancer profile before you can add a service." {
		t.Fatalf("expected missing profile message, got %q", res.Message)
	}
	if len(gigs.updates) != 0 {
		t.Fatal("expected no update without a profile")
	}
}

func TestRedirectCanReadController(t *testing.T) {
	var ctrl *Controller
	var seen Status
	ctrl = New(Deps{
		Session:    fakeSession{user: testUser, freelancer: testFreelancer},
		Categories: fakeCategories{},
		Gigs:       &fakeGigs{},
		Navigator:  NavigatorFunc(func(string) { seen = ctrl.Status() }),
		AfterFunc:  func(_ time.Duration, f func()) { f() },
	})
	if err := ctrl.Load(context.Background(), LoadRequest{ClerkID: "user_1"}); err != nil {
		t.Fatalf("load: %v", err)
	}
	fillValid(ctrl)

	done := make(chan struct{})
	go func() {
		_, _ = ctrl.Submit(context.Background())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("expected submit to return while the navigator reads the controller")
	}
	if seen != StatusSuccess {
		t.Fatalf("expected navigator to see success, got %s", seen)
	}
}

func TestCategoryOptionsAreFlattened(t *testing.T) {
	tree := []categories.Node{
		{ID: uuid.New(), Name: "Design", Children: []categories.Node{{ID: uuid.New(), Name: "Logo"}}},
		{ID: uuid.New(), Name: "Writing"},
	}
	h := newHarness(t, fakeSession{user: testUser, freelancer: testFreelancer}, &fakeGigs{}, tree)
	if err := h.ctrl.Load(context.Background(), LoadRequest{ClerkID: "user_1"}); err != nil {
		t.Fatalf("load: %v", err)
	}

	opts := h.ctrl.CategoryOptions()
	if len(opts) != 3 || opts[1].Name != "Logo" || opts[1].Depth != 1 || opts[2].Name != "Writing" {
		t.Fatalf("unexpected options %+v", opts)
	}
	if !strings.HasSuffix(opts[1].Label(), "└ Logo") || opts[0].Label() != "Design" {
		t.Fatalf("unexpected labels %q %q", opts[0].Label(), opts[1].Label())
	}
}

func TestReplaceAppliesTagRules(t *testing.T) {
	h := loadedHarness(t, LoadRequest{ClerkID: "user_1"})
	form := NewServiceForm()
	form.Title = validTitle
	form.WorkType = ""
	form.Tags = []string{"SEO", "seo", " ", "web"}
	h.ctrl.Replace(form)

	got := h.ctrl.Form()
	if len(got.Tags) != 2 || got.Tags[0] != "seo" || got.Tags[1] != "web" {
		t.Fatalf("expected [seo web], got %v", got.Tags)
	}
	if got.WorkType != WorkRemote {
		t.Fatalf("expected empty work type to default to remote, got %q", got.WorkType)
	}
}
