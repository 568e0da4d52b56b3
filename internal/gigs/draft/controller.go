package draft

import (
	"context"
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	categories "gigportal_backend/internal/categories/service"
	"gigportal_backend/internal/gigs/slug"
	"gigportal_backend/platform/apperr"
	"gigportal_backend/platform/i18n"
	"gigportal_backend/platform/logger"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	// RedirectPath is the listings-management page opened after a successful submit.
	RedirectPath = "/dashboard/services"
	// RedirectDelay leaves the success message on screen before navigating.
	RedirectDelay = 1200 * time.Millisecond

	MinTitleLength       = 10
	MinDescriptionLength = 50

	PackageTier     = "basic"
	PackageCurrency = "EUR"

	defaultDeliveryDays  = 7
	defaultRevisionCount = 1
)

var leadingIntRe = regexp.MustCompile(`^[+-]?\d+`)

// ErrSubmitInProgress is returned by Submit while an earlier submit is still running.
var ErrSubmitInProgress = errors.New("draft: submit already in progress")

var (
	errEditTargetMissing = apperr.NotFound("service not found")
	errNotYourListing    = apperr.Forbidden("you can only edit your own services")
)

// Deps are the collaborators of a Controller. Navigator, AfterFunc, Now and Log are optional.
type Deps struct {
	Session    SessionProvider
	Categories CategorySource
	Gigs       GigBackend
	Navigator  Navigator
	AfterFunc  AfterFunc
	Now        func() time.Time
	Log        *logger.Logger
}

// LoadRequest names what Load resolves. An empty EditSlug starts a new listing.
type LoadRequest struct {
	ClerkID  string
	Locale   string
	EditSlug string
}

// Result is the outcome of a submit.
type Result struct {
	Status        Status
	Message       string
	GigID         uuid.UUID
	Slug          string
	RedirectTo    string
	RedirectAfter time.Duration
}

// Controller owns one service draft from load to submit. Methods are safe for
// concurrent use, and at most one submit runs at a time.
type Controller struct {
	deps Deps

	mu         sync.Mutex
	locale     string
	loadState  LoadState
	user       *User
	freelancer *Freelancer
	tree       []categories.Node
	editing    *Gig
	form       ServiceForm
	tags       *TagInput
	status     Status
	message    string
	result     Result
}

// New creates a Controller with an empty form.
func New(deps Deps) *Controller {
	if deps.AfterFunc == nil {
		deps.AfterFunc = func(d time.Duration, f func()) { time.AfterFunc(d, f) }
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Log == nil {
		deps.Log = logger.Discard()
	}
	if deps.Navigator == nil {
		deps.Navigator = NavigatorFunc(func(string) {})
	}
	return &Controller{
		deps:      deps,
		locale:    i18n.EN,
		loadState: LoadIdle,
		form:      NewServiceForm(),
		tags:      NewTagInput(nil),
		status:    StatusIdle,
	}
}

// Load resolves the user, the freelancer profile, the category tree and, when
// editing, the listing. The user and the tree are fetched concurrently with
// the listing. A loaded listing replaces the whole form.
func (c *Controller) Load(ctx context.Context, req LoadRequest) error {
	locale := i18n.Normalize(req.Locale)

	c.mu.Lock()
	c.locale = locale
	c.loadState = LoadLoading
	c.mu.Unlock()

	var (
		user       *User
		freelancer *Freelancer
		tree       []categories.Node
		gig        *Gig
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = c.deps.Session.UserByClerkID(gctx, req.ClerkID)
		if err != nil || user == nil {
			return err
		}
		freelancer, err = c.deps.Session.FreelancerByUserID(gctx, user.ID)
		return err
	})
	g.Go(func() error {
		var err error
		tree, err = c.deps.Categories.List(gctx, locale)
		return err
	})
	if req.EditSlug != "" {
		g.Go(func() error {
			var err error
			gig, err = c.deps.Gigs.GetBySlug(gctx, req.EditSlug, locale)
			if err == nil && gig == nil {
				err = errEditTargetMissing
			}
			return err
		})
	}

	err := g.Wait()
	if err == nil && gig != nil && freelancer != nil && gig.FreelancerID != freelancer.ID {
		err = errNotYourListing
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.loadState = LoadFailed
		c.deps.Log.Warn("failed to load service draft", "slug", req.EditSlug, "error", err)
		return err
	}

	c.user = user
	c.freelancer = freelancer
	c.tree = tree
	c.editing = gig
	if gig != nil {
		c.form = formFromGig(*gig)
		c.tags = NewTagInput(gig.Tags)
	}
	c.loadState = LoadLoaded
	return nil
}

func formFromGig(g Gig) ServiceForm {
	form := NewServiceForm()
	form.Title = g.Title
	form.Description = g.Description
	if g.CategoryID != nil {
		form.CategoryID = g.CategoryID.String()
	}
	if wt, ok := ParseWorkType(g.WorkType); ok {
		form.WorkType = wt
	}
	form.LocationCity = g.LocationCity
	form.LocationCountry = g.LocationCountry
	if g.ServiceRadiusKm != nil {
		form.ServiceRadiusKm = strconv.Itoa(*g.ServiceRadiusKm)
	}
	if p := g.Package; p != nil {
		form.Package = PackageForm{
			Title:         p.Title,
			Description:   p.Description,
			Price:         strconv.FormatFloat(p.Price, 'f', -1, 64),
			DeliveryDays:  strconv.Itoa(p.DeliveryDays),
			RevisionCount: strconv.Itoa(p.RevisionCount),
		}
	}
	return form
}

// Form returns a copy of the draft with the committed tags.
func (c *Controller) Form() ServiceForm {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

func (c *Controller) snapshot() ServiceForm {
	form := c.form
	form.Tags = c.tags.Tags()
	return form
}

// Replace overwrites every field. Tags go through the usual commit rules.
func (c *Controller) Replace(form ServiceForm) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if form.WorkType == "" {
		form.WorkType = WorkRemote
	}
	c.tags = NewTagInput(form.Tags)
	form.Tags = nil
	c.form = form
}

func (c *Controller) edit(fn func(f *ServiceForm)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(&c.form)
}

func (c *Controller) SetTitle(v string)       { c.edit(func(f *ServiceForm) { f.Title = v }) }
func (c *Controller) SetDescription(v string) { c.edit(func(f *ServiceForm) { f.Description = v }) }
func (c *Controller) SetCategory(id string)   { c.edit(func(f *ServiceForm) { f.CategoryID = id }) }
func (c *Controller) SetWorkType(wt WorkType) { c.edit(func(f *ServiceForm) { f.WorkType = wt }) }

func (c *Controller) SetLocation(city, country string) {
	c.edit(func(f *ServiceForm) { f.LocationCity, f.LocationCountry = city, country })
}

func (c *Controller) SetServiceRadius(km string) {
	c.edit(func(f *ServiceForm) { f.ServiceRadiusKm = km })
}

func (c *Controller) SetPackageTitle(v string) { c.edit(func(f *ServiceForm) { f.Package.Title = v }) }

func (c *Controller) SetPackageDescription(v string) {
	c.edit(func(f *ServiceForm) { f.Package.Description = v })
}

func (c *Controller) SetPackagePrice(v string) { c.edit(func(f *ServiceForm) { f.Package.Price = v }) }

func (c *Controller) SetPackageDeliveryDays(v string) {
	c.edit(func(f *ServiceForm) { f.Package.DeliveryDays = v })
}

func (c *Controller) SetPackageRevisions(v string) {
	c.edit(func(f *ServiceForm) { f.Package.RevisionCount = v })
}

// SetTagInput replaces the pending tag text.
func (c *Controller) SetTagInput(v string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tags.SetPending(v)
}

// TagKey forwards a key event to the tag input. See TagInput.HandleKey.
func (c *Controller) TagKey(k Key) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tags.HandleKey(k)
}

func (c *Controller) RemoveTag(tag string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tags.Remove(tag)
}

// CategoryOptions flattens the loaded tree for the category dropdown.
func (c *Controller) CategoryOptions() []categories.FlatCategory {
	c.mu.Lock()
	defer c.mu.Unlock()
	return categories.Flatten(c.tree)
}

func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Message is the text shown with an error or success status.
func (c *Controller) Message() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.message
}

func (c *Controller) LoadState() LoadState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadState
}

// Editing reports whether an existing listing was loaded.
func (c *Controller) Editing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editing != nil
}

func (c *Controller) Locale() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.locale
}

// submission is everything a submit needs, captured when it is accepted.
type submission struct {
	form       ServiceForm
	locale     string
	user       User
	freelancer Freelancer
	editing    *Gig
	price      float64
}

// Submit validates the draft and, when it passes, creates or updates the
// listing. Validation stops at the first failing rule and makes no remote call.
// A running submit is not cancelled with ctx. Once a submit has succeeded
// later calls return the same result.
func (c *Controller) Submit(ctx context.Context) (Result, error) {
	c.mu.Lock()
	switch c.status {
	case StatusSubmitting:
		c.mu.Unlock()
		return Result{}, ErrSubmitInProgress
	case StatusSuccess:
		defer c.mu.Unlock()
		return c.result, nil
	}

	sub, failure := c.validate()
	if failure != "" {
		res := c.fail(failure)
		c.mu.Unlock()
		return res, nil
	}
	c.status = StatusSubmitting
	c.message = ""
	c.mu.Unlock()

	res, err := c.send(context.WithoutCancel(ctx), sub)

	c.mu.Lock()
	if err != nil {
		msg := strings.TrimSpace(apperr.Message(err))
		if msg == "" {
			msg = message(sub.locale, msgGeneric)
		}
		c.deps.Log.Warn("service draft submit failed", "edit", sub.editing != nil, "error", err)
		failed := c.fail(msg)
		c.mu.Unlock()
		return failed, nil
	}
	c.status = StatusSuccess
	c.result = res
	c.mu.Unlock()

	// The navigator may read the controller, so the redirect is scheduled unlocked.
	c.deps.AfterFunc(RedirectDelay, func() { c.deps.Navigator.Navigate(RedirectPath) })
	c.deps.Log.Info("service draft submitted", "gigId", res.GigID, "slug", res.Slug, "edit", sub.editing != nil)
	return res, nil
}

// fail records an error result. Callers hold c.mu.
func (c *Controller) fail(msg string) Result {
	c.status = StatusError
	c.message = msg
	return Result{Status: StatusError, Message: msg}
}

// validate applies the submit rules in order. Callers hold c.mu.
func (c *Controller) validate() (submission, string) {
	sub := submission{form: c.snapshot(), locale: c.locale, editing: c.editing}

	switch {
	case c.freelancer == nil:
		return sub, message(sub.locale, msgNoFreelancer)
	case c.user == nil:
		return sub, message(sub.locale, msgNoUser)
	case utf8.RuneCountInString(strings.TrimSpace(sub.form.Title)) < MinTitleLength:
		return sub, message(sub.locale, msgTitleTooShort)
	case utf8.RuneCountInString(strings.TrimSpace(sub.form.Description)) < MinDescriptionLength:
		return sub, message(sub.locale, msgDescriptionTooShort)
	}

	price, ok := ParsePrice(sub.form.Package.Price)
	if !ok {
		return sub, message(sub.locale, msgPriceNotPositive)
	}
	sub.price = price
	sub.user = *c.user
	sub.freelancer = *c.freelancer
	return sub, ""
}

func (c *Controller) send(ctx context.Context, sub submission) (Result, error) {
	form := sub.form
	title := strings.TrimSpace(form.Title)
	description := strings.TrimSpace(form.Description)
	workType := form.WorkType
	if workType == "" {
		workType = WorkRemote
	}
	city, country, radius := location(workType, form)
	categoryID := parseCategory(form.CategoryID)

	if sub.editing != nil {
		err := c.deps.Gigs.Update(ctx, UpdateGig{
			ID:              sub.editing.ID,
			UserID:          sub.user.ID,
			Title:           title,
			Description:     description,
			CategoryID:      categoryID,
			Tags:            form.Tags,
			WorkType:        workType,
			LocationCity:    city,
			LocationCountry: country,
			ServiceRadiusKm: radius,
		})
		if err != nil {
			return Result{}, err
		}
		return c.success(sub.editing.ID, sub.editing.Slug), nil
	}

	gigSlug := slug.Unique(title, c.deps.Now())
	gigID, err := c.deps.Gigs.Create(ctx, CreateGig{
		FreelancerID:    sub.freelancer.ID,
		UserID:          sub.user.ID,
		Slug:            gigSlug,
		Locale:          sub.locale,
		Title:           title,
		Description:     description,
		CategoryID:      categoryID,
		Tags:            form.Tags,
		WorkType:        workType,
		LocationCity:    city,
		LocationCountry: country,
		ServiceRadiusKm: radius,
	})
	if err != nil {
		return Result{}, err
	}

	pkgTitle := strings.TrimSpace(form.Package.Title)
	if pkgTitle == "" {
		pkgTitle = title
	}
	_, err = c.deps.Gigs.CreatePackage(ctx, CreatePackage{
		GigID:         gigID,
		UserID:        sub.user.ID,
		Tier:          PackageTier,
		Title:         pkgTitle,
		Description:   strings.TrimSpace(form.Package.Description),
		Price:         sub.price,
		Currency:      PackageCurrency,
		DeliveryDays:  countOr(form.Package.DeliveryDays, defaultDeliveryDays),
		RevisionCount: countOr(form.Package.RevisionCount, defaultRevisionCount),
	})
	if err != nil {
		return Result{}, err
	}
	return c.success(gigID, gigSlug), nil
}

func (c *Controller) success(gigID uuid.UUID, gigSlug string) Result {
	return Result{
		Status:        StatusSuccess,
		GigID:         gigID,
		Slug:          gigSlug,
		RedirectTo:    RedirectPath,
		RedirectAfter: RedirectDelay,
	}
}

// ParsePrice reads a package price. Empty, malformed, non-finite or
// non-positive input is rejected.
func ParsePrice(raw string) (float64, bool) {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return 0, false
	}
	return price, true
}

// countOr reads the leading integer of raw, so "3.5" is 3 and "5 days" is 5.
// Input without leading digits, or a count below 1, yields fallback.
func countOr(raw string, fallback int) int {
	n, err := strconv.Atoi(leadingIntRe.FindString(strings.TrimSpace(raw)))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func location(wt WorkType, form ServiceForm) (string, string, *int) {
	if wt == WorkRemote {
		return "", "", nil
	}
	var radius *int
	if km, err := strconv.Atoi(strings.TrimSpace(form.ServiceRadiusKm)); err == nil && km >= 0 {
		radius = &km
	}
	return strings.TrimSpace(form.LocationCity), strings.TrimSpace(form.LocationCountry), radius
}

func parseCategory(raw string) *uuid.UUID {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	return &id
}
