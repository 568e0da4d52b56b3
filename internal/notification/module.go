// Package notification sends mails in response to domain events.
// Domain modules publish events and never talk to the mail transport directly.
package notification

import (
	"context"
	"strings"

	"gigportal_backend/internal/accounts/repository"
	"gigportal_backend/internal/email"
	"gigportal_backend/internal/events"
	"gigportal_backend/platform/apperr"
	"gigportal_backend/platform/config"
	"gigportal_backend/platform/i18n"
	"gigportal_backend/platform/logger"

	"github.com/google/uuid"
)

// RecipientReader resolves the account a mail goes to.
type RecipientReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (repository.User, error)
}

// ShareLinks builds the public link and QR code of a listing.
type ShareLinks interface {
	ShareURL(gigSlug, locale string) string
	ShareQR(ctx context.Context, gigSlug, locale string) ([]byte, error)
}

// Module handles all notification-related event subscriptions.
type Module struct {
	sender     email.Sender
	recipients RecipientReader
	links      ShareLinks
	cfg        config.DashboardConfig
	log        *logger.Logger
}

// New creates a new notification module.
func New(sender email.Sender, recipients RecipientReader, links ShareLinks, cfg config.DashboardConfig, log *logger.Logger) *Module {
	if sender == nil {
		sender = email.NoopSender{}
	}
	return &Module{
		sender:     sender,
		recipients: recipients,
		links:      links,
		cfg:        cfg,
		log:        log,
	}
}

// RegisterHandlers subscribes the module to the events it mails about.
func (m *Module) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(events.GigCreated{}.EventName(), m)
	bus.Subscribe(events.FreelancerCreated{}.EventName(), m)
}

// Handle implements events.Handler.
func (m *Module) Handle(ctx context.Context, event events.Event) error {
	switch e := event.(type) {
	case events.GigCreated:
		return m.handleGigCreated(ctx, e)
	case events.FreelancerCreated:
		return m.handleFreelancerCreated(ctx, e)
	default:
		m.log.Warn("unhandled event type", "event", event.EventName())
		return nil
	}
}

func (m *Module) handleGigCreated(ctx context.Context, e events.GigCreated) error {
	user, ok := m.recipient(ctx, e.UserID)
	if !ok {
		return nil
	}

	locale := i18n.Normalize(e.Locale, user.Locale)
	data := email.ListingPublished{
		Locale:      locale,
		DisplayName: user.DisplayName,
		Title:       e.Title,
		ShareURL:    m.links.ShareURL(e.Slug, locale),
	}
	qr, err := m.links.ShareQR(ctx, e.Slug, locale)
	if err != nil {
		m.log.Warn("failed to render share QR code", "gigId", e.GigID, "error", err)
	} else {
		data.QRCode = qr
	}

	if err := m.sender.SendListingPublishedEmail(ctx, user.Email, data); err != nil {
		m.log.Error("failed to send listing published email",
			"gigId", e.GigID,
			"userId", e.UserID,
			"error", err,
		)
		return err
	}
	m.log.Info("listing published email sent", "gigId", e.GigID, "userId", e.UserID)
	return nil
}

func (m *Module) handleFreelancerCreated(ctx context.Context, e events.FreelancerCreated) error {
	user, ok := m.recipient(ctx, e.UserID)
	if !ok {
		return nil
	}

	locale := i18n.Normalize(user.Locale, m.cfg.GetDefaultLocale())
	data := email.FreelancerWelcome{
		Locale:       locale,
		DisplayName:  e.DisplayName,
		DashboardURL: m.buildURL("/" + locale + "/dashboard/services/new"),
	}
	if err := m.sender.SendFreelancerWelcomeEmail(ctx, user.Email, data); err != nil {
		m.log.Error("failed to send freelancer welcome email",
			"freelancerId", e.FreelancerID,
			"userId", e.UserID,
			"error", err,
		)
		return err
	}
	m.log.Info("freelancer welcome email sent", "freelancerId", e.FreelancerID, "userId", e.UserID)
	return nil
}

// recipient loads the user and reports whether a mail can be sent to them.
// Deleted accounts and accounts without an address are skipped.
func (m *Module) recipient(ctx context.Context, userID uuid.UUID) (repository.User, bool) {
	user, err := m.recipients.GetByID(ctx, userID)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			m.log.Info("skipping mail for unknown user", "userId", userID)
		} else {
			m.log.Error("failed to load mail recipient", "userId", userID, "error", err)
		}
		return repository.User{}, false
	}
	if strings.TrimSpace(user.Email) == "" {
		m.log.Info("skipping mail for user without address", "userId", userID)
		return repository.User{}, false
	}
	return user, true
}

func (m *Module) buildURL(path string) string {
	return strings.TrimRight(m.cfg.GetAppBaseURL(), "/") + path
}
