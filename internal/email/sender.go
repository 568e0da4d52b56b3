// Package email renders and delivers the transactional mails of the marketplace.
package email

import (
	"context"
)

// Attachment represents a file attachment for an email.
type Attachment struct {
	Content  []byte
	FileName string
	MIMEType string
}

// ListingPublished carries what the "your service is live" mail needs.
type ListingPublished struct {
	Locale      string
	DisplayName string
	Title       string
	ShareURL    string
	QRCode      []byte
}

// FreelancerWelcome carries what the welcome mail needs.
type FreelancerWelcome struct {
	Locale       string
	DisplayName  string
	DashboardURL string
}

// Sender delivers the marketplace mails.
type Sender interface {
	SendListingPublishedEmail(ctx context.Context, toEmail string, data ListingPublished) error
	SendFreelancerWelcomeEmail(ctx context.Context, toEmail string, data FreelancerWelcome) error
}

// NoopSender drops every mail. Used when SMTP is not configured.
type NoopSender struct{}

func (NoopSender) SendListingPublishedEmail(ctx context.Context, toEmail string, data ListingPublished) error {
	return nil
}

func (NoopSender) SendFreelancerWelcomeEmail(ctx context.Context, toEmail string, data FreelancerWelcome) error {
	return nil
}
