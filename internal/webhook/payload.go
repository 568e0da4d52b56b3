package webhook

import (
	"encoding/json"
	"strings"

	accounts "gigportal_backend/internal/accounts/service"
)

// Clerk event types handled by the receiver.
const (
	EventUserCreated = "user.created"
	EventUserUpdated = "user.updated"
	EventUserDeleted = "user.deleted"
)

// ClerkEvent is the envelope of every Clerk webhook delivery.
type ClerkEvent struct {
	Type   string          `json:"type"`
	Object string          `json:"object"`
	Data   json.RawMessage `json:"data"`
}

type clerkEmailAddress struct {
	ID           string `json:"id"`
	EmailAddress string `json:"email_address"`
}

type clerkMetadata struct {
	Locale string `json:"locale"`
}

// clerkUser is the subset of the Clerk user object the marketplace stores.
type clerkUser struct {
	ID                    string              `json:"id"`
	FirstName             *string             `json:"first_name"`
	LastName              *string             `json:"last_name"`
	Username              *string             `json:"username"`
	ImageURL              string              `json:"image_url"`
	PrimaryEmailAddressID *string             `json:"primary_email_address_id"`
	EmailAddresses        []clerkEmailAddress `json:"email_addresses"`
	PublicMetadata        clerkMetadata       `json:"public_metadata"`
	UnsafeMetadata        clerkMetadata       `json:"unsafe_metadata"`
	Deleted               bool                `json:"deleted"`
}

func (u clerkUser) primaryEmail() string {
	if u.PrimaryEmailAddressID != nil {
		for _, addr := range u.EmailAddresses {
			if addr.ID == *u.PrimaryEmailAddressID {
				return addr.EmailAddress
			}
		}
	}
	if len(u.EmailAddresses) > 0 {
		return u.EmailAddresses[0].EmailAddress
	}
	return ""
}

func (u clerkUser) locale() string {
	if u.PublicMetadata.Locale != "" {
		return u.PublicMetadata.Locale
	}
	return u.UnsafeMetadata.Locale
}

func (u clerkUser) toAccount() accounts.ClerkUser {
	return accounts.ClerkUser{
		ClerkID:   u.ID,
		Email:     strings.TrimSpace(u.primaryEmail()),
		FirstName: deref(u.FirstName),
		LastName:  deref(u.LastName),
		Username:  deref(u.Username),
		ImageURL:  u.ImageURL,
		Locale:    u.locale(),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
