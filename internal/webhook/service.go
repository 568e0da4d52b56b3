package webhook

import (
	"context"
	"encoding/json"
	"fmt"

	"gigportal_backend/internal/accounts/repository"
	accounts "gigportal_backend/internal/accounts/service"
	"gigportal_backend/platform/apperr"
	"gigportal_backend/platform/logger"
)

// UserSync mirrors Clerk users into the marketplace accounts.
type UserSync interface {
	UpsertFromClerk(ctx context.Context, cu accounts.ClerkUser) (repository.User, error)
	DeleteByClerkID(ctx context.Context, clerkID string) error
}

// Service applies verified Clerk events.
type Service struct {
	users UserSync
	log   *logger.Logger
}

// NewService creates a webhook service.
func NewService(users UserSync, log *logger.Logger) *Service {
	return &Service{users: users, log: log}
}

// Process applies one Clerk event. It reports whether the event type was handled.
func (s *Service) Process(ctx context.Context, event ClerkEvent) (bool, error) {
	switch event.Type {
	case EventUserCreated, EventUserUpdated:
		var u clerkUser
		if err := json.Unmarshal(event.Data, &u); err != nil {
			return false, apperr.BadRequest("invalid user payload")
		}
		if _, err := s.users.UpsertFromClerk(ctx, u.toAccount()); err != nil {
			return false, fmt.Errorf("sync clerk user: %w", err)
		}
		return true, nil
	case EventUserDeleted:
		var u clerkUser
		if err := json.Unmarshal(event.Data, &u); err != nil {
			return false, apperr.BadRequest("invalid user payload")
		}
		if u.ID == "" {
			return false, apperr.Validation("clerk user id is required")
		}
		if err := s.users.DeleteByClerkID(ctx, u.ID); err != nil {
			return false, fmt.Errorf("delete clerk user: %w", err)
		}
		return true, nil
	default:
		s.log.Debug("ignoring clerk event", "type", event.Type)
		return false, nil
	}
}
