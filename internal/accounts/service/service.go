package service

import (
	"context"
	"strings"

	"gigportal_backend/internal/accounts/repository"
	"gigportal_backend/internal/accounts/transport"
	"gigportal_backend/internal/events"
	"gigportal_backend/platform/apperr"
	"gigportal_backend/platform/i18n"
	"gigportal_backend/platform/logger"
	"gigportal_backend/platform/phone"
	"gigportal_backend/platform/sanitize"

	"github.com/google/uuid"
)

const msgInvalidPhone = "invalid phone number"

// ClerkUser is the subset of a Clerk user object mirrored into the users table.
type ClerkUser struct {
	ClerkID   string
	Email     string
	FirstName string
	LastName  string
	Username  string
	ImageURL  string
	Locale    string
}

// Service provides business logic for users and freelancer profiles.
type Service struct {
	repo     repository.Repository
	eventBus events.Bus
	log      *logger.Logger
}

// New creates a new accounts service.
func New(repo repository.Repository, eventBus events.Bus, log *logger.Logger) *Service {
	return &Service{repo: repo, eventBus: eventBus, log: log}
}

// GetByClerkID resolves a Clerk identity to its local user. Returns nil, nil when none exists yet.
func (s *Service) GetByClerkID(ctx context.Context, clerkID string) (*repository.User, error) {
	user, err := s.repo.GetUserByClerkID(ctx, clerkID)
	if apperr.Is(err, apperr.KindNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID returns a user by ID.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (repository.User, error) {
	return s.repo.GetUserByID(ctx, id)
}

// GetFreelancerByUserID returns the user's freelancer profile, or nil, nil when they have none.
func (s *Service) GetFreelancerByUserID(ctx context.Context, userID uuid.UUID) (*repository.Freelancer, error) {
	f, err := s.repo.GetFreelancerByUserID(ctx, userID)
	if apperr.Is(err, apperr.KindNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// UpsertFromClerk mirrors a Clerk user into the users table.
func (s *Service) UpsertFromClerk(ctx context.Context, cu ClerkUser) (repository.User, error) {
	if strings.TrimSpace(cu.ClerkID) == "" {
		return repository.User{}, apperr.Validation("clerk user id is required")
	}

	var imageURL *string
	if u := strings.TrimSpace(cu.ImageURL); u != "" {
		imageURL = &u
	}

	user, err := s.repo.UpsertUser(ctx, repository.UpsertUserParams{
		ClerkID:     cu.ClerkID,
		Email:       strings.ToLower(strings.TrimSpace(cu.Email)),
		DisplayName: displayName(cu),
		ImageURL:    imageURL,
		Locale:      i18n.Normalize(cu.Locale),
	})
	if err != nil {
		return repository.User{}, err
	}

	s.log.Info("user synced from clerk", "userId", user.ID, "clerkId", user.ClerkID)
	return user, nil
}

// DeleteByClerkID removes a user deleted in Clerk. Unknown users are ignored.
func (s *Service) DeleteByClerkID(ctx context.Context, clerkID string) error {
	err := s.repo.DeleteUserByClerkID(ctx, clerkID)
	if apperr.Is(err, apperr.KindNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	s.log.Info("user deleted from clerk", "clerkId", clerkID)
	return nil
}

// CreateFreelancer creates the seller profile for a user.
func (s *Service) CreateFreelancer(ctx context.Context, userID uuid.UUID, req transport.CreateFreelancerRequest) (repository.Freelancer, error) {
	country := strings.ToUpper(strings.TrimSpace(req.Country))

	normalizedPhone, err := phone.ParseE164(req.Phone, country)
	if err != nil {
		return repository.Freelancer{}, apperr.Validation(msgInvalidPhone).WithDetails(map[string]string{"field": "phone"})
	}

	f, err := s.repo.CreateFreelancer(ctx, repository.CreateFreelancerParams{
		UserID:      userID,
		DisplayName: sanitize.Line(req.DisplayName),
		Headline:    sanitize.Line(req.Headline),
		Bio:         sanitize.Text(req.Bio),
		Phone:       optional(normalizedPhone),
		City:        optional(sanitize.Line(req.City)),
		Country:     optional(country),
	})
	if err != nil {
		return repository.Freelancer{}, err
	}

	s.eventBus.Publish(ctx, events.FreelancerCreated{
		BaseEvent:    events.NewBaseEvent(),
		FreelancerID: f.ID,
		UserID:       userID,
		DisplayName:  f.DisplayName,
	})
	s.log.Info("freelancer profile created", "freelancerId", f.ID, "userId", userID)
	return f, nil
}

func displayName(cu ClerkUser) string {
	name := strings.TrimSpace(strings.TrimSpace(cu.FirstName) + " " + strings.TrimSpace(cu.LastName))
	if name != "" {
		return name
	}
	if u := strings.TrimSpace(cu.Username); u != "" {
		return u
	}
	if at := strings.Index(cu.Email, "@"); at > 0 {
		return cu.Email[:at]
	}
	return ""
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ToUserResponse converts a user to its transport form.
func ToUserResponse(u repository.User) transport.UserResponse {
	return transport.UserResponse{
		ID:          u.ID,
		ClerkID:     u.ClerkID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		ImageURL:    u.ImageURL,
		Locale:      u.Locale,
		CreatedAt:   u.CreatedAt,
	}
}

// ToFreelancerResponse converts a freelancer profile to its transport form.
func ToFreelancerResponse(f repository.Freelancer) transport.FreelancerResponse {
	return transport.FreelancerResponse{
		ID:          f.ID,
		UserID:      f.UserID,
		DisplayName: f.DisplayName,
		Headline:    f.Headline,
		Bio:         f.Bio,
		Phone:       f.Phone,
		City:        f.City,
		Country:     f.Country,
		CreatedAt:   f.CreatedAt,
	}
}
