package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// User is the local record of a Clerk identity.
type User struct {
	ID          uuid.UUID `db:"id"`
	ClerkID     string    `db:"clerk_id"`
	Email       string    `db:"email"`
	DisplayName string    `db:"display_name"`
	ImageURL    *string   `db:"image_url"`
	Locale      string    `db:"locale"`
	CreatedAt   time.Time `db:"created_at"`
}

// Freelancer is the seller profile attached to a user.
type Freelancer struct {
	ID          uuid.UUID `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	DisplayName string    `db:"display_name"`
	Headline    string    `db:"headline"`
	Bio         string    `db:"bio"`
	Phone       *string   `db:"phone"`
	City        *string   `db:"city"`
	Country     *string   `db:"country"`
	CreatedAt   time.Time `db:"created_at"`
}

// UpsertUserParams contains the Clerk fields mirrored locally.
type UpsertUserParams struct {
	ClerkID     string
	Email       string
	DisplayName string
	ImageURL    *string
	Locale      string
}

// CreateFreelancerParams contains data for creating a freelancer profile.
type CreateFreelancerParams struct {
	UserID      uuid.UUID
	DisplayName string
	Headline    string
	Bio         string
	Phone       *string
	City        *string
	Country     *string
}

// Repository defines account persistence operations.
type Repository interface {
	GetUserByClerkID(ctx context.Context, clerkID string) (User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (User, error)
	UpsertUser(ctx context.Context, params UpsertUserParams) (User, error)
	DeleteUserByClerkID(ctx context.Context, clerkID string) error
	GetFreelancerByUserID(ctx context.Context, userID uuid.UUID) (Freelancer, error)
	CreateFreelancer(ctx context.Context, params CreateFreelancerParams) (Freelancer, error)
}
