package repository

import (
	"context"
	"errors"
	"fmt"

	"gigportal_backend/platform/apperr"
	"gigportal_backend/platform/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	userNotFoundMessage       = "user not found"
	freelancerNotFoundMessage = "freelancer profile not found"
	freelancerExistsMessage   = "freelancer profile already exists"

	userColumns       = `id, clerk_id, email, display_name, image_url, locale, created_at`
	freelancerColumns = `id, user_id, display_name, headline, bio, phone, city, country, created_at`
)

// Repo implements the accounts repository.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new accounts repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

func scanUser(row pgx.Row) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.ClerkID, &u.Email, &u.DisplayName, &u.ImageURL, &u.Locale, &u.CreatedAt)
	return u, err
}

func scanFreelancer(row pgx.Row) (Freelancer, error) {
	var f Freelancer
	err := row.Scan(&f.ID, &f.UserID, &f.DisplayName, &f.Headline, &f.Bio, &f.Phone, &f.City, &f.Country, &f.CreatedAt)
	return f, err
}

// GetUserByClerkID retrieves a user by Clerk ID.
func (r *Repo) GetUserByClerkID(ctx context.Context, clerkID string) (User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE clerk_id = $1`, clerkID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, apperr.NotFound(userNotFoundMessage)
		}
		return User{}, fmt.Errorf("get user by clerk id: %w", err)
	}
	return u, nil
}

// GetUserByID retrieves a user by ID.
func (r *Repo) GetUserByID(ctx context.Context, id uuid.UUID) (User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, apperr.NotFound(userNotFoundMessage)
		}
		return User{}, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

// UpsertUser inserts a user or refreshes the row with the same Clerk ID.
func (r *Repo) UpsertUser(ctx context.Context, params UpsertUserParams) (User, error) {
	query := `
		INSERT INTO users (clerk_id, email, display_name, image_url, locale)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (clerk_id) DO UPDATE
		SET email = EXCLUDED.email,
			display_name = EXCLUDED.display_name,
			image_url = EXCLUDED.image_url,
			locale = EXCLUDED.locale,
			updated_at = now()
		RETURNING ` + userColumns

	u, err := scanUser(r.pool.QueryRow(ctx, query,
		params.ClerkID, params.Email, params.DisplayName, params.ImageURL, params.Locale,
	))
	if err != nil {
		return User{}, fmt.Errorf("upsert user: %w", err)
	}
	return u, nil
}

// DeleteUserByClerkID removes a user and, through cascades, their profile and listings.
func (r *Repo) DeleteUserByClerkID(ctx context.Context, clerkID string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM users WHERE clerk_id = $1`, clerkID)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound(userNotFoundMessage)
	}
	return nil
}

// GetFreelancerByUserID retrieves the freelancer profile of a user.
func (r *Repo) GetFreelancerByUserID(ctx context.Context, userID uuid.UUID) (Freelancer, error) {
	f, err := scanFreelancer(r.pool.QueryRow(ctx, `SELECT `+freelancerColumns+` FROM freelancers WHERE user_id = $1`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Freelancer{}, apperr.NotFound(freelancerNotFoundMessage)
		}
		return Freelancer{}, fmt.Errorf("get freelancer by user id: %w", err)
	}
	return f, nil
}

// CreateFreelancer creates a freelancer profile. A user can have only one.
func (r *Repo) CreateFreelancer(ctx context.Context, params CreateFreelancerParams) (Freelancer, error) {
	query := `
		INSERT INTO freelancers (user_id, display_name, headline, bio, phone, city, country)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + freelancerColumns

	f, err := scanFreelancer(r.pool.QueryRow(ctx, query,
		params.UserID, params.DisplayName, params.Headline, params.Bio, params.Phone, params.City, params.Country,
	))
	if err != nil {
		if db.IsUniqueViolation(err) {
			return Freelancer{}, apperr.Conflict(freelancerExistsMessage)
		}
		if db.IsForeignKeyViolation(err) {
			return Freelancer{}, apperr.NotFound(userNotFoundMessage)
		}
		return Freelancer{}, fmt.Errorf("create freelancer: %w", err)
	}
	return f, nil
}
