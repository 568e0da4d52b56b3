package transport

import (
	"time"

	"github.com/google/uuid"
)

type CreateFreelancerRequest struct {
	DisplayName string `json:"displayName" validate:"required,min=2,max=80"`
	Headline    string `json:"headline" validate:"max=120"`
	Bio         string `json:"bio" validate:"max=2000"`
	Phone       string `json:"phone" validate:"max=32"`
	City        string `json:"city" validate:"max=80"`
	Country     string `json:"country" validate:"omitempty,iso3166_1_alpha2"`
}

type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	ClerkID     string    `json:"clerkId"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	Locale      string    `json:"locale"`
	CreatedAt   time.Time `json:"createdAt"`
}

type FreelancerResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	DisplayName string    `json:"displayName"`
	Headline    string    `json:"headline"`
	Bio         string    `json:"bio"`
	Phone       *string   `json:"phone,omitempty"`
	City        *string   `json:"city,omitempty"`
	Country     *string   `json:"country,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
