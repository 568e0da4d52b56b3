package transport

import (
	"time"

	"github.com/google/uuid"
)

type CreateGigRequest struct {
	Slug            string     `json:"slug" validate:"omitempty,max=100"`
	Locale          string     `json:"locale" validate:"omitempty,locale"`
	Title           string     `json:"title" validate:"required,min=10,max=120"`
	Description     string     `json:"description" validate:"required,min=50,max=10000"`
	CategoryID      *uuid.UUID `json:"categoryId"`
	Tags            []string   `json:"tags" validate:"max=10,dive,max=40"`
	WorkType        string     `json:"workType" validate:"omitempty,worktype"`
	LocationCity    string     `json:"locationCity" validate:"max=80"`
	LocationCountry string     `json:"locationCountry" validate:"max=80"`
	ServiceRadiusKm *int       `json:"serviceRadiusKm" validate:"omitempty,min=0,max=1000"`
}

type UpdateGigRequest struct {
	Title           string     `json:"title" validate:"required,min=10,max=120"`
	Description     string     `json:"description" validate:"required,min=50,max=10000"`
	CategoryID      *uuid.UUID `json:"categoryId"`
	Tags            []string   `json:"tags" validate:"max=10,dive,max=40"`
	WorkType        string     `json:"workType" validate:"omitempty,worktype"`
	LocationCity    string     `json:"locationCity" validate:"max=80"`
	LocationCountry string     `json:"locationCountry" validate:"max=80"`
	ServiceRadiusKm *int       `json:"serviceRadiusKm" validate:"omitempty,min=0,max=1000"`
}

type CreatePackageRequest struct {
	Tier          string  `json:"tier" validate:"required,oneof=basic standard premium"`
	Title         string  `json:"title" validate:"max=120"`
	Description   string  `json:"description" validate:"max=2000"`
	Price         float64 `json:"price" validate:"gt=0"`
	Currency      string  `json:"currency" validate:"omitempty,len=3"`
	DeliveryDays  int     `json:"deliveryDays" validate:"omitempty,min=1,max=365"`
	RevisionCount int     `json:"revisionCount" validate:"omitempty,min=0,max=50"`
}

type PresignImageRequest struct {
	FileName    string `json:"fileName" validate:"required,max=200"`
	ContentType string `json:"contentType" validate:"required,max=100"`
	SizeBytes   int64  `json:"sizeBytes" validate:"required,gt=0"`
}

type RegisterImageRequest struct {
	FileKey     string `json:"fileKey" validate:"required,max=500"`
	ContentType string `json:"contentType" validate:"required,max=100"`
	SizeBytes   int64  `json:"sizeBytes" validate:"required,gt=0"`
}

type IDResponse struct {
	ID uuid.UUID `json:"id"`
}

type PresignResponse struct {
	UploadURL string    `json:"uploadUrl"`
	FileKey   string    `json:"fileKey"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type PackageResponse struct {
	ID            uuid.UUID `json:"id"`
	Tier          string    `json:"tier"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	PriceCents    int64     `json:"priceCents"`
	Currency      string    `json:"currency"`
	DeliveryDays  int       `json:"deliveryDays"`
	RevisionCount int       `json:"revisionCount"`
}

type ImageResponse struct {
	ID          uuid.UUID `json:"id"`
	FileKey     string    `json:"fileKey"`
	URL         string    `json:"url,omitempty"`
	ContentType string    `json:"contentType"`
	SortOrder   int       `json:"sortOrder"`
}

type GigResponse struct {
	ID              uuid.UUID         `json:"id"`
	FreelancerID    uuid.UUID         `json:"freelancerId"`
	Slug            string            `json:"slug"`
	Locale          string            `json:"locale"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	CategoryID      *uuid.UUID        `json:"categoryId,omitempty"`
	CategoryName    *string           `json:"categoryName,omitempty"`
	Tags            []string          `json:"tags"`
	WorkType        string            `json:"workType"`
	LocationCity    *string           `json:"locationCity,omitempty"`
	LocationCountry *string           `json:"locationCountry,omitempty"`
	ServiceRadiusKm *int              `json:"serviceRadiusKm,omitempty"`
	Status          string            `json:"status"`
	Package         *PackageResponse  `json:"package,omitempty"`
	Packages        []PackageResponse `json:"packages"`
	Images          []ImageResponse   `json:"images"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

type GigSummaryResponse struct {
	ID            uuid.UUID `json:"id"`
	Slug          string    `json:"slug"`
	Title         string    `json:"title"`
	Status        string    `json:"status"`
	PackageCount  int       `json:"packageCount"`
	StartingPrice *float64  `json:"startingPrice,omitempty"`
	Currency      *string   `json:"currency,omitempty"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
