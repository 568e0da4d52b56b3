package transport

import (
	"time"

	"github.com/google/uuid"
)

type FormQuery struct {
	Locale string `form:"locale" validate:"omitempty,locale"`
	Slug   string `form:"slug" validate:"omitempty,max=120"`
}

type PackageRequest struct {
	Title         string `json:"title" validate:"max=120"`
	Description   string `json:"description" validate:"max=2000"`
	Price         string `json:"price" validate:"max=16"`
	DeliveryDays  string `json:"deliveryDays" validate:"max=4"`
	RevisionCount string `json:"revisionCount" validate:"max=4"`
}

// ServiceFormRequest is the whole draft as posted by the dashboard.
type ServiceFormRequest struct {
	Locale          string         `json:"locale" validate:"omitempty,locale"`
	Title           string         `json:"title" validate:"max=120"`
	CategoryID      string         `json:"categoryId" validate:"omitempty,uuid"`
	Description     string         `json:"description" validate:"max=10000"`
	Tags            []string       `json:"tags" validate:"max=30,dive,max=40"`
	WorkType        string         `json:"workType" validate:"omitempty,worktype"`
	LocationCity    string         `json:"locationCity" validate:"max=80"`
	LocationCountry string         `json:"locationCountry" validate:"max=80"`
	ServiceRadiusKm string         `json:"serviceRadiusKm" validate:"max=6"`
	Package         PackageRequest `json:"package"`
}

type CategoryOption struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Label string    `json:"label"`
	Depth int       `json:"depth"`
}

type PackageForm struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Price         string `json:"price"`
	DeliveryDays  string `json:"deliveryDays"`
	RevisionCount string `json:"revisionCount"`
}

type ServiceForm struct {
	Title           string      `json:"title"`
	CategoryID      string      `json:"categoryId"`
	Description     string      `json:"description"`
	Tags            []string    `json:"tags"`
	WorkType        string      `json:"workType"`
	LocationCity    string      `json:"locationCity"`
	LocationCountry string      `json:"locationCountry"`
	ServiceRadiusKm string      `json:"serviceRadiusKm"`
	Package         PackageForm `json:"package"`
}

type FormResponse struct {
	Locale     string           `json:"locale"`
	Editing    bool             `json:"editing"`
	LoadState  string           `json:"loadState"`
	Form       ServiceForm      `json:"form"`
	Categories []CategoryOption `json:"categories"`
}

type SubmitResponse struct {
	Status          string     `json:"status"`
	Message         string     `json:"message,omitempty"`
	GigID           *uuid.UUID `json:"gigId,omitempty"`
	Slug            string     `json:"slug,omitempty"`
	RedirectTo      string     `json:"redirectTo,omitempty"`
	RedirectAfterMs int64      `json:"redirectAfterMs,omitempty"`
}

type ListingItem struct {
	ID            uuid.UUID `json:"id"`
	Slug          string    `json:"slug"`
	Title         string    `json:"title"`
	Status        string    `json:"status"`
	PackageCount  int       `json:"packageCount"`
	StartingPrice *float64  `json:"startingPrice,omitempty"`
	Currency      *string   `json:"currency,omitempty"`
	EditPath      string    `json:"editPath"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
