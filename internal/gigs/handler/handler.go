package handler

import (
	"context"
	"net/http"

	"gigportal_backend/internal/gigs/service"
	"gigportal_backend/internal/gigs/transport"
	"gigportal_backend/platform/httpkit"
	"gigportal_backend/platform/i18n"
	"gigportal_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Owner identifies the local user and freelancer profile behind a Clerk session.
type Owner struct {
	UserID       uuid.UUID
	FreelancerID uuid.UUID
	Locale       string
}

// OwnerResolver maps a Clerk user to its freelancer profile.
// Implementations return a NotFound apperr when either record is missing.
type OwnerResolver interface {
	ResolveOwner(ctx context.Context, clerkID string) (Owner, error)
}

// Handler handles HTTP requests for gigs.
type Handler struct {
	svc    *service.Service
	owners OwnerResolver
	val    *validator.Validator
}

const (
	msgInvalidRequest = "invalid request"
	msgInvalidGigID   = "invalid gig id"
	msgGigNotFound    = "gig not found"
)

// New creates a new gigs handler.
func New(svc *service.Service, owners OwnerResolver, val *validator.Validator) *Handler {
	return &Handler{svc: svc, owners: owners, val: val}
}

// GetBySlug returns a public listing.
// GET /api/v1/gigs/slug/:slug
func (h *Handler) GetBySlug(c *gin.Context) {
	locale := i18n.Normalize(c.Query("locale"), c.GetHeader("Accept-Language"))
	detail, err := h.svc.GetBySlug(c.Request.Context(), c.Param("slug"), locale)
	if httpkit.HandleError(c, err) {
		return
	}
	if detail == nil {
		httpkit.Error(c, http.StatusNotFound, msgGigNotFound, nil)
		return
	}
	httpkit.OK(c, h.svc.ToGigResponse(c.Request.Context(), *detail))
}

// ShareQR renders a QR code linking to the public listing page.
// GET /api/v1/gigs/slug/:slug/qr.png
func (h *Handler) ShareQR(c *gin.Context) {
	locale := i18n.Normalize(c.Query("locale"), c.GetHeader("Accept-Language"))
	png, err := h.svc.ShareQR(c.Request.Context(), c.Param("slug"), locale)
	if httpkit.HandleError(c, err) {
		return
	}
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "image/png", png)
}

// ListMine returns the caller's listings.
// GET /api/v1/gigs/mine
func (h *Handler) ListMine(c *gin.Context) {
	owner, ok := h.owner(c)
	if !ok {
		return
	}
	gigs, err := h.svc.ListByFreelancer(c.Request.Context(), owner.FreelancerID)
	if httpkit.HandleError(c, err) {
		return
	}
	items := make([]transport.GigSummaryResponse, 0, len(gigs))
	for _, g := range gigs {
		items = append(items, service.ToGigSummaryResponse(g))
	}
	httpkit.OK(c, gin.H{"items": items})
}

// Create stores a new listing for the caller.
// POST /api/v1/gigs
func (h *Handler) Create(c *gin.Context) {
	var req transport.CreateGigRequest
	if !h.bind(c, &req) {
		return
	}
	owner, ok := h.owner(c)
	if !ok {
		return
	}

	locale := req.Locale
	if locale == "" {
		locale = owner.Locale
	}
	id, err := h.svc.Create(c.Request.Context(), service.CreateGigParams{
		FreelancerID:    owner.FreelancerID,
		UserID:          owner.UserID,
		Slug:            req.Slug,
		Locale:          locale,
		Title:           req.Title,
		Description:     req.Description,
		CategoryID:      req.CategoryID,
		Tags:            req.Tags,
		WorkType:        req.WorkType,
		LocationCity:    req.LocationCity,
		LocationCountry: req.LocationCountry,
		ServiceRadiusKm: req.ServiceRadiusKm,
	})
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, transport.IDResponse{ID: id})
}

// Update edits one of the caller's listings.
// PUT /api/v1/gigs/:id
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req transport.UpdateGigRequest
	if !h.bind(c, &req) {
		return
	}
	owner, ok := h.owner(c)
	if !ok {
		return
	}

	err := h.svc.Update(c.Request.Context(), service.UpdateGigParams{
		ID:              id,
		UserID:          owner.UserID,
		Title:           req.Title,
		Description:     req.Description,
		CategoryID:      req.CategoryID,
		Tags:            req.Tags,
		WorkType:        req.WorkType,
		LocationCity:    req.LocationCity,
		LocationCountry: req.LocationCountry,
		ServiceRadiusKm: req.ServiceRadiusKm,
	})
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.IDResponse{ID: id})
}

// CreatePackage attaches a pricing tier to one of the caller's listings.
// POST /api/v1/gigs/:id/packages
func (h *Handler) CreatePackage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req transport.CreatePackageRequest
	if !h.bind(c, &req) {
		return
	}
	owner, ok := h.owner(c)
	if !ok {
		return
	}

	pkgID, err := h.svc.CreatePackage(c.Request.Context(), service.CreatePackageParams{
		GigID:         id,
		UserID:        owner.UserID,
		Tier:          req.Tier,
		Title:         req.Title,
		Description:   req.Description,
		Price:         req.Price,
		Currency:      req.Currency,
		DeliveryDays:  req.DeliveryDays,
		RevisionCount: req.RevisionCount,
	})
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, transport.IDResponse{ID: pkgID})
}

// PresignImage returns an upload URL for a new listing image.
// POST /api/v1/gigs/:id/images/presign
func (h *Handler) PresignImage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req transport.PresignImageRequest
	if !h.bind(c, &req) {
		return
	}
	owner, ok := h.owner(c)
	if !ok {
		return
	}

	presigned, err := h.svc.PresignImageUpload(c.Request.Context(), id, owner.UserID, service.ImageUpload{
		FileName:    req.FileName,
		ContentType: req.ContentType,
		SizeBytes:   req.SizeBytes,
	})
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.PresignResponse{
		UploadURL: presigned.URL,
		FileKey:   presigned.FileKey,
		ExpiresAt: presigned.ExpiresAt,
	})
}

// RegisterImage records an uploaded image on the listing.
// POST /api/v1/gigs/:id/images
func (h *Handler) RegisterImage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req transport.RegisterImageRequest
	if !h.bind(c, &req) {
		return
	}
	owner, ok := h.owner(c)
	if !ok {
		return
	}

	img, err := h.svc.RegisterImage(c.Request.Context(), id, owner.UserID, service.ImageUpload{
		FileKey:     req.FileKey,
		ContentType: req.ContentType,
		SizeBytes:   req.SizeBytes,
	})
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, h.svc.ToImageResponse(c.Request.Context(), img))
}

func (h *Handler) bind(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return false
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.ValidationError(c, err)
		return false
	}
	return true
}

func (h *Handler) owner(c *gin.Context) (Owner, bool) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return Owner{}, false
	}
	owner, err := h.owners.ResolveOwner(c.Request.Context(), identity.ClerkID())
	if httpkit.HandleError(c, err) {
		return Owner{}, false
	}
	return owner, true
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidGigID, nil)
		return uuid.Nil, false
	}
	return id, true
}
