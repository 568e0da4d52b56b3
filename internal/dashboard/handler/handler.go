package handler

import (
	"errors"
	"net/http"

	"gigportal_backend/internal/dashboard/service"
	"gigportal_backend/internal/dashboard/transport"
	"gigportal_backend/internal/gigs/draft"
	"gigportal_backend/platform/httpkit"
	"gigportal_backend/platform/i18n"
	"gigportal_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler serves the freelancer dashboard's service pages.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest = "invalid request"
)

// New creates a new dashboard handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Form returns the draft form, prefilled when a slug is given.
// GET /api/v1/dashboard/services/form
func (h *Handler) Form(c *gin.Context) {
	var q transport.FormQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(q); err != nil {
		httpkit.ValidationError(c, err)
		return
	}
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	ctrl, err := h.svc.LoadForm(c.Request.Context(), identity.ClerkID(), h.locale(c, q.Locale), q.Slug)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, service.ToFormResponse(ctrl))
}

// Create submits a new listing.
// POST /api/v1/dashboard/services
func (h *Handler) Create(c *gin.Context) {
	h.submit(c, "")
}

// Update submits changes to an existing listing.
// PUT /api/v1/dashboard/services/:slug
func (h *Handler) Update(c *gin.Context) {
	h.submit(c, c.Param("slug"))
}

// Listings returns the caller's listings.
// GET /api/v1/dashboard/services
func (h *Handler) Listings(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}
	rows, err := h.svc.Listings(c.Request.Context(), identity.ClerkID())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, gin.H{"items": service.ToListingItems(rows)})
}

func (h *Handler) submit(c *gin.Context, editSlug string) {
	var req transport.ServiceFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.ValidationError(c, err)
		return
	}
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	res, err := h.svc.Submit(c.Request.Context(), identity.ClerkID(), h.locale(c, req.Locale), editSlug, service.FormFromRequest(req))
	if errors.Is(err, draft.ErrSubmitInProgress) {
		httpkit.Error(c, http.StatusConflict, err.Error(), nil)
		return
	}
	if httpkit.HandleError(c, err) {
		return
	}

	status := http.StatusOK
	switch {
	case res.Status == draft.StatusError:
		status = http.StatusUnprocessableEntity
	case editSlug == "":
		status = http.StatusCreated
	}
	httpkit.JSON(c, status, service.ToSubmitResponse(res))
}

func (h *Handler) locale(c *gin.Context, explicit string) string {
	return i18n.Normalize(explicit, c.GetHeader("Accept-Language"))
}
