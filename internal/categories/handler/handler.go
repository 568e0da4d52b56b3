package handler

import (
	"net/http"

	"gigportal_backend/internal/categories/service"
	"gigportal_backend/internal/categories/transport"
	"gigportal_backend/platform/httpkit"
	"gigportal_backend/platform/i18n"
	"gigportal_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for categories.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest = "invalid request"
)

// New creates a new category handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// List returns the localized category tree.
// GET /api/v1/categories
func (h *Handler) List(c *gin.Context) {
	locale, ok := h.bindLocale(c)
	if !ok {
		return
	}

	tree, err := h.svc.List(c.Request.Context(), locale)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, gin.H{"locale": locale, "items": tree})
}

// Options returns the tree flattened for a single-level dropdown.
// GET /api/v1/categories/options
func (h *Handler) Options(c *gin.Context) {
	locale, ok := h.bindLocale(c)
	if !ok {
		return
	}

	options, err := h.svc.Options(c.Request.Context(), locale)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, gin.H{"locale": locale, "items": options})
}

func (h *Handler) bindLocale(c *gin.Context) (string, bool) {
	var req transport.ListCategoriesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return "", false
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.ValidationError(c, err)
		return "", false
	}
	return i18n.Normalize(req.Locale, c.GetHeader("Accept-Language")), true
}
