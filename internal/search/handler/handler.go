package handler

import (
	"net/http"

	"gigportal_backend/internal/search/service"
	"gigportal_backend/internal/search/transport"
	"gigportal_backend/platform/httpkit"
	"gigportal_backend/platform/i18n"
	"gigportal_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest = "invalid request"
)

type Handler struct {
	svc *service.Service
	val *validator.Validator
}

func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/gigs", h.SearchGigs)
}

// SearchGigs handles GET /api/v1/search/gigs
func (h *Handler) SearchGigs(c *gin.Context) {
	var req transport.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, err.Error())
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.ValidationError(c, err)
		return
	}
	req.Locale = i18n.Normalize(req.Locale, c.GetHeader("Accept-Language"))

	result, err := h.svc.SearchGigs(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}
