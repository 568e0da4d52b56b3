package maps

import (
	"net/http"

	"gigportal_backend/platform/httpkit"
	"gigportal_backend/platform/i18n"

	"github.com/gin-gonic/gin"
)

// Handler exposes the place search endpoint.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// LookupPlace handles GET /api/v1/maps/places?q=...
func (h *Handler) LookupPlace(c *gin.Context) {
	var req LookupRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "query 'q' is required (min 2 chars)", nil)
		return
	}

	locale := i18n.Normalize(req.Locale, c.GetHeader("Accept-Language"))
	results, err := h.svc.SearchPlaces(c.Request.Context(), req.Query, locale)
	if err != nil {
		httpkit.Error(c, http.StatusBadGateway, "place lookup service unavailable", nil)
		return
	}

	httpkit.OK(c, results)
}
