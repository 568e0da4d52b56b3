package webhook

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"gigportal_backend/platform/httpkit"
	"gigportal_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

const maxPayloadBytes = 1 << 20

// SignatureVerifier authenticates a webhook delivery.
type SignatureVerifier interface {
	Verify(header http.Header, body []byte) error
}

// Handler handles Clerk webhook deliveries.
type Handler struct {
	service  *Service
	verifier SignatureVerifier
	log      *logger.Logger
}

// NewHandler creates a new webhook handler.
func NewHandler(service *Service, verifier SignatureVerifier, log *logger.Logger) *Handler {
	return &Handler{service: service, verifier: verifier, log: log}
}

// ClerkResponse acknowledges a delivery.
type ClerkResponse struct {
	Received bool   `json:"received"`
	Handled  bool   `json:"handled"`
	Type     string `json:"type"`
}

// HandleClerk processes Clerk user webhooks.
// POST /api/v1/webhooks/clerk
func (h *Handler) HandleClerk(c *gin.Context) {
	if h.verifier == nil {
		httpkit.Error(c, http.StatusServiceUnavailable, "webhook receiver not configured", nil)
		return
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxPayloadBytes+1))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid payload", err.Error())
		return
	}
	if len(body) > maxPayloadBytes {
		httpkit.Error(c, http.StatusRequestEntityTooLarge, "payload too large", nil)
		return
	}

	if err := h.verifier.Verify(c.Request.Header, body); err != nil {
		h.log.AuthEvent("clerk_webhook", c.GetHeader(HeaderID), false, err.Error())
		status := http.StatusUnauthorized
		if errors.Is(err, ErrMissingHeaders) {
			status = http.StatusBadRequest
		}
		httpkit.Error(c, status, "invalid webhook signature", nil)
		return
	}

	var event ClerkEvent
	if err := json.Unmarshal(body, &event); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid payload", err.Error())
		return
	}

	handled, err := h.service.Process(c.Request.Context(), event)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, ClerkResponse{Received: true, Handled: handled, Type: event.Type})
}
