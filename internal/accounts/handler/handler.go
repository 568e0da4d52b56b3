package handler

import (
	"net/http"

	"gigportal_backend/internal/accounts/repository"
	"gigportal_backend/internal/accounts/service"
	"gigportal_backend/internal/accounts/transport"
	"gigportal_backend/platform/httpkit"
	"gigportal_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for users and freelancer profiles.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest = "invalid request"
	msgUserNotSynced  = "user not found"
	msgNoFreelancer   = "freelancer profile not found"
)

// New creates a new accounts handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Me returns the local user record of the caller.
// GET /api/v1/users/me
func (h *Handler) Me(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	httpkit.OK(c, service.ToUserResponse(*user))
}

// MyFreelancer returns the caller's freelancer profile.
// GET /api/v1/freelancers/me
func (h *Handler) MyFreelancer(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	f, err := h.svc.GetFreelancerByUserID(c.Request.Context(), user.ID)
	if httpkit.HandleError(c, err) {
		return
	}
	if f == nil {
		httpkit.Error(c, http.StatusNotFound, msgNoFreelancer, nil)
		return
	}
	httpkit.OK(c, service.ToFreelancerResponse(*f))
}

// CreateFreelancer creates the caller's freelancer profile.
// POST /api/v1/freelancers
func (h *Handler) CreateFreelancer(c *gin.Context) {
	var req transport.CreateFreelancerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.ValidationError(c, err)
		return
	}

	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	f, err := h.svc.CreateFreelancer(c.Request.Context(), user.ID, req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, service.ToFreelancerResponse(f))
}

func (h *Handler) currentUser(c *gin.Context) (*repository.User, bool) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return nil, false
	}

	user, err := h.svc.GetByClerkID(c.Request.Context(), identity.ClerkID())
	if httpkit.HandleError(c, err) {
		return nil, false
	}
	if user == nil {
		httpkit.Error(c, http.StatusNotFound, msgUserNotSynced, nil)
		return nil, false
	}
	return user, true
}
