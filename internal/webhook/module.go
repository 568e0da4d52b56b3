// Package webhook receives Clerk user webhooks and mirrors the users into accounts.
package webhook

import (
	apphttp "gigportal_backend/internal/http"
	"gigportal_backend/platform/logger"
)

// Module is the webhook bounded context module implementing http.Module.
type Module struct {
	handler *Handler
}

// NewModule creates the webhook module. A nil verifier keeps the route mounted
// but answers 503, so a missing CLERK_WEBHOOK_SECRET is visible to Clerk.
func NewModule(users UserSync, verifier SignatureVerifier, log *logger.Logger) *Module {
	return &Module{handler: NewHandler(NewService(users, log), verifier, log)}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "webhook"
}

// RegisterRoutes mounts webhook routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/webhooks/clerk", m.handler.HandleClerk)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
