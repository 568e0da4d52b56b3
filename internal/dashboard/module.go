// Package dashboard provides the freelancer dashboard's add/edit service flow.
package dashboard

import (
	"gigportal_backend/internal/dashboard/handler"
	"gigportal_backend/internal/dashboard/service"
	"gigportal_backend/internal/gigs/draft"
	apphttp "gigportal_backend/internal/http"
	"gigportal_backend/platform/logger"
	"gigportal_backend/platform/validator"
)

// Module is the dashboard module implementing http.Module.
type Module struct {
	handler *handler.Handler
}

// NewModule creates the dashboard module over the draft form's collaborators.
func NewModule(session draft.SessionProvider, categories draft.CategorySource, gigs draft.GigBackend, listings service.ListingReader, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(session, categories, gigs, listings, log)
	return &Module{handler: handler.New(svc, val)}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "dashboard"
}

// RegisterRoutes mounts dashboard routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Protected.GET("/dashboard/services", m.handler.Listings)
	ctx.Protected.GET("/dashboard/services/form", m.handler.Form)
	ctx.Protected.POST("/dashboard/services", m.handler.Create)
	ctx.Protected.PUT("/dashboard/services/:slug", m.handler.Update)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
