// Package gigs provides the service listings bounded context module.
package gigs

import (
	"time"

	"gigportal_backend/internal/adapters/storage"
	"gigportal_backend/internal/events"
	"gigportal_backend/internal/gigs/handler"
	"gigportal_backend/internal/gigs/repository"
	"gigportal_backend/internal/gigs/service"
	apphttp "gigportal_backend/internal/http"
	"gigportal_backend/platform/logger"
	"gigportal_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the gigs bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the gigs module. storageSvc may be nil.
func NewModule(pool *pgxpool.Pool, eventBus events.Bus, storageSvc storage.StorageService, bucket, baseURL string, owners handler.OwnerResolver, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(repository.New(pool), eventBus, storageSvc, bucket, baseURL, log)
	return &Module{
		handler: handler.New(svc, owners, val),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "gigs"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// SetAuditScheduler enables delayed package audits for new listings.
func (m *Module) SetAuditScheduler(audits service.AuditScheduler, delay time.Duration) {
	m.service.SetAuditScheduler(audits, delay)
}

// RegisterRoutes mounts gig routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Public.GET("/gigs/slug/:slug", m.handler.GetBySlug)
	ctx.Public.GET("/gigs/slug/:slug/qr.png", m.handler.ShareQR)

	ctx.Protected.GET("/gigs/mine", m.handler.ListMine)
	ctx.Protected.POST("/gigs", m.handler.Create)
	ctx.Protected.PUT("/gigs/:id", m.handler.Update)
	ctx.Protected.POST("/gigs/:id/packages", m.handler.CreatePackage)
	ctx.Protected.POST("/gigs/:id/images/presign", m.handler.PresignImage)
	ctx.Protected.POST("/gigs/:id/images", m.handler.RegisterImage)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
