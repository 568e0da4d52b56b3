// Package categories provides the category bounded context module.
package categories

import (
	"gigportal_backend/internal/categories/handler"
	"gigportal_backend/internal/categories/repository"
	"gigportal_backend/internal/categories/service"
	apphttp "gigportal_backend/internal/http"
	"gigportal_backend/platform/logger"
	"gigportal_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the categories bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the categories module. cache may be nil.
func NewModule(pool *pgxpool.Pool, cache service.TreeCache, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(repository.New(pool), cache, log)
	return &Module{
		handler: handler.New(svc, val),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "categories"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts category routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Public.GET("/categories", m.handler.List)
	ctx.Public.GET("/categories/options", m.handler.Options)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
