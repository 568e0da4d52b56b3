// Package accounts provides the users and freelancer profiles bounded context.
package accounts

import (
	"gigportal_backend/internal/accounts/handler"
	"gigportal_backend/internal/accounts/repository"
	"gigportal_backend/internal/accounts/service"
	"gigportal_backend/internal/events"
	apphttp "gigportal_backend/internal/http"
	"gigportal_backend/platform/logger"
	"gigportal_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the accounts bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the accounts module.
func NewModule(pool *pgxpool.Pool, eventBus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(repository.New(pool), eventBus, log)
	return &Module{
		handler: handler.New(svc, val),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "accounts"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts account routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Protected.GET("/users/me", m.handler.Me)
	ctx.Protected.GET("/freelancers/me", m.handler.MyFreelancer)
	ctx.Protected.POST("/freelancers", m.handler.CreateFreelancer)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
