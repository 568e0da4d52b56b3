// Package search provides the public full-text listing search.
package search

import (
	apphttp "gigportal_backend/internal/http"
	"gigportal_backend/internal/search/handler"
	"gigportal_backend/internal/search/repository"
	"gigportal_backend/internal/search/service"
	"gigportal_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Module struct {
	handler *handler.Handler
}

func NewModule(pool *pgxpool.Pool, val *validator.Validator) *Module {
	repo := repository.New(pool)
	svc := service.New(repo)
	h := handler.New(svc, val)

	return &Module{handler: h}
}

func (m *Module) Name() string {
	return "search"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.Public.Group("/search")
	m.handler.RegisterRoutes(group)
}

var _ apphttp.Module = (*Module)(nil)
