// Package maps suggests service-area places for local and hybrid listings.
package maps

import (
	apphttp "gigportal_backend/internal/http"
	"gigportal_backend/platform/logger"
)

// Module wires the place lookup HTTP routes.
type Module struct {
	handler *Handler
}

// NewModule creates the maps module. cache may be nil.
func NewModule(cache ResultCache, log *logger.Logger) *Module {
	svc := NewService("", cache, log)
	h := NewHandler(svc)
	return &Module{handler: h}
}

func (m *Module) Name() string {
	return "maps"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.Protected.Group("/maps")
	group.GET("/places", m.handler.LookupPlace)
}

var _ apphttp.Module = (*Module)(nil)
