// Package http provides the inspection HTTP adapter: routing and server
// lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/solace-autoconfig/internal/adapters/http/handlers"
)

// NewRouter registers the health and inspection routes. Middleware is
// applied globally in the order given.
func NewRouter(
	configHandler *handlers.ConfigHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/bindings", configHandler.ListBindings)
		r.Get("/bindings/{id}", configHandler.GetBinding)
		r.Get("/config", configHandler.GetConfig)
		r.Get("/config/properties", configHandler.GetProperties)
	})

	return r
}
