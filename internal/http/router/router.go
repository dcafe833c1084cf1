package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"apidemo/internal/http/handlers/health"
	"apidemo/internal/http/responses"
	"apidemo/internal/logging"
	"apidemo/internal/metrics"
)

// AdminServerName labels the admin listener in logs and metrics.
const AdminServerName = "admin"

// NewAdminRouter serves the operational endpoints that sit next to the demo
// servers: Prometheus scraping and a liveness check.
func NewAdminRouter(logger logging.Logger, healthHandler *health.Handler) chi.Router {
	r := chi.NewRouter()

	UseBaseMiddlewares(r, logger, AdminServerName)

	r.Get("/healthz", healthHandler.Check)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		responses.WriteNotFound(w, r)
	})

	return r
}
