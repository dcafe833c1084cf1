package router

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"apidemo/internal/logging"
)

// UseBaseMiddlewares installs the stack every chi router in this repo runs:
// request id, real ip, panic recovery, request logging and metrics.
func UseBaseMiddlewares(r chi.Router, logger logging.Logger, serverName string) {
	// Request ID / Real IP / Recover
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Use(requestLogger(logger.With("server", serverName)))
	r.Use(requestMetrics(serverName))

	r.Use(middleware.Timeout(60 * time.Second))
}
