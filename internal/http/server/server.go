// Package server runs the demo listeners side by side and stops them together.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"apidemo/internal/config"
	"apidemo/internal/logging"
)

// Server is one listener with its own lifecycle. Start blocks until the
// listener stops and returns nil when that happened through Shutdown.
type Server interface {
	Name() string
	Addr() string
	Start() error
	Shutdown(ctx context.Context) error
}

// HTTPServer adapts a net/http handler (chi, gin, echo) to Server.
type HTTPServer struct {
	name string
	srv  *http.Server
}

func NewHTTP(name string, cfg config.ServerConfig, handler http.Handler) *HTTPServer {
	return &HTTPServer{
		name: name,
		srv: &http.Server{
			Addr:         cfg.Addr(),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
	}
}

func (s *HTTPServer) Name() string { return s.name }

func (s *HTTPServer) Addr() string { return s.srv.Addr }

func (s *HTTPServer) Start() error {
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// ShutdownTimeout bounds how long Run waits for in-flight requests.
const ShutdownTimeout = 15 * time.Second

// Run starts every server and blocks until ctx is cancelled or one of them
// fails. All servers are shut down before Run returns; the first start-up
// error, if any, is returned.
func Run(ctx context.Context, logger logging.Logger, servers ...Server) error {
	if len(servers) == 0 {
		return errors.New("no servers enabled")
	}

	errCh := make(chan error, len(servers))
	for _, s := range servers {
		go func(s Server) {
			logger.Info("http server starting", "server", s.Name(), "addr", s.Addr())
			if err := s.Start(); err != nil {
				errCh <- fmt.Errorf("%s: %w", s.Name(), err)
			}
		}(s)
	}

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	case runErr = <-errCh:
		logger.Error("fatal error from server", "error", runErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	for _, s := range servers {
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown server", "server", s.Name(), "error", err)
		}
	}

	return runErr
}
