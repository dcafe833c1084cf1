// Package flaskserver is the permissive demo server: its create-user route
// accepts any JSON value and echoes it back untouched.
package flaskserver

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"apidemo/internal/config"
	"apidemo/internal/http/routes"
	"apidemo/internal/logging"
)

const (
	Name   = "flask"
	Prefix = "/flask"

	helloPath      = "/hello"
	userPath       = "/user"
	userDetailPath = "/user/:user_id"

	maxBodyBytes = 1 << 20
)

// Routes lists the demo endpoints NewApp registers.
func Routes() []routes.Endpoint {
	return []routes.Endpoint{
		{Framework: Name, Method: http.MethodGet, Path: Prefix + helloPath, Handler: "HelloWorld.get"},
		{Framework: Name, Method: http.MethodPost, Path: Prefix + userPath, Handler: "User.post"},
		{Framework: Name, Method: http.MethodGet, Path: Prefix + userDetailPath, Handler: "UserDetail.get"},
	}
}

// NewApp builds the fiber application with routing that is case-sensitive
// and strict about trailing slashes.
func NewApp(cfg config.ServerConfig, logger logging.Logger) *fiber.App {
	logger = logger.With("server", Name)
	errHandler := errorHandler(logger)

	app := fiber.New(fiber.Config{
		AppName:               Name,
		CaseSensitive:         true,
		StrictRouting:         true,
		DisableStartupMessage: true,
		BodyLimit:             maxBodyBytes,
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		IdleTimeout:           cfg.IdleTimeout,
		ErrorHandler:          errHandler,
	})

	app.Use(requestid.New())
	app.Use(observe(logger, errHandler))
	app.Use(recover.New())

	api := app.Group(Prefix)
	api.Get(helloPath, hello)
	api.Post(userPath, createUser(logger))
	api.Get(userDetailPath, userDetail)

	return app
}

// Server runs a fiber app under the shared listener lifecycle.
type Server struct {
	app  *fiber.App
	addr string
}

func New(cfg config.ServerConfig, logger logging.Logger) *Server {
	return &Server{app: NewApp(cfg, logger), addr: cfg.Addr()}
}

func (s *Server) Name() string { return Name }

func (s *Server) Addr() string { return s.addr }

// Start returns nil once Shutdown has closed the listener.
func (s *Server) Start() error {
	return s.app.Listen(s.addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}
