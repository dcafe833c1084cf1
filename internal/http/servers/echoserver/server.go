// Package echoserver serves the demo endpoints with echo.
package echoserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"apidemo/internal/http/routes"
	"apidemo/internal/logging"
)

const (
	Name   = "echo"
	Prefix = "/echo"

	helloPath      = "/hello"
	userPath       = "/user"
	userDetailPath = "/user/:id"
)

// Routes lists the demo endpoints NewRouter registers.
func Routes() []routes.Endpoint {
	return []routes.Endpoint{
		{Framework: Name, Method: http.MethodGet, Path: Prefix + helloPath, Handler: "hello"},
		{Framework: Name, Method: http.MethodPost, Path: Prefix + userPath, Handler: "createUser"},
		{Framework: Name, Method: http.MethodGet, Path: Prefix + userDetailPath, Handler: "getUser"},
	}
}

func NewRouter(logger logging.Logger) *echo.Echo {
	logger = logger.With("server", Name)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestID())
	e.Use(requestMetrics())
	e.Use(requestLogger(logger))
	// Hand recovered panics back to requestLogger so they are logged as errors.
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableErrorHandler: true,
		DisablePrintStack:   true,
	}))

	api := e.Group(Prefix)
	api.GET(helloPath, hello)
	api.POST(userPath, createUser)
	api.GET(userDetailPath, getUser)

	return e
}
