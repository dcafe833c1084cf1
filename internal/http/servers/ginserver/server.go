// Package ginserver serves the demo endpoints with gin, binding the
// create-user body straight into user.User.
package ginserver

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"apidemo/internal/http/routes"
	"apidemo/internal/logging"
)

const (
	Name   = "gin"
	Prefix = "/gin"

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

// NewRouter builds the gin engine. Routing runs on the raw path so an
// encoded slash stays inside the :id segment.
func NewRouter(logger logging.Logger) *gin.Engine {
	zl := logging.AsZap(logger.With("server", Name))

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.UseRawPath = true
	router.UnescapePathValues = true

	router.Use(requestID())
	router.Use(ginzap.Ginzap(zl, time.RFC3339, true))
	router.Use(ginzap.RecoveryWithZap(zl, true))
	router.Use(cors.Default())
	router.Use(otelgin.Middleware(Name))
	router.Use(requestMetrics())

	api := router.Group(Prefix)
	api.GET(helloPath, hello)
	api.POST(userPath, createUser)
	api.GET(userDetailPath, getUser)

	return router
}
