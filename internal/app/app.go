// Package app wires the configured demo servers into one process.
package app

import (
	"fmt"
	"net"
	"net/http"
	"strconv"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"apidemo/internal/config"
	"apidemo/internal/http/handlers/health"
	"apidemo/internal/http/router"
	"apidemo/internal/http/routes"
	"apidemo/internal/http/server"
	"apidemo/internal/http/servers/echoserver"
	"apidemo/internal/http/servers/fastapiserver"
	"apidemo/internal/http/servers/flaskserver"
	"apidemo/internal/http/servers/ginserver"
	"apidemo/internal/logging"
)

// demo describes one demo server: its config section, its routes and how
// to build its listener.
type demo struct {
	name   string
	cfg    config.ServerConfig
	routes func() []routes.Endpoint
	build  func(cfg config.ServerConfig, logger logging.Logger) server.Server
}

func demos(cfg config.Config) []demo {
	return []demo{
		{
			name:   fastapiserver.Name,
			cfg:    cfg.FastAPI,
			routes: fastapiserver.Routes,
			build: func(c config.ServerConfig, l logging.Logger) server.Server {
				return server.NewHTTP(fastapiserver.Name, c, instrument(fastapiserver.NewRouter(l), fastapiserver.Name))
			},
		},
		{
			name:   flaskserver.Name,
			cfg:    cfg.Flask,
			routes: flaskserver.Routes,
			build: func(c config.ServerConfig, l logging.Logger) server.Server {
				return flaskserver.New(c, l)
			},
		},
		{
			name:   ginserver.Name,
			cfg:    cfg.Gin,
			routes: ginserver.Routes,
			build: func(c config.ServerConfig, l logging.Logger) server.Server {
				return server.NewHTTP(ginserver.Name, c, ginserver.NewRouter(l))
			},
		},
		{
			name:   echoserver.Name,
			cfg:    cfg.Echo,
			routes: echoserver.Routes,
			build: func(c config.ServerConfig, l logging.Logger) server.Server {
				return server.NewHTTP(echoserver.Name, c, instrument(echoserver.NewRouter(l), echoserver.Name))
			},
		},
	}
}

// instrument wraps a net/http handler in otelhttp; the span name prefix is
// the server name.
func instrument(h http.Handler, name string) http.Handler {
	return otelhttp.NewHandler(h, name)
}

// Catalog lists the endpoints of every enabled demo server.
func Catalog(cfg config.Config) routes.Catalog {
	var groups [][]routes.Endpoint
	for _, d := range demos(cfg) {
		if d.cfg.Enabled {
			groups = append(groups, d.routes())
		}
	}
	return routes.NewCatalog(groups...)
}

// Servers builds the listeners for every enabled demo server, followed by
// the admin listener when metrics are enabled.
func Servers(cfg config.Config, logger logging.Logger) []server.Server {
	var (
		servers []server.Server
		names   []string
	)
	for _, d := range demos(cfg) {
		if !d.cfg.Enabled {
			logger.Info("server disabled", "server", d.name)
			continue
		}
		servers = append(servers, d.build(d.cfg, logger))
		names = append(names, d.name)
	}

	if cfg.Metrics.Enabled {
		admin := router.NewAdminRouter(logger, health.NewHandler(names))
		servers = append(servers, server.NewHTTP(router.AdminServerName, cfg.Metrics.Server(), admin))
	}

	return servers
}

// BaseURLs maps each enabled demo server to the root URL a client on host
// reaches it at.
func BaseURLs(cfg config.Config, host string) map[string]string {
	out := make(map[string]string)
	for _, d := range demos(cfg) {
		if d.cfg.Enabled {
			out[d.name] = fmt.Sprintf("http://%s", net.JoinHostPort(host, strconv.Itoa(d.cfg.Port)))
		}
	}
	return out
}
