package echoserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"apidemo/internal/logging"
	"apidemo/internal/metrics"
)

func requestLogger(logger logging.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			args := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"duration_ms", v.Latency.Milliseconds(),
				"request_id", v.RequestID,
				"remote_ip", v.RemoteIP,
			}
			if v.Error != nil && v.Status >= http.StatusInternalServerError {
				logger.Error("http_request", append(args, "error", v.Error)...)
				return nil
			}
			logger.Info("http_request", args...)
			return nil
		},
	})
}

// requestMetrics sits outside requestLogger, whose HandleError has already
// rendered any error by the time the status is read here.
func requestMetrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			route := c.Path()
			if status == http.StatusNotFound {
				route = ""
			}
			metrics.ObserveRequest(Name, route, c.Request().Method, status, time.Since(start))
			return err
		}
	}
}
