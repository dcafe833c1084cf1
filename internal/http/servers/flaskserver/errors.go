package flaskserver

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"apidemo/internal/logging"
	"apidemo/internal/metrics"
)

const decodeFailurePrefix = "Failed to decode JSON object: "

// Messages a werkzeug-backed service answers with for the statuses the
// router produces on its own.
var defaultMessages = map[int]string{
	fiber.StatusNotFound:              "The requested URL was not found on the server. If you entered the URL manually please check your spelling and try again.",
	fiber.StatusMethodNotAllowed:      "The method is not allowed for the requested URL.",
	fiber.StatusRequestEntityTooLarge: "The data value transmitted exceeds the capacity limit.",
	fiber.StatusInternalServerError:   "The server encountered an internal error and was unable to complete your request. Either the server is overloaded or there is an error in the application.",
}

// errorHandler renders every error as {"message": ...}.
func errorHandler(logger logging.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		msg := ""

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			msg = fe.Message
		} else {
			logger.Error("unhandled error", "path", c.Path(), "error", err)
		}

		if m, ok := defaultMessages[code]; ok {
			msg = m
		}

		return c.Status(code).JSON(messageResponse{Message: msg})
	}
}

// observe logs and counts every request. Errors from the chain are rendered
// here so the recorded status is the one the client sees.
func observe(logger logging.Logger, errHandler fiber.ErrorHandler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		if chainErr := c.Next(); chainErr != nil {
			if err := errHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		elapsed := time.Since(start)

		// Unmatched requests end on the last middleware, whose path is "/".
		route := c.Route().Path
		if !strings.HasPrefix(route, Prefix) {
			route = ""
		}

		logger.Info("http_request",
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"bytes", len(c.Response().Body()),
			"duration_ms", elapsed.Milliseconds(),
			"request_id", c.GetRespHeader(fiber.HeaderXRequestID),
			"remote_ip", c.IP(),
			"user_agent", c.Get(fiber.HeaderUserAgent),
		)
		metrics.ObserveRequest(Name, route, c.Method(), status, elapsed)

		return nil
	}
}
