package echoserver

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"apidemo/internal/domain/user"
)

const (
	helloMessage   = "Hello from Echo!"
	createdMessage = "User created"
	detailMessage  = "Get user detail"
)

func hello(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": helloMessage})
}

func createUser(c echo.Context) error {
	u := new(user.User)
	if err := c.Bind(u); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": createdMessage,
		"user":    u,
	})
}

func getUser(c echo.Context) error {
	// echo routes on the raw path when one is present and leaves params
	// escaped; otherwise the param is already decoded.
	id := c.Param("id")
	if c.Request().URL.RawPath != "" {
		if decoded, err := url.PathUnescape(id); err == nil {
			id = decoded
		}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": detailMessage,
		"id":      id,
	})
}
