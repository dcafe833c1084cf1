package flaskserver

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"apidemo/internal/jsonvalue"
	"apidemo/internal/logging"
)

const (
	helloMessage   = "Hello from Flask!"
	createdMessage = "User created"
	detailMessage  = "Get user detail"
)

type messageResponse struct {
	Message string `json:"message"`
}

type createUserResponse struct {
	Message string          `json:"message"`
	User    jsonvalue.Value `json:"user"`
}

type userDetailResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

func hello(c *fiber.Ctx) error {
	return c.JSON(messageResponse{Message: helloMessage})
}

// createUser applies no schema: whatever JSON value arrives is what goes back.
func createUser(logger logging.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, err := jsonvalue.Parse(c.Body())
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, decodeFailurePrefix+err.Error())
		}
		logger.Debug("echoing user payload", "kind", body.Kind().String(), "size", body.Len())
		return c.JSON(createUserResponse{
			Message: createdMessage,
			User:    body,
		})
	}
}

func userDetail(c *fiber.Ctx) error {
	// fiber matches on the undecoded path, so the parameter is still escaped.
	id := utils.CopyString(c.Params("user_id"))
	if decoded, err := url.PathUnescape(id); err == nil {
		id = decoded
	}
	return c.JSON(userDetailResponse{
		Message: detailMessage,
		ID:      id,
	})
}
