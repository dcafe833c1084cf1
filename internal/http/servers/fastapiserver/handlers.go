package fastapiserver

import (
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"apidemo/internal/http/responses"
	"apidemo/internal/logging"
)

const (
	helloMessage   = "Hello from FastAPI!"
	createdMessage = "User created"
	detailMessage  = "Get user detail"

	maxBodyBytes = 1 << 20
)

type Handler struct {
	logger logging.Logger
}

func NewHandler(logger logging.Logger) *Handler {
	return &Handler{
		logger: logger.With("component", "fastapi_http_handler"),
	}
}

// Hello godoc
// @Summary  Static greeting
// @Tags     fastapi
// @Produce  json
// @Success  200 {object} HelloResponse
// @Router   /fastapi/hello [get]
func (h *Handler) Hello(w http.ResponseWriter, r *http.Request) {
	responses.WriteJSON(w, http.StatusOK, HelloResponse{Message: helloMessage})
}

// CreateUser godoc
// @Summary  Echo a validated user
// @Tags     fastapi
// @Accept   json
// @Produce  json
// @Param    user body     user.User true "User to echo"
// @Success  200  {object} CreateUserResponse
// @Failure  422  {object} ValidationErrorResponse
// @Router   /fastapi/user [post]
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			responses.WriteDetail(w, http.StatusRequestEntityTooLarge, "Request Entity Too Large")
			return
		}
		h.logger.Error("failed to read create user payload", "error", err)
		responses.WriteDetail(w, http.StatusBadRequest, "There was an error parsing the body")
		return
	}

	u, err := DecodeUser(body)
	if err != nil {
		var verr *RequestValidationError
		if errors.As(err, &verr) {
			h.logger.Debug("invalid create user payload", "error", err)
			responses.WriteJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{Detail: verr.Errors})
			return
		}
		h.logger.Error("failed to decode create user payload", "error", err)
		responses.WriteDetail(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	responses.WriteJSON(w, http.StatusOK, CreateUserResponse{
		Message: createdMessage,
		User:    u,
	})
}

// GetUser godoc
// @Summary  Echo a user id
// @Tags     fastapi
// @Produce  json
// @Param    user_id path     string true "User id"
// @Success  200     {object} UserDetailResponse
// @Router   /fastapi/user/{user_id} [get]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	responses.WriteJSON(w, http.StatusOK, UserDetailResponse{
		Message: detailMessage,
		ID:      pathParam(r, "user_id"),
	})
}

// pathParam returns a decoded path parameter. chi matches against the raw
// path whenever the request carried escapes that Path cannot represent
// (such as %2F), and then hands back the still-escaped segment.
func pathParam(r *http.Request, name string) string {
	v := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return v
	}
	if decoded, err := url.PathUnescape(v); err == nil {
		return decoded
	}
	return v
}
