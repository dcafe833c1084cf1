package health

import (
	"net/http"
	"slices"

	"apidemo/internal/http/responses"
)

type Response struct {
	Status  string   `json:"status" example:"ok"`
	Servers []string `json:"servers" example:"fastapi,flask"`
}

type Handler struct {
	servers []string
}

// NewHandler takes the names of the demo servers started in this process.
func NewHandler(servers []string) *Handler {
	return &Handler{servers: slices.Clone(servers)}
}

// Check is a liveness endpoint. The demo servers hold no dependencies, so
// being able to answer is the whole check.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	servers := h.servers
	if servers == nil {
		servers = []string{}
	}
	responses.WriteJSON(w, http.StatusOK, Response{
		Status:  "ok",
		Servers: servers,
	})
}
