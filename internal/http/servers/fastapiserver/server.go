// Package fastapiserver is the schema-checked demo server: its create-user
// route refuses any body that is not {"name": string, "email": string}.
package fastapiserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/swaggo/swag"

	_ "apidemo/internal/http/servers/fastapiserver/docs"

	"apidemo/internal/http/responses"
	"apidemo/internal/http/router"
	"apidemo/internal/http/routes"
	"apidemo/internal/logging"
)

const (
	Name   = "fastapi"
	Prefix = "/fastapi"

	helloPath      = "/hello"
	userPath       = "/user"
	userDetailPath = "/user/{user_id}"

	openAPIPath = "/openapi.json"
	docsPath    = "/docs"
)

// Routes lists the demo endpoints NewRouter registers.
func Routes() []routes.Endpoint {
	return []routes.Endpoint{
		{Framework: Name, Method: http.MethodGet, Path: Prefix + helloPath, Handler: "Hello"},
		{Framework: Name, Method: http.MethodPost, Path: Prefix + userPath, Handler: "CreateUser"},
		{Framework: Name, Method: http.MethodGet, Path: Prefix + userDetailPath, Handler: "GetUser"},
	}
}

func NewRouter(logger logging.Logger) chi.Router {
	r := chi.NewRouter()

	router.UseBaseMiddlewares(r, logger, Name)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		responses.WriteDetail(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		responses.WriteDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	h := NewHandler(logger)
	r.Route(Prefix, func(r chi.Router) {
		r.Get(helloPath, h.Hello)
		r.Post(userPath, h.CreateUser)
		r.Get(userDetailPath, h.GetUser)
	})

	r.Get(openAPIPath, serveOpenAPI(logger))
	r.Get(docsPath+"/*", httpSwagger.Handler(httpSwagger.URL(docsPath+"/doc.json")))

	return r
}

func serveOpenAPI(logger logging.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := swag.ReadDoc()
		if err != nil {
			logger.Error("failed to render api document", "error", err)
			responses.WriteDetail(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(doc))
	}
}
