package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/pig-api/internal/api"
	apiMiddleware "github.com/phrazzld/pig-api/internal/api/middleware"
	"github.com/phrazzld/pig-api/internal/api/shared"
	"github.com/phrazzld/pig-api/internal/domain"
)

// setupRouter creates and configures the application router with all routes and middleware.
//
// Unknown paths and unsupported methods answer 404 {} ahead of authentication;
// only matched routes pass through the auth gate.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.Trace(app.logger))
	r.Use(apiMiddleware.Recover)
	r.Use(apiMiddleware.Timeout(app.config.Server.RequestTimeout))

	r.NotFound(routeNotFound)
	r.MethodNotAllowed(routeNotFound)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.gateway)
	handler := api.NewHandler()

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)
		api.Mount(r, handler.Routes())
	})

	return r
}

func routeNotFound(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithAPIError(w, r, domain.ErrRouteNotFound)
}
