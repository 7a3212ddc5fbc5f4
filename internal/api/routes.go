package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Route binds a method and a chi pattern to a handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// idPattern only matches decimal digits, so non-numeric ids are routing misses.
const idPattern = "{" + IDParam + ":[0-9]+}"

// Routes returns the route table. Every route requires authentication.
func (h *Handler) Routes() []Route {
	return []Route{
		{http.MethodGet, "/", h.PeopleGet},
		{http.MethodGet, "/things", h.ThingsGet},
		{http.MethodPost, "/things", h.ThingAdd},
		{http.MethodPatch, "/person", h.PersonUpdate},
		{http.MethodGet, "/person/" + idPattern, h.PersonGet},
		{http.MethodGet, "/thing/" + idPattern, h.ThingGet},
		{http.MethodPatch, "/thing/" + idPattern, h.ThingUpdate},
		{http.MethodDelete, "/thing/" + idPattern, h.ThingDelete},
	}
}

// Mount registers routes on r.
func Mount(r chi.Router, routes []Route) {
	for _, route := range routes {
		r.Method(route.Method, route.Pattern, route.Handler)
	}
}
