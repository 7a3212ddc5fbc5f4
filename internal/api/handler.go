package api

import (
	"net/http"

	"github.com/phrazzld/pig-api/internal/api/shared"
)

// Handler serves the people and things operations. It is stateless: the
// store session and person id arrive in the request context from the auth
// middleware.
type Handler struct{}

// NewHandler creates a new Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// PeopleGet handles GET / requests.
func (h *Handler) PeopleGet(w http.ResponseWriter, r *http.Request) {
	auth, err := authFromRequest(r)
	if err != nil {
		shared.RespondWithAPIError(w, r, err)
		return
	}

	result, err := auth.Session.PeopleGet(r.Context())
	respond(w, r, result, err)
}

// PersonGet handles GET /person/{id} requests.
func (h *Handler) PersonGet(w http.ResponseWriter, r *http.Request) {
	auth, err := authFromRequest(r)
	if err != nil {
		shared.RespondWithAPIError(w, r, err)
		return
	}

	personID, err := getPathID(r)
	if err != nil {
		shared.RespondWithAPIError(w, r, err)
		return
	}

	result, err := auth.Session.PersonGet(r.Context(), personID)
	respond(w, r, result, err)
}

// PersonUpdate handles PATCH /person requests, renaming the caller.
func (h *Handler) PersonUpdate(w http.ResponseWriter, r *http.Request) {
	auth, err := authFromRequest(r)
	if err != nil {
		shared.RespondWithAPIError(w, r, err)
		return
	}

	req, err := decodeNameRequest(w, r)
	if err != nil {
		shared.RespondWithAPIError(w, r, err)
		return
	}

	result, err := auth.Session.PersonUpdate(r.Context(), auth.PersonID, *req.Name)
	respond(w, r, result, err)
}

// ThingsGet handles GET /things requests.
func (h *Handler) ThingsGet(w http.ResponseWriter, r *http.Request) {
	auth, err := authFromRequest(r)
	if err != nil {
		shared.RespondWithAPIError(w, r, err)
		return
	}

	result, err := auth.Session.ThingsGet(r.Context(), auth.PersonID)
	respond(w, r, result, err)
}

// ThingAdd handles POST /things requests.
func (h *Handler) ThingAdd(w http.ResponseWriter, r *http.Request) {
	auth, err := authFromRequest(r)
	if err != nil {
		shared.RespondWithAPIError(w, r, err)
		return
	}

	req, err := decodeNameRequest(w, r)
	if err != nil {
		shared.RespondWithAPIError(w, r, err)
		return
	}

	result, err := auth.Session.ThingAdd(r.Context(), auth.PersonID, *req.Name)
	respond(w, r, result, err)
}

// ThingGet handles GET /thing/{id} requests.
func (h *Handler) ThingGet(w http.ResponseWriter, r *http.Request) {
	auth, err := authFromRequest(r)
	if err != nil {
		shared.RespondWithAPIError(w, r, err)
		return
	}

	thingID, err := getPathID(r)
	if err != nil {
		shared.RespondWithAPIError(w, r, err)
		return
	}

	result, err := auth.Session.ThingGet(r.Context(), auth.PersonID, thingID)
	respond(w, r, result, err)
}

// ThingUpdate handles PATCH /thing/{id} requests. The id is checked before
// the body, so an out-of-range id answers 404 even without a name.
func (h *Handler) ThingUpdate(w http.ResponseWriter, r *http.Request) {
	auth, err := authFromRequest(r)
	if err != nil {
		shared.RespondWithAPIError(w, r, err)
		return
	}

	thingID, err := getPathID(r)
	if err != nil {
		shared.RespondWithAPIError(w, r, err)
		return
	}

	req, err := decodeNameRequest(w, r)
	if err != nil {
		shared.RespondWithAPIError(w, r, err)
		return
	}

	result, err := auth.Session.ThingUpdate(r.Context(), auth.PersonID, thingID, *req.Name)
	respond(w, r, result, err)
}

// ThingDelete handles DELETE /thing/{id} requests.
func (h *Handler) ThingDelete(w http.ResponseWriter, r *http.Request) {
	auth, err := authFromRequest(r)
	if err != nil {
		shared.RespondWithAPIError(w, r, err)
		return
	}

	thingID, err := getPathID(r)
	if err != nil {
		shared.RespondWithAPIError(w, r, err)
		return
	}

	result, err := auth.Session.ThingDelete(r.Context(), auth.PersonID, thingID)
	respond(w, r, result, err)
}
