package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/pig-api/internal/api/shared"
	"github.com/phrazzld/pig-api/internal/domain"
	"github.com/phrazzld/pig-api/internal/store"
)

// IDParam is the name of the resource id path parameter.
const IDParam = "id"

// authFromRequest returns the identity the auth middleware stored in the
// request context. Its absence means the route was mounted without auth.
func authFromRequest(r *http.Request) (shared.Auth, error) {
	auth, ok := shared.AuthFromContext(r.Context())
	if !ok {
		return shared.Auth{}, domain.ErrUnauthenticated
	}
	return auth, nil
}

// getPathID extracts and range-checks the resource id path parameter.
func getPathID(r *http.Request) (int, error) {
	return domain.ParseResourceID(chi.URLParam(r, IDParam))
}

// respond writes a routine result, or the error in its place.
func respond(w http.ResponseWriter, r *http.Request, result store.Result, err error) {
	if err != nil {
		shared.RespondWithAPIError(w, r, err)
		return
	}
	shared.RespondWithResult(w, r, result)
}
