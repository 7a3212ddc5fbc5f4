package api

import (
	"errors"
	"fmt"
	"mime"
	"net/http"

	"github.com/phrazzld/pig-api/internal/api/shared"
	"github.com/phrazzld/pig-api/internal/domain"
)

// MaxBodyBytes caps the size of a request body.
const MaxBodyBytes = 1 << 20

// NameRequest is the body of the operations that take a name. Name is a
// pointer so that an explicitly empty name is distinguishable from a
// missing one; only the latter is rejected.
type NameRequest struct {
	Name *string `json:"name" validate:"required"`
}

// decodeNameRequest reads a NameRequest from a JSON or form-encoded body.
// Any body without a usable name, unreadable bodies included, yields
// domain.ErrMissingName.
func decodeNameRequest(w http.ResponseWriter, r *http.Request) (NameRequest, error) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)

	var req NameRequest
	if err := decodeBody(r, &req); err != nil {
		return NameRequest{}, fmt.Errorf("%w: %v", domain.ErrMissingName, err)
	}
	if err := shared.ValidateRequest(&req); err != nil {
		return NameRequest{}, fmt.Errorf("%w: %v", domain.ErrMissingName, err)
	}
	return req, nil
}

func decodeBody(r *http.Request, req *NameRequest) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "application/json":
		return shared.DecodeJSON(r, req)
	case "multipart/form-data":
		if err := r.ParseMultipartForm(MaxBodyBytes); err != nil {
			return err
		}
	default:
		if err := r.ParseForm(); err != nil {
			return err
		}
	}

	values, ok := r.PostForm["name"]
	if !ok || len(values) == 0 {
		return errors.New("no name field in form body")
	}
	req.Name = &values[0]
	return nil
}
