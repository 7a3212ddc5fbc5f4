package shared

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/pig-api/internal/domain"
)

// Global validator instance for reuse
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// apikey: exactly four lower-case ASCII letters.
	_ = v.RegisterValidation("apikey", func(fl validator.FieldLevel) bool {
		return domain.IsValidKey(fl.Field().String())
	})
	return v
}

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// ValidateRequest validates the given struct using the validator package.
func ValidateRequest(v interface{}) error {
	if validator, ok := v.(interface{ Validate() error }); ok {
		return validator.Validate()
	}
	return validate.Struct(v)
}

// ValidateAPIKey checks a raw apikey header value. A missing or malformed
// key yields domain.ErrMissingAPIKey.
func ValidateAPIKey(raw string) error {
	if err := validate.Var(raw, "required,apikey"); err != nil {
		return domain.ErrMissingAPIKey
	}
	return nil
}
