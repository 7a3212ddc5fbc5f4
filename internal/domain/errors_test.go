package domain

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIErrorStatuses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err      *APIError
		status   int
		notFound bool
		message  string
	}{
		{ErrMissingAPIKey, http.StatusUnauthorized, false, "needs apikey header"},
		{ErrWrongAPIKey, http.StatusUnauthorized, false, "wrong apikey"},
		{ErrMissingName, http.StatusPreconditionFailed, false, "missing name"},
		{ErrResourceOutOfRange, http.StatusNotFound, true, ""},
		{ErrRouteNotFound, http.StatusNotFound, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, tt.notFound, tt.err.IsNotFound())
			assert.Equal(t, tt.message, tt.err.Message)
		})
	}
}

func TestAsAPIError(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("decoding body: %w", ErrMissingName)
	apiErr, ok := AsAPIError(wrapped)
	require.True(t, ok)
	assert.Same(t, ErrMissingName, apiErr)

	_, ok = AsAPIError(fmt.Errorf("plain failure"))
	assert.False(t, ok)

	_, ok = AsAPIError(ErrUnauthenticated)
	assert.False(t, ok)
}

func TestAPIErrorMessageFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "auth error (401): wrong apikey", ErrWrongAPIKey.Error())
	assert.Equal(t, "not_found error (404)", ErrRouteNotFound.Error())
}
