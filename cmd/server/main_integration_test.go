//go:build integration

package main

import (
	"net/http"
	"testing"
	"time"

	"github.com/phrazzld/pig-api/internal/config"
	"github.com/phrazzld/pig-api/internal/platform/logger"
	"github.com/phrazzld/pig-api/internal/platform/postgres"
	"github.com/phrazzld/pig-api/internal/testdb"
	"github.com/stretchr/testify/assert"
)

func setupIntegrationRouter(t *testing.T) http.Handler {
	t.Helper()

	pool := testdb.SetupPool(t)
	testdb.ResetData(t, pool)

	log, _ := logger.NewTestLogger()
	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:            3030,
			LogLevel:        "debug",
			RequestTimeout:  5 * time.Second,
			ShutdownTimeout: time.Second,
		},
		Database: config.DatabaseConfig{Schema: postgres.DefaultSchema},
	}

	// The pool is closed by testdb at cleanup, not by the application.
	app := newApplication(cfg, log, pool)
	return app.setupRouter()
}

func TestServerEndToEnd(t *testing.T) {
	router := setupIntegrationRouter(t)

	tests := []struct {
		name           string
		method         string
		target         string
		apikey         string
		body           string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "list people",
			method:         http.MethodGet,
			target:         "/",
			apikey:         "abcd",
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"id":1,"name":"Ada"},{"id":2,"name":"Grace"}]`,
		},
		{
			name:           "unknown key",
			method:         http.MethodGet,
			target:         "/",
			apikey:         "zzzz",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"wrong apikey"}`,
		},
		{
			name:           "own things",
			method:         http.MethodGet,
			target:         "/things",
			apikey:         "efgh",
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"id":3,"name":"compiler"}]`,
		},
		{
			name:           "someone else's thing",
			method:         http.MethodGet,
			target:         "/thing/3",
			apikey:         "abcd",
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{}`,
		},
		{
			name:           "add thing",
			method:         http.MethodPost,
			target:         "/things",
			apikey:         "abcd",
			body:           "name=punch+card",
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"id":4,"name":"punch card"}`,
		},
		{
			name:           "duplicate thing",
			method:         http.MethodPost,
			target:         "/things",
			apikey:         "efgh",
			body:           "name=loom",
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"error":"name taken"}`,
		},
		{
			name:           "rename self",
			method:         http.MethodPatch,
			target:         "/person",
			apikey:         "efgh",
			body:           "name=Hopper",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"id":2,"name":"Hopper"}`,
		},
		{
			name:           "delete thing",
			method:         http.MethodDelete,
			target:         "/thing/2",
			apikey:         "abcd",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"id":2,"name":"loom"}`,
		},
		{
			name:           "person not found",
			method:         http.MethodGet,
			target:         "/person/999999",
			apikey:         "abcd",
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{}`,
		},
	}

	// Cases run in order against shared data.
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, router, tt.method, tt.target, tt.apikey, tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
