// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter creates a minimal chi.Mux without Handler.Init so no services
// are needed.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/api/version/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("version"))
	})
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Post("/multi", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	router.Delete("/multi", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		expectedBody   string
	}{
		{name: "registered GET passes through", method: http.MethodGet, path: "/api/version/", expectedStatus: http.StatusOK, expectedBody: "version"},
		{name: "registered POST passes through", method: http.MethodPost, path: "/multi", expectedStatus: http.StatusCreated},
		{name: "registered DELETE passes through", method: http.MethodDelete, path: "/multi", expectedStatus: http.StatusNoContent},
		{name: "POST on GET route is 404", method: http.MethodPost, path: "/api/version/", expectedStatus: http.StatusNotFound, expectedBody: `{"error":"Not Found"}`},
		{name: "PUT on GET route is 404", method: http.MethodPut, path: "/healthz", expectedStatus: http.StatusNotFound, expectedBody: `{"error":"Not Found"}`},
		{name: "GET on POST/DELETE route is 404", method: http.MethodGet, path: "/multi", expectedStatus: http.StatusNotFound, expectedBody: `{"error":"Not Found"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestCheckHTTPMethod_WrongMethodIsJSON(t *testing.T) {
	router := buildRouter()

	for _, method := range []string{http.MethodPatch, http.MethodOptions, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(method, "/healthz", nil))

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		})
	}
}
