// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResponseWriter(rr *httptest.ResponseRecorder) *responseWriter {
	return &responseWriter{ResponseWriter: rr}
}

func TestResponseWriter_WriteHeader_TableTest(t *testing.T) {
	tests := []struct {
		name           string
		statusCodes    []int
		expectedStatus int
	}{
		{name: "200 OK", statusCodes: []int{http.StatusOK}, expectedStatus: http.StatusOK},
		{name: "404 Not Found", statusCodes: []int{http.StatusNotFound}, expectedStatus: http.StatusNotFound},
		{name: "503 Service Unavailable", statusCodes: []int{http.StatusServiceUnavailable}, expectedStatus: http.StatusServiceUnavailable},
		{name: "double call, first wins", statusCodes: []int{http.StatusAccepted, http.StatusBadRequest}, expectedStatus: http.StatusAccepted},
		{name: "triple call, first wins", statusCodes: []int{http.StatusOK, http.StatusCreated, http.StatusNotFound}, expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := newResponseWriter(rr)

			for _, code := range tt.statusCodes {
				w.WriteHeader(code)
			}

			assert.Equal(t, tt.expectedStatus, w.Status())
			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.True(t, w.wroteHeader)
		})
	}
}

func TestResponseWriter_Write_TableTest(t *testing.T) {
	tests := []struct {
		name         string
		writes       [][]byte
		explicitCode int
		wantStatus   int
		wantSize     int
	}{
		{name: "single write, implicit 200", writes: [][]byte{[]byte("OK")}, wantStatus: http.StatusOK, wantSize: 2},
		{name: "multiple writes accumulate size", writes: [][]byte{[]byte("foo"), []byte("bar"), []byte("baz")}, wantStatus: http.StatusOK, wantSize: 9},
		{name: "explicit 404, then write", writes: [][]byte{[]byte("not found")}, explicitCode: http.StatusNotFound, wantStatus: http.StatusNotFound, wantSize: 9},
		{name: "empty write", writes: [][]byte{{}}, wantStatus: http.StatusOK, wantSize: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := newResponseWriter(rr)

			if tt.explicitCode != 0 {
				w.WriteHeader(tt.explicitCode)
			}
			for _, data := range tt.writes {
				_, err := w.Write(data)
				require.NoError(t, err)
			}

			assert.Equal(t, tt.wantStatus, w.Status())
			assert.Equal(t, tt.wantSize, w.size)
			assert.Equal(t, tt.wantSize, rr.Body.Len())
		})
	}
}

func TestResponseWriter_NothingWritten(t *testing.T) {
	w := newResponseWriter(httptest.NewRecorder())

	assert.False(t, w.wroteHeader)
	assert.Equal(t, 0, w.size)
	assert.Equal(t, http.StatusOK, w.Status())
}

func TestResponseWriter_ProxiesHeadersAndUnwraps(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	w.Header().Set("X-Custom", "value")
	w.WriteHeader(http.StatusTeapot)

	assert.Equal(t, "value", rr.Header().Get("X-Custom"))
	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Same(t, rr, w.Unwrap())
}
