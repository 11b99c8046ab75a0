// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-reporter-api/internal/endpoint"
	"github.com/MKhiriev/go-reporter-api/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON encodes body with the given status. Encoding failures fall back
// to a plain-text 500.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	resp, err := endpoint.NewJSONResponse(body, status, nil)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeJSON").Msg("error encoding response")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if _, err = resp.Send(w); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeJSON").Msg("error writing response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int) {
	writeJSON(w, r, status, errorResponse{Error: http.StatusText(status)})
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound)
}
