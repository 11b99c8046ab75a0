// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

type healthResponse struct {
	Status string   `json:"status"`
	Routes []string `json:"routes"`
}

// health reports liveness together with the reporter routes being served.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, healthResponse{
		Status: "ok",
		Routes: h.api.Routes(),
	})
}
