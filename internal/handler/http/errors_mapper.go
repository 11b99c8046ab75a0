// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-reporter-api/internal/inventory"
	"github.com/MKhiriev/go-reporter-api/internal/store"
)

var errorStatusMap = map[error]int{
	store.ErrInventoryNotMigrated: http.StatusServiceUnavailable,
	store.ErrConnectingDatabase:   http.StatusServiceUnavailable,

	inventory.ErrReadingManifest:      http.StatusServiceUnavailable,
	inventory.ErrBuildInfoUnavailable: http.StatusServiceUnavailable,
}

// statusFromError picks the response status for an error surfaced by a
// reporter endpoint or handler. Unmapped errors are 500.
func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
