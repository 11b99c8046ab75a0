// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-reporter-api/internal/endpoint"
	"github.com/MKhiriev/go-reporter-api/models"
)

type AppInfoService interface {
	GetAppInfo(ctx context.Context) *models.AppBuildInfo
}

// PackageInventoryWrapper defines middleware composition for
// endpoint.PackageInventory. Implementations wrap an existing inventory to
// add behavior such as metrics or logging.
type PackageInventoryWrapper interface {
	Wrap(endpoint.PackageInventory) endpoint.PackageInventory
}
