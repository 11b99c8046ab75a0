// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package endpoint

import (
	"context"

	"github.com/MKhiriev/go-reporter-api/models"
)

// Endpoint handles requests for one route.
type Endpoint interface {
	Handle(ctx context.Context, req Request) (*Response, error)
}

//go:generate mockgen -source=interfaces.go -destination=../mock/endpoint_providers_mock.go -package=mock

// PackageInventory lists the packages installed in the reported application.
type PackageInventory interface {
	Packages(ctx context.Context) ([]*models.Package, error)
}

// BundleDescriber describes the reported application bundle.
type BundleDescriber interface {
	Describe(ctx context.Context) (models.Bundle, error)
}
