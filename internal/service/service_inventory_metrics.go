// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-reporter-api/internal/endpoint"
	"github.com/MKhiriev/go-reporter-api/internal/logger"
	"github.com/MKhiriev/go-reporter-api/internal/metrics"
	"github.com/MKhiriev/go-reporter-api/models"
)

// InventoryMetricsService counts inventory reads and the number of packages
// returned, labelled by source.
type InventoryMetricsService struct {
	inner   endpoint.PackageInventory
	source  string
	metrics *metrics.Metrics
}

func NewInventoryMetricsService(source string, metrics *metrics.Metrics) PackageInventoryWrapper {
	return &InventoryMetricsService{
		source:  source,
		metrics: metrics,
	}
}

func (s *InventoryMetricsService) Wrap(inner endpoint.PackageInventory) endpoint.PackageInventory {
	return &InventoryMetricsService{
		inner:   inner,
		source:  s.source,
		metrics: s.metrics,
	}
}

func (s *InventoryMetricsService) Packages(ctx context.Context) ([]*models.Package, error) {
	packages, err := s.inner.Packages(ctx)
	s.metrics.ObserveInventoryRead(s.source, len(packages), err)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*InventoryMetricsService.Packages").
			Str("source", s.source).
			Msg("error reading package inventory")
	}

	return packages, err
}
