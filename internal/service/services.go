// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"io"

	"github.com/MKhiriev/go-reporter-api/internal/config"
	"github.com/MKhiriev/go-reporter-api/internal/endpoint"
	"github.com/MKhiriev/go-reporter-api/internal/logger"
	"github.com/MKhiriev/go-reporter-api/internal/metrics"
	"github.com/MKhiriev/go-reporter-api/models"
)

type Services struct {
	AppInfoService   AppInfoService
	BundleService    endpoint.BundleDescriber
	PackageInventory endpoint.PackageInventory

	closers []io.Closer
}

func NewServices(ctx context.Context, cfg *config.StructuredConfig, build *models.AppBuildInfo, metrics *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	bundle, err := NewBundleService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	inv, closer, err := NewPackageInventory(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	s := &Services{
		AppInfoService:   NewAppInfoService(cfg.App, build.BuildVersion(), build.BuildDate(), build.BuildCommit(), logger),
		BundleService:    bundle,
		PackageInventory: NewInventoryMetricsService(cfg.Inventory.Source, metrics).Wrap(inv),
	}
	if closer != nil {
		s.closers = append(s.closers, closer)
	}

	return s, nil
}

// Close releases the resources held by the services.
func (s *Services) Close() error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
