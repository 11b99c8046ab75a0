// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-reporter-api/internal/api"
	"github.com/MKhiriev/go-reporter-api/internal/logger"
	"github.com/MKhiriev/go-reporter-api/internal/metrics"
	"github.com/MKhiriev/go-reporter-api/internal/service"
)

type Handler struct {
	api      *api.API
	services *service.Services
	metrics  *metrics.Metrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, metrics *metrics.Metrics, logger *logger.Logger) *Handler {
	reporter := api.New(services.PackageInventory, services.BundleService, metrics, logger,
		api.WithErrorStatus(statusFromError),
	)

	logger.Info().Msg("http handler created")
	return &Handler{
		api:      reporter,
		services: services,
		metrics:  metrics,
		logger:   logger,
	}
}
