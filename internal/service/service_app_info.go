// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-reporter-api/internal/config"
	"github.com/MKhiriev/go-reporter-api/internal/logger"
	"github.com/MKhiriev/go-reporter-api/models"
)

type appInfoService struct {
	info *models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService reports the build metadata of the running binary. A
// version set in configuration takes precedence over the linked one.
func NewAppInfoService(cfg config.App, buildVersion, buildDate, buildCommit string, logger *logger.Logger) AppInfoService {
	if cfg.Version != "" {
		buildVersion = cfg.Version
	}

	return &appInfoService{
		info:   models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
		logger: logger,
	}
}

func (s *appInfoService) GetAppInfo(ctx context.Context) *models.AppBuildInfo {
	return s.info
}
