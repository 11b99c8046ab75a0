// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-reporter-api/internal/config"
	"github.com/MKhiriev/go-reporter-api/internal/endpoint"
	"github.com/MKhiriev/go-reporter-api/internal/logger"
	"github.com/MKhiriev/go-reporter-api/models"
)

// bundleService describes the bundle from static configuration.
type bundleService struct {
	bundle models.Bundle

	logger *logger.Logger
}

// NewBundleService parses the application section of cfg once. Status and
// tags that do not parse yield [ErrInvalidBundleConfig].
func NewBundleService(cfg config.App, logger *logger.Logger) (endpoint.BundleDescriber, error) {
	status, err := models.ParseApplicationStatus(cfg.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBundleConfig, err)
	}

	tags := make([]*models.Tag, 0, len(cfg.Tags))
	for _, raw := range cfg.Tags {
		tag, err := models.ParseTag(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidBundleConfig, err)
		}
		tags = append(tags, tag)
	}

	return &bundleService{
		bundle: models.Bundle{
			ApplicationID: cfg.ApplicationID,
			Name:          cfg.Name,
			Status:        status,
			Repositories:  slices.Clone(cfg.Repositories),
			Tags:          tags,
		},
		logger: logger,
	}, nil
}

// Describe returns a copy of the configured bundle.
func (s *bundleService) Describe(ctx context.Context) (models.Bundle, error) {
	b := s.bundle
	b.Repositories = slices.Clone(s.bundle.Repositories)

	b.Tags = make([]*models.Tag, len(s.bundle.Tags))
	for i, tag := range s.bundle.Tags {
		b.Tags[i] = models.NewTag(tag.ID(), tag.Name())
	}

	return b, nil
}
