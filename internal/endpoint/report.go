// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package endpoint

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-reporter-api/internal/logger"
	"github.com/MKhiriev/go-reporter-api/internal/serializer"
	"github.com/MKhiriev/go-reporter-api/models"
)

// Report serves the application report: the bundle description plus the
// installed packages, encoded as JSON.
type Report struct {
	inventory PackageInventory
	describer BundleDescriber
}

// NewReport constructs a [Report] endpoint reading from the given providers.
func NewReport(inventory PackageInventory, describer BundleDescriber) *Report {
	return &Report{
		inventory: inventory,
		describer: describer,
	}
}

// Handle assembles the report and returns it with status 200.
func (e *Report) Handle(ctx context.Context, req Request) (*Response, error) {
	log := logger.FromContext(ctx)

	report, err := e.assemble(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Report.Handle").Str("path", req.Path).Msg("error assembling report")
		return nil, err
	}

	projection, err := serializer.Project(report)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProjectingReport, err)
	}

	resp, err := NewJSONResponse(projection, http.StatusOK, nil)
	if err != nil {
		log.Err(err).Str("func", "*Report.Handle").Msg("error encoding report")
		return nil, err
	}

	log.Debug().
		Str("func", "*Report.Handle").
		Int("packages", len(report.Packages())).
		Msg("report served")

	return resp, nil
}

func (e *Report) assemble(ctx context.Context) (*models.Report, error) {
	bundle, err := e.describer.Describe(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDescribingBundle, err)
	}

	packages, err := e.inventory.Packages(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingInventory, err)
	}

	return models.NewReport().
		SetApplicationID(bundle.ApplicationID).
		SetName(bundle.Name).
		SetStatus(bundle.Status).
		SetRepositories(bundle.Repositories).
		SetTags(bundle.Tags).
		SetPackages(packages), nil
}
