// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/go-reporter-api/internal/adapter"
	"github.com/MKhiriev/go-reporter-api/internal/logger"
	"github.com/MKhiriev/go-reporter-api/internal/serializer"
)

type App struct {
	reports adapter.ReportClient
	out     io.Writer

	logger *logger.Logger
}

func NewApp(reports adapter.ReportClient, out io.Writer, logger *logger.Logger) (*App, error) {
	if reports == nil || out == nil {
		return nil, ErrIncompleteApp
	}
	return &App{reports: reports, out: out, logger: logger}, nil
}

// Run fetches the report from the reporter, validates it and writes it to
// the output as indented JSON.
func (a *App) Run(ctx context.Context) error {
	version, err := a.reports.Version(ctx)
	if err != nil {
		return fmt.Errorf("fetch reporter version: %w", err)
	}
	a.logger.Info().
		Str("version", version.Version).
		Str("commit", version.Commit).
		Msg("connected to reporter")

	dto, err := a.reports.Report(ctx)
	if err != nil {
		return fmt.Errorf("fetch report: %w", err)
	}

	report, err := dto.Model()
	if err != nil {
		return err
	}
	a.logger.Debug().
		Str("name", report.Name()).
		Int("packages", len(report.Packages())).
		Msg("report received")

	projected, err := serializer.Project(report)
	if err != nil {
		return fmt.Errorf("project report: %w", err)
	}

	out, err := json.MarshalIndent(projected, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if _, err = fmt.Fprintln(a.out, string(out)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
