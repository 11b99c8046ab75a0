// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-reporter-api/models"
)

// ReportDTO is the decoded application report.
type ReportDTO struct {
	ApplicationID string       `json:"applicationId"`
	Name          string       `json:"name"`
	Status        string       `json:"status"`
	Packages      []PackageDTO `json:"packages"`
	Repositories  []string     `json:"repositories"`
	Tags          []TagDTO     `json:"tags"`
}

type PackageDTO struct {
	Name            string    `json:"name"`
	Version         string    `json:"version"`
	Type            string    `json:"type"`
	SourceReference string    `json:"sourceReference"`
	Source          SourceDTO `json:"source"`
}

// SourceDTO is empty when the package has no known source.
type SourceDTO struct {
	URL       string `json:"url,omitempty"`
	Type      string `json:"type,omitempty"`
	Reference string `json:"reference,omitempty"`
}

type TagDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// VersionDTO is the decoded build metadata of the reporter.
type VersionDTO struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// Model converts the report back into the domain entity.
func (r *ReportDTO) Model() (*models.Report, error) {
	id := 0
	if r.ApplicationID != "" {
		var err error
		if id, err = strconv.Atoi(r.ApplicationID); err != nil {
			return nil, fmt.Errorf("%w: application id %q: %w", ErrInvalidReport, r.ApplicationID, err)
		}
	}

	status, err := models.ParseApplicationStatus(r.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidReport, err)
	}

	packages := make([]*models.Package, 0, len(r.Packages))
	for _, p := range r.Packages {
		var source models.Source
		if p.Source != (SourceDTO{}) {
			source = models.NewPackageSource(p.Source.URL, p.Source.Type, p.Source.Reference)
		}
		pkg := models.NewPackage(p.Name, p.Version, p.SourceReference, source)
		pkg.SetType(p.Type)
		packages = append(packages, pkg)
	}

	tags := make([]*models.Tag, 0, len(r.Tags))
	for _, t := range r.Tags {
		tags = append(tags, models.NewTag(t.ID, t.Name))
	}

	return models.NewReport().
		SetApplicationID(id).
		SetName(r.Name).
		SetStatus(status).
		SetPackages(packages).
		SetRepositories(r.Repositories).
		SetTags(tags), nil
}
