// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package inventory

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-reporter-api/models"
	"gopkg.in/yaml.v3"
)

// YAMLManifest is the on-disk layout of a package manifest:
//
//	packages:
//	  - name: github.com/rs/zerolog
//	    version: v1.34.0
//	    type: go-module
//	    source_reference: h1:...
//	    source:
//	      url: https://github.com/rs/zerolog
//	      type: git
//	      reference: v1.34.0
type YAMLManifest struct {
	Packages []YAMLPackage `yaml:"packages"`
}

// YAMLPackage is one manifest entry.
type YAMLPackage struct {
	Name            string      `yaml:"name"`
	Version         string      `yaml:"version"`
	Type            string      `yaml:"type"`
	SourceReference string      `yaml:"source_reference"`
	Source          *YAMLSource `yaml:"source"`
}

// YAMLSource describes where a manifest package comes from.
type YAMLSource struct {
	URL       string `yaml:"url"`
	Type      string `yaml:"type"`
	Reference string `yaml:"reference"`
}

// Manifest lists packages declared in a YAML file. The file is read on
// every call so edits show up without a restart.
type Manifest struct {
	path string
}

// NewManifest returns an inventory over the manifest at path.
func NewManifest(path string) *Manifest {
	return &Manifest{path: path}
}

// Packages reads and maps the manifest.
func (m *Manifest) Packages(_ context.Context) ([]*models.Package, error) {
	b, err := os.ReadFile(m.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingManifest, err)
	}

	return ParseManifest(b)
}

// ParseManifest maps raw YAML manifest bytes to packages.
func ParseManifest(b []byte) ([]*models.Package, error) {
	var dto YAMLManifest
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}

	packages := make([]*models.Package, 0, len(dto.Packages))
	for i, entry := range dto.Packages {
		if entry.Name == "" {
			return nil, fmt.Errorf("%w: package #%d has no name", ErrInvalidManifest, i+1)
		}
		packages = append(packages, entry.toPackage())
	}

	return packages, nil
}

func (p YAMLPackage) toPackage() *models.Package {
	var source models.Source
	if p.Source != nil {
		source = models.NewPackageSource(p.Source.URL, p.Source.Type, p.Source.Reference)
	}

	pkg := models.NewPackage(p.Name, p.Version, p.SourceReference, source)
	pkg.SetType(p.Type)
	return pkg
}
