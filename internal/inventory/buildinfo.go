// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package inventory

import (
	"context"
	"runtime/debug"

	"github.com/MKhiriev/go-reporter-api/models"
)

// PackageTypeGoModule is the package type reported for Go module
// dependencies.
const PackageTypeGoModule = "go-module"

// BuildInfo lists the module dependencies compiled into the running binary.
type BuildInfo struct {
	read func() (*debug.BuildInfo, bool)
}

// NewBuildInfo returns an inventory over [debug.ReadBuildInfo].
func NewBuildInfo() *BuildInfo {
	return &BuildInfo{read: debug.ReadBuildInfo}
}

// Packages returns one package per dependency module, honoring replace
// directives. The module checksum is used as source reference.
func (b *BuildInfo) Packages(_ context.Context) ([]*models.Package, error) {
	info, ok := b.read()
	if !ok || info == nil {
		return nil, ErrBuildInfoUnavailable
	}

	packages := make([]*models.Package, 0, len(info.Deps))
	for _, dep := range info.Deps {
		packages = append(packages, modulePackage(dep))
	}

	return packages, nil
}

func modulePackage(m *debug.Module) *models.Package {
	name, version, sum := m.Path, m.Version, m.Sum

	var source models.Source
	if m.Replace != nil {
		source = models.NewPackageSource(m.Replace.Path, "replace", m.Replace.Version)
		if m.Replace.Sum != "" {
			sum = m.Replace.Sum
		}
	} else {
		source = models.NewPackageSource("https://"+m.Path, PackageTypeGoModule, version)
	}

	p := models.NewPackage(name, version, sum, source)
	p.SetType(PackageTypeGoModule)
	return p
}
