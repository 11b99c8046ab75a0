// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-reporter-api/internal/logger"
)

// Storages groups the repositories backed by one database.
type Storages struct {
	PackageRepository *PackageRepository
}

// NewStorages builds all repositories over db.
func NewStorages(db *DB, bundle string, logger *logger.Logger) *Storages {
	return &Storages{
		PackageRepository: NewPackageRepository(db, bundle, logger),
	}
}
