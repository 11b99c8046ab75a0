// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-reporter-api/internal/logger"
	"github.com/MKhiriev/go-reporter-api/models"
)

const (
	maxQueryAttempts = 3
	retryBackoff     = 100 * time.Millisecond
)

// PackageRepository lists the packages of one bundle from the packages
// table.
type PackageRepository struct {
	db     *DB
	bundle string
	logger *logger.Logger
}

// NewPackageRepository returns a repository reading the rows of bundle.
func NewPackageRepository(db *DB, bundle string, logger *logger.Logger) *PackageRepository {
	return &PackageRepository{
		db:     db,
		bundle: bundle,
		logger: logger,
	}
}

// Packages returns the bundle's packages ordered by name. Transient errors
// are retried; a missing table yields [ErrInventoryNotMigrated].
func (r *PackageRepository) Packages(ctx context.Context) ([]*models.Package, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPackagesQuery(r.db.Builder(), r.bundle)
	if err != nil {
		log.Err(err).Str("func", "*PackageRepository.Packages").Msg("error building query")
		return nil, err
	}

	for attempt := 1; ; attempt++ {
		packages, err := r.queryPackages(ctx, query, args)
		if err == nil {
			return packages, nil
		}

		if isMissingTable(err) {
			return nil, fmt.Errorf("%w: %w", ErrInventoryNotMigrated, err)
		}

		if attempt >= maxQueryAttempts || r.db.errorClassificator.Classify(err) != Retryable {
			log.Err(err).
				Str("func", "*PackageRepository.Packages").
				Str("bundle", r.bundle).
				Int("attempt", attempt).
				Msg("failed to query packages")
			return nil, err
		}

		log.Warn().Err(err).Int("attempt", attempt).Msg("retrying packages query")
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(attempt) * retryBackoff):
		}
	}
}

func (r *PackageRepository) queryPackages(ctx context.Context, query string, args []any) ([]*models.Package, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	packages := make([]*models.Package, 0)
	for rows.Next() {
		var (
			name, version, typ, reference        string
			sourceURL, sourceType, sourceVersion sql.NullString
		)
		if err = rows.Scan(&name, &version, &typ, &reference, &sourceURL, &sourceType, &sourceVersion); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		var source models.Source
		if sourceURL.Valid {
			source = models.NewPackageSource(sourceURL.String, sourceType.String, sourceVersion.String)
		}

		p := models.NewPackage(name, version, reference, source)
		p.SetType(typ)
		packages = append(packages, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return packages, nil
}
