// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-reporter-api/internal/config"
	"github.com/MKhiriev/go-reporter-api/internal/endpoint"
	"github.com/MKhiriev/go-reporter-api/internal/inventory"
	"github.com/MKhiriev/go-reporter-api/internal/logger"
	"github.com/MKhiriev/go-reporter-api/internal/store"
)

// NewPackageInventory opens the inventory selected by cfg.Inventory.Source.
// The returned closer releases the database of the "db" source and is nil
// for the others.
func NewPackageInventory(ctx context.Context, cfg *config.StructuredConfig, logger *logger.Logger) (endpoint.PackageInventory, io.Closer, error) {
	switch cfg.Inventory.Source {
	case config.InventorySourceBuildInfo:
		return inventory.NewBuildInfo(), nil, nil

	case config.InventorySourceManifest:
		return inventory.NewManifest(cfg.Inventory.ManifestPath), nil, nil

	case config.InventorySourceDB:
		db, err := store.NewConnect(ctx, cfg.Storage.DB, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrOpeningInventory, err)
		}

		if err = db.Migrate(); err != nil {
			logger.Err(err).Str("func", "NewPackageInventory").Str("driver", db.Driver()).Msg("error migrating inventory database")
			_ = db.Close()
			return nil, nil, fmt.Errorf("%w: %w", ErrOpeningInventory, err)
		}

		storages := store.NewStorages(db, cfg.App.Name, logger)
		return storages.PackageRepository, db, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownInventorySource, cfg.Inventory.Source)
	}
}
