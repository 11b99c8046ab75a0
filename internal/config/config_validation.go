// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-reporter-api/models"
)

// validate checks that the merged [StructuredConfig] can start a server.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.App.validate(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	switch cfg.Inventory.Source {
	case InventorySourceBuildInfo:
	case InventorySourceManifest:
		if cfg.Inventory.ManifestPath == "" {
			return fmt.Errorf("%w: manifest source needs a manifest path", ErrInvalidInventoryConfigs)
		}
	case InventorySourceDB:
		if err := cfg.Storage.DB.validate(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: unknown source %q", ErrInvalidInventoryConfigs, cfg.Inventory.Source)
	}

	return nil
}

func (app App) validate() error {
	if _, err := models.ParseApplicationStatus(app.Status); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	for _, tag := range app.Tags {
		if _, err := models.ParseTag(tag); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
		}
	}

	return nil
}

func (db DB) validate() error {
	if db.Driver != DriverPostgres && db.Driver != DriverSQLite {
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, db.Driver)
	}

	if db.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
