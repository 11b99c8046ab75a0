// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Inventory sources understood by the server.
const (
	InventorySourceBuildInfo = "buildinfo"
	InventorySourceManifest  = "manifest"
	InventorySourceDB        = "db"
)

// Database drivers understood by the SQL inventory.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// StructuredConfig is the top-level configuration container of the
// reporter. It is populated by merging values from environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App describes the reported application bundle.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds the database settings used by the SQL inventory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Inventory selects where installed packages are read from.
	Inventory Inventory `envPrefix:"INVENTORY_"`

	// Adapter holds the settings of the remote report client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds the description of the reported application.
type App struct {
	// Name is the unique bundle name.
	// Env: APP_NAME
	Name string `env:"NAME"`

	// ApplicationID is the numeric id assigned by the reporting backend.
	// Env: APP_APPLICATION_ID
	ApplicationID int `env:"APPLICATION_ID"`

	// Status is the application status tag (UNKNOWN, OK, WARNING, ERROR).
	// Env: APP_STATUS
	Status string `env:"STATUS"`

	// Repositories are package repository URLs.
	// Env: APP_REPOSITORIES (comma separated)
	Repositories []string `env:"REPOSITORIES"`

	// Tags are labels written as "id:name".
	// Env: APP_TAGS (comma separated)
	Tags []string `env:"TAGS"`

	// Version is the version string of the running reporter, exposed via
	// /api/version/.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on,
	// in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the storage backend settings.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// Driver is the database/sql driver name: "pgx" or "sqlite3".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Inventory selects the package inventory provider.
type Inventory struct {
	// Source is one of "buildinfo", "manifest" or "db".
	// Env: INVENTORY_SOURCE
	Source string `env:"SOURCE"`

	// ManifestPath is the YAML manifest read by the "manifest" source.
	// Env: INVENTORY_MANIFEST_PATH
	ManifestPath string `env:"MANIFEST_PATH"`
}

// Adapter holds settings of the outbound report client.
type Adapter struct {
	// HTTPAddress is the base URL of a running reporter.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// defaults fills whatever no other source set.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: "info",
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverPostgres,
			},
		},
		Inventory: Inventory{
			Source: InventorySourceBuildInfo,
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the server configuration.
// For every field the first source that sets it wins, in this order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
