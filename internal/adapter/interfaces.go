// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the reporter HTTP API.
//
// [ReportClient] decouples the client binary from the transport. Error
// values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is].
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/report_client_mock.go -package=mock

// ReportClient fetches data from a running reporter.
type ReportClient interface {
	// Report fetches the application report.
	Report(ctx context.Context) (*ReportDTO, error)

	// Version fetches the build metadata of the reporter.
	Version(ctx context.Context) (*VersionDTO, error)
}
