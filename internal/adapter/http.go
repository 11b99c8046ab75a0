// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-reporter-api/internal/api"
	"github.com/MKhiriev/go-reporter-api/internal/config"
	"github.com/MKhiriev/go-reporter-api/internal/logger"
	"github.com/MKhiriev/go-reporter-api/internal/utils"
)

const (
	versionRoute  = "/api/version/"
	traceIDHeader = "X-Trace-ID"
	clientRetries = 2
)

type httpReportClient struct {
	client   *utils.HTTPClient
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPReportClient constructs an HTTP implementation of [ReportClient].
// The base URL is taken from adapterCfg.HTTPAddress; a missing scheme
// defaults to http.
func NewHTTPReportClient(adapterCfg config.ClientAdapter, logger *logger.Logger) (ReportClient, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpReportClient{
		client:   utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout, clientRetries),
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Report implements [ReportClient] with GET on the report route.
func (h *httpReportClient) Report(ctx context.Context) (*ReportDTO, error) {
	var report ReportDTO
	if err := h.get(ctx, api.DefaultRoute, &report); err != nil {
		return nil, fmt.Errorf("report request: %w", err)
	}
	return &report, nil
}

// Version implements [ReportClient] with GET /api/version/.
func (h *httpReportClient) Version(ctx context.Context) (*VersionDTO, error) {
	var version VersionDTO
	if err := h.get(ctx, versionRoute, &version); err != nil {
		return nil, fmt.Errorf("version request: %w", err)
	}
	return &version, nil
}

func (h *httpReportClient) get(ctx context.Context, path string, result any) error {
	traceID := h.traceIDs.Generate()

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader(traceIDHeader, traceID).
		SetResult(result).
		Get(path)
	if err != nil {
		h.logger.Err(err).Str("func", "*httpReportClient.get").Str("trace_id", traceID).Str("path", path).Msg("request failed")
		return err
	}

	if err = mapHTTPError(resp); err != nil {
		h.logger.Err(err).Str("func", "*httpReportClient.get").Str("trace_id", traceID).Int("status", resp.StatusCode()).Msg("reporter answered with error")
		return err
	}

	h.logger.Debug().Str("trace_id", traceID).Str("path", path).Dur("duration", resp.Time()).Msg("request done")
	return nil
}
