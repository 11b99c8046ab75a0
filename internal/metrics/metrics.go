// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors of the reporter service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Resolution outcomes recorded by the reporter middleware.
const (
	OutcomeHandled   = "handled"
	OutcomeDelegated = "delegated"
	OutcomeFailed    = "failed"
)

// Metrics holds all Prometheus collectors.
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPResponseSize    *prometheus.HistogramVec

	// Endpoint resolution metrics
	EndpointResolutionsTotal *prometheus.CounterVec

	// Inventory metrics
	InventoryReadsTotal *prometheus.CounterVec
	InventoryPackages   *prometheus.GaugeVec

	registry *prometheus.Registry
}

// New creates all collectors and registers them on registry.
func New(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reporter_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "reporter_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		HTTPResponseSize: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "reporter_http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: prometheus.ExponentialBuckets(100, 10, 8),
			},
			[]string{"method", "route"},
		),

		EndpointResolutionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reporter_endpoint_resolutions_total",
				Help: "Total number of requests seen by the reporter middleware, by outcome",
			},
			[]string{"outcome"},
		),

		InventoryReadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reporter_inventory_reads_total",
				Help: "Total number of package inventory reads",
			},
			[]string{"source", "status"},
		),
		InventoryPackages: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "reporter_inventory_packages",
				Help: "Number of packages returned by the last successful inventory read",
			},
			[]string{"source"},
		),

		registry: registry,
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HTTPResponseSize,
		m.EndpointResolutionsTotal,
		m.InventoryReadsTotal,
		m.InventoryPackages,
	)

	return m
}

// ObserveResolution counts one reporter middleware decision.
func (m *Metrics) ObserveResolution(outcome string) {
	m.EndpointResolutionsTotal.WithLabelValues(outcome).Inc()
}

// ObserveInventoryRead records the result of one inventory read.
func (m *Metrics) ObserveInventoryRead(source string, packages int, err error) {
	if err != nil {
		m.InventoryReadsTotal.WithLabelValues(source, "error").Inc()
		return
	}
	m.InventoryReadsTotal.WithLabelValues(source, "ok").Inc()
	m.InventoryPackages.WithLabelValues(source).Set(float64(packages))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
