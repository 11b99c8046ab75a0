// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package api

import (
	"net/http"

	"github.com/MKhiriev/go-reporter-api/internal/endpoint"
	"github.com/MKhiriev/go-reporter-api/internal/logger"
	"github.com/MKhiriev/go-reporter-api/internal/metrics"
	"github.com/MKhiriev/go-reporter-api/internal/router"
)

// DefaultRoute is the path of the application report.
const DefaultRoute = "/api/reporter/v1/application/report"

// API decides per request whether a reporter endpoint handles it.
type API struct {
	router      *router.Router
	reportClass router.Class

	errorStatus func(error) int

	metrics *metrics.Metrics
	logger  *logger.Logger
}

// Option configures an [API].
type Option func(*API)

// WithErrorStatus sets the function choosing the HTTP status for an endpoint
// error. By default every error is answered with 500.
func WithErrorStatus(fn func(error) int) Option {
	return func(a *API) {
		a.errorStatus = fn
	}
}

// New builds the route table, binding [DefaultRoute] to the report endpoint
// reading from inventory and describer.
func New(inventory endpoint.PackageInventory, describer endpoint.BundleDescriber, metrics *metrics.Metrics, logger *logger.Logger, opts ...Option) *API {
	reportClass := router.NewClass("report", func() *endpoint.Report {
		return endpoint.NewReport(inventory, describer)
	})

	r := router.New(map[string]router.Class{
		DefaultRoute: reportClass,
	}, logger)

	logger.Info().Strs("routes", r.Routes()).Msg("reporter api created")

	a := &API{
		router:      r,
		reportClass: reportClass,
		errorStatus: func(error) int { return http.StatusInternalServerError },
		metrics:     metrics,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Process is a middleware. Requests resolving to a reporter endpoint get the
// endpoint's response; all others reach next unchanged.
func (a *API) Process(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := endpoint.RequestFromHTTP(r)

		e := a.router.Resolve(req.Path)
		if endpoint.IsNull(e) {
			a.metrics.ObserveResolution(metrics.OutcomeDelegated)
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		resp, err := e.Handle(r.Context(), req)
		if err != nil {
			a.metrics.ObserveResolution(metrics.OutcomeFailed)
			log.Err(err).Str("func", "*API.Process").Str("path", req.Path).Msg("endpoint failed")
			writeError(w, a.errorStatus(err))
			return
		}

		a.metrics.ObserveResolution(metrics.OutcomeHandled)
		if _, err = resp.Send(w); err != nil {
			log.Err(err).Str("func", "*API.Process").Str("path", req.Path).Msg("error writing response")
		}
	})
}

// CanHandle reports whether r would be answered by a reporter endpoint.
func (a *API) CanHandle(r *http.Request) bool {
	return a.router.CanHandle(endpoint.RequestFromHTTP(r))
}

// ReportEndpoint returns the report endpoint instance served on
// [DefaultRoute].
func (a *API) ReportEndpoint() (endpoint.Endpoint, error) {
	return a.router.GetInstance(a.reportClass)
}

// Routes lists the paths served by the reporter.
func (a *API) Routes() []string {
	return a.router.Routes()
}

type errorBody struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int) {
	resp, err := endpoint.NewJSONResponse(errorBody{Error: http.StatusText(status)}, status, nil)
	if err != nil {
		http.Error(w, http.StatusText(status), status)
		return
	}
	_, _ = resp.Send(w)
}
