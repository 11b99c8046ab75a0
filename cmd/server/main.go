// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-reporter-api/internal/config"
	"github.com/MKhiriev/go-reporter-api/internal/handler"
	"github.com/MKhiriev/go-reporter-api/internal/logger"
	"github.com/MKhiriev/go-reporter-api/internal/metrics"
	"github.com/MKhiriev/go-reporter-api/internal/server"
	"github.com/MKhiriev/go-reporter-api/internal/service"
	"github.com/MKhiriev/go-reporter-api/models"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("reporter-server", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("reporter-server", cfg.App.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	m := metrics.New(prometheus.NewRegistry())
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	services, err := service.NewServices(context.Background(), cfg, build, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}
	defer func() {
		if err := services.Close(); err != nil {
			log.Err(err).Msg("error closing services")
		}
	}()

	handlers, err := handler.NewHandlers(services, m, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
