// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-reporter-api/internal/adapter"
	"github.com/MKhiriev/go-reporter-api/internal/client"
	"github.com/MKhiriev/go-reporter-api/internal/config"
	"github.com/MKhiriev/go-reporter-api/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewConsoleLogger("reporter-client", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewConsoleLogger("reporter-client", cfg.LogLevel)

	reports, err := adapter.NewHTTPReportClient(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create report client")
	}

	app, err := client.NewApp(reports, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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

	fmt.Fprintf(os.Stderr, "Build version: %s\n", buildVersion)
	fmt.Fprintf(os.Stderr, "Build date: %s\n", buildDate)
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", buildCommit)
}
