// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the reporter.
//
// Init builds the chi router. Every request passes request tracing, access
// logging and metrics before the reporter middleware decides whether a
// reporter endpoint answers it; everything else falls through to the
// version, health and metrics routes or to the JSON 404 handler.
package http
