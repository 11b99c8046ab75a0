// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the reporter client application: it fetches
// the application report from a running reporter and prints it.
package client
