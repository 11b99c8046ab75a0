// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package api is the entry point of the reporter: an HTTP middleware that
// answers requests bound to a reporter endpoint and passes every other
// request to the next handler untouched.
package api
