// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package inventory lists installed packages from files and from the running
// binary. The SQL-backed inventory lives in package store.
package inventory
