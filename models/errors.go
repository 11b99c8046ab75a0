// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

var (
	// ErrUnknownApplicationStatus is returned by [ParseApplicationStatus] for
	// tags that do not name a known status.
	ErrUnknownApplicationStatus = errors.New("unknown application status")

	// ErrMalformedTag is returned by [ParseTag] for input not of the form
	// "id:name".
	ErrMalformedTag = errors.New(`malformed tag, want "id:name"`)
)
