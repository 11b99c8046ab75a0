// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package endpoint

import "errors"

var (
	// ErrNullEndpoint is returned when the null endpoint is asked to handle a
	// request. Routers never do this; reaching it is a programming error.
	ErrNullEndpoint = errors.New("null endpoint cannot handle requests")

	// ErrEncodingJSON is returned when a response body cannot be encoded as
	// JSON. There is no partial-body fallback.
	ErrEncodingJSON = errors.New("failed to encode data as JSON")

	// ErrReadingInventory wraps failures of the package inventory provider.
	ErrReadingInventory = errors.New("error reading package inventory")

	// ErrDescribingBundle wraps failures of the bundle describer.
	ErrDescribingBundle = errors.New("error describing application bundle")

	// ErrProjectingReport wraps serialization failures of the report entity.
	ErrProjectingReport = errors.New("error projecting report")
)
