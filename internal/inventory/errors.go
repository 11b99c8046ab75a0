// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package inventory

import "errors"

var (
	// ErrBuildInfoUnavailable is returned when the binary carries no module
	// build information, e.g. when built without module support.
	ErrBuildInfoUnavailable = errors.New("build info is not available")

	// ErrReadingManifest is returned when the manifest file cannot be read.
	ErrReadingManifest = errors.New("error reading package manifest")

	// ErrInvalidManifest is returned for manifests that do not parse or
	// list packages without a name.
	ErrInvalidManifest = errors.New("invalid package manifest")
)
