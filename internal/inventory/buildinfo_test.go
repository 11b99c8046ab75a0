// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package inventory

import (
	"context"
	"runtime/debug"
	"testing"

	"github.com/MKhiriev/go-reporter-api/internal/serializer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInfo_Packages(t *testing.T) {
	b := &BuildInfo{read: func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{
			Main: debug.Module{Path: "github.com/MKhiriev/go-reporter-api"},
			Deps: []*debug.Module{
				{Path: "github.com/rs/zerolog", Version: "v1.34.0", Sum: "h1:zerolog"},
				{
					Path:    "github.com/go-chi/chi/v5",
					Version: "v5.2.5",
					Sum:     "h1:chi",
					Replace: &debug.Module{Path: "../chi", Version: "", Sum: ""},
				},
			},
		}, true
	}}

	packages, err := b.Packages(context.Background())
	require.NoError(t, err)
	require.Len(t, packages, 2)

	zerolog := packages[0]
	assert.Equal(t, "github.com/rs/zerolog", zerolog.Name())
	assert.Equal(t, "v1.34.0", zerolog.Version())
	assert.Equal(t, PackageTypeGoModule, zerolog.Type())
	assert.Equal(t, "h1:zerolog", zerolog.SourceReference())
	assert.Equal(t, "https://github.com/rs/zerolog", zerolog.Source().URL())

	chi := packages[1]
	assert.Equal(t, "h1:chi", chi.SourceReference(), "empty replacement sum keeps the original")
	assert.Equal(t, "../chi", chi.Source().URL())
	assert.Equal(t, "replace", chi.Source().Type())

	projected, err := serializer.Project(zerolog)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"name":            "github.com/rs/zerolog",
		"version":         "v1.34.0",
		"type":            PackageTypeGoModule,
		"sourceReference": "h1:zerolog",
		"source": map[string]any{
			"url":       "https://github.com/rs/zerolog",
			"type":      PackageTypeGoModule,
			"reference": "v1.34.0",
		},
	}, projected.Map())
}

func TestBuildInfo_Unavailable(t *testing.T) {
	b := &BuildInfo{read: func() (*debug.BuildInfo, bool) { return nil, false }}

	packages, err := b.Packages(context.Background())
	assert.Nil(t, packages)
	assert.ErrorIs(t, err, ErrBuildInfoUnavailable)
}

func TestNewBuildInfo_ReadsRunningBinary(t *testing.T) {
	_, err := NewBuildInfo().Packages(context.Background())
	assert.NoError(t, err)
}
