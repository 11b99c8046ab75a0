// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package inventory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-reporter-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleManifest = `
packages:
  - name: github.com/rs/zerolog
    version: v1.34.0
    type: go-module
    source_reference: h1:abc
    source:
      url: https://github.com/rs/zerolog
      type: git
      reference: v1.34.0
  - name: left-pad
    version: 1.3.0
    type: npm
`

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "packages.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestManifest_Packages(t *testing.T) {
	packages, err := NewManifest(writeManifest(t, sampleManifest)).Packages(context.Background())
	require.NoError(t, err)
	require.Len(t, packages, 2)

	assert.Equal(t, "github.com/rs/zerolog", packages[0].Name())
	assert.Equal(t, "go-module", packages[0].Type())
	assert.Equal(t, "h1:abc", packages[0].SourceReference())
	assert.Equal(t, "git", packages[0].Source().Type())

	assert.Equal(t, "left-pad", packages[1].Name())
	assert.Equal(t, "npm", packages[1].Type())
	assert.IsType(t, models.NullPackageSource{}, packages[1].Source())
}

func TestManifest_ReadsFileOnEveryCall(t *testing.T) {
	path := writeManifest(t, "packages: []\n")
	m := NewManifest(path)

	packages, err := m.Packages(context.Background())
	require.NoError(t, err)
	assert.Empty(t, packages)

	require.NoError(t, os.WriteFile(path, []byte(sampleManifest), 0o600))

	packages, err = m.Packages(context.Background())
	require.NoError(t, err)
	assert.Len(t, packages, 2)
}

func TestManifest_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr error
	}{
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "absent.yaml") },
			wantErr: ErrReadingManifest,
		},
		{
			name:    "not yaml",
			path:    func(t *testing.T) string { return writeManifest(t, "packages: [oops") },
			wantErr: ErrInvalidManifest,
		},
		{
			name:    "package without name",
			path:    func(t *testing.T) string { return writeManifest(t, "packages:\n  - version: 1.0.0\n") },
			wantErr: ErrInvalidManifest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			packages, err := NewManifest(tt.path(t)).Packages(context.Background())
			assert.Nil(t, packages)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseManifest_Empty(t *testing.T) {
	packages, err := ParseManifest(nil)
	require.NoError(t, err)
	assert.Empty(t, packages)
}
