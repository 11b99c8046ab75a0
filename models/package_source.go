// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Source describes where an installed package was obtained from.
type Source interface {
	URL() string
	Type() string
	Reference() string
}

// PackageSource is a concrete package origin, e.g. a git repository at a
// given commit.
type PackageSource struct {
	url       string
	typ       string
	reference string
}

// NewPackageSource constructs a [PackageSource].
func NewPackageSource(url, typ, reference string) *PackageSource {
	return &PackageSource{
		url:       url,
		typ:       typ,
		reference: reference,
	}
}

func (s *PackageSource) URL() string { return s.url }

func (s *PackageSource) SetURL(url string) { s.url = url }

func (s *PackageSource) Type() string { return s.typ }

func (s *PackageSource) SetType(typ string) { s.typ = typ }

func (s *PackageSource) Reference() string { return s.reference }

func (s *PackageSource) SetReference(reference string) { s.reference = reference }

// NullPackageSource stands in for an unknown package origin. All accessors
// return empty strings and it declares no serializable fields, so it is
// emitted as an empty object.
type NullPackageSource struct{}

func (NullPackageSource) URL() string { return "" }

func (NullPackageSource) Type() string { return "" }

func (NullPackageSource) Reference() string { return "" }
