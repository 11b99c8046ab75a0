// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Package is one installed dependency of the reported application.
type Package struct {
	name            string
	version         string
	typ             string
	sourceReference string
	source          Source
}

// NewPackage constructs a [Package]. A nil source is replaced by
// [NullPackageSource].
func NewPackage(name, version, sourceReference string, source Source) *Package {
	if source == nil {
		source = NullPackageSource{}
	}

	return &Package{
		name:            name,
		version:         version,
		sourceReference: sourceReference,
		source:          source,
	}
}

func (p *Package) Name() string { return p.name }

func (p *Package) SetName(name string) { p.name = name }

func (p *Package) Version() string { return p.version }

func (p *Package) SetVersion(version string) { p.version = version }

func (p *Package) Type() string { return p.typ }

func (p *Package) SetType(typ string) { p.typ = typ }

func (p *Package) SourceReference() string { return p.sourceReference }

func (p *Package) SetSourceReference(reference string) { p.sourceReference = reference }

// Source returns the package origin; never nil for packages built with
// [NewPackage].
func (p *Package) Source() Source {
	if p.source == nil {
		return NullPackageSource{}
	}
	return p.source
}

// SetSource replaces the package origin. A nil source resets it to
// [NullPackageSource].
func (p *Package) SetSource(source Source) {
	if source == nil {
		source = NullPackageSource{}
	}
	p.source = source
}
