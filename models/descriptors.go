// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"

	"github.com/MKhiriev/go-reporter-api/internal/serializer"
)

// Serializable field names per entity, in emission order.
var (
	reportFields        = []string{"applicationId", "name", "status", "packages", "repositories", "tags"}
	packageFields       = []string{"name", "version", "type", "sourceReference", "source"}
	packageSourceFields = []string{"url", "type", "reference"}
	tagFields           = []string{"id", "name"}
	categoryFields      = []string{"id", "name"}
	componentFields     = []string{"id", "name"}
)

func init() {
	serializer.MustRegister(serializer.Describe[*Report](reportFields...).
		// applicationId is emitted string-encoded.
		Get("applicationId", func(r *Report) any { return strconv.Itoa(r.ApplicationID()) }).
		Get("name", func(r *Report) any { return r.Name() }).
		Get("status", func(r *Report) any { return r.Status() }).
		Get("packages", func(r *Report) any { return r.Packages() }).
		Get("repositories", func(r *Report) any { return r.Repositories() }).
		Get("tags", func(r *Report) any { return r.Tags() }).
		Build())

	serializer.MustRegister(serializer.Describe[*Package](packageFields...).
		Get("name", func(p *Package) any { return p.Name() }).
		Get("version", func(p *Package) any { return p.Version() }).
		Get("type", func(p *Package) any { return p.Type() }).
		Get("sourceReference", func(p *Package) any { return p.SourceReference() }).
		Get("source", func(p *Package) any { return p.Source() }).
		Build())

	serializer.MustRegister(serializer.Describe[*PackageSource](packageSourceFields...).
		Get("url", func(s *PackageSource) any { return s.URL() }).
		Get("type", func(s *PackageSource) any { return s.Type() }).
		Get("reference", func(s *PackageSource) any { return s.Reference() }).
		Build())

	serializer.MustRegister(serializer.Describe[NullPackageSource]().Build())

	serializer.MustRegister(serializer.Describe[*Tag](tagFields...).
		Get("id", func(t *Tag) any { return t.ID() }).
		Get("name", func(t *Tag) any { return t.Name() }).
		Build())

	serializer.MustRegister(serializer.Describe[*Category](categoryFields...).
		Get("id", func(c *Category) any { return c.ID() }).
		Get("name", func(c *Category) any { return c.Name() }).
		Build())

	serializer.MustRegister(serializer.Describe[*Component](componentFields...).
		Get("id", func(c *Component) any { return c.ID() }).
		Get("name", func(c *Component) any { return c.Name() }).
		Build())

	serializer.MustRegister(serializer.Describe[*AppBuildInfo](buildInfoFields...).
		Get("version", func(a *AppBuildInfo) any { return a.BuildVersion() }).
		Get("date", func(a *AppBuildInfo) any { return a.BuildDate() }).
		Get("commit", func(a *AppBuildInfo) any { return a.BuildCommit() }).
		Build())
}
