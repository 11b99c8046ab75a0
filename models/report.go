// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Report is the application report served by the reporter API. Setters
// return the receiver so a report can be assembled in one expression.
type Report struct {
	applicationID int
	name          string
	status        ApplicationStatus
	packages      []*Package
	repositories  []string
	tags          []*Tag
}

// NewReport returns an empty report with status [StatusUnknown].
func NewReport() *Report {
	return &Report{
		status: StatusUnknown,
	}
}

func (r *Report) ApplicationID() int { return r.applicationID }

func (r *Report) SetApplicationID(id int) *Report {
	r.applicationID = id
	return r
}

func (r *Report) Name() string { return r.name }

func (r *Report) SetName(name string) *Report {
	r.name = name
	return r
}

func (r *Report) Status() ApplicationStatus { return r.status }

func (r *Report) SetStatus(status ApplicationStatus) *Report {
	r.status = status
	return r
}

// Packages returns the installed packages. It is never nil.
func (r *Report) Packages() []*Package {
	if r.packages == nil {
		return []*Package{}
	}
	return r.packages
}

func (r *Report) SetPackages(packages []*Package) *Report {
	r.packages = packages
	return r
}

// Repositories returns the package repositories the application pulls from.
// It is never nil.
func (r *Report) Repositories() []string {
	if r.repositories == nil {
		return []string{}
	}
	return r.repositories
}

func (r *Report) SetRepositories(repositories []string) *Report {
	r.repositories = repositories
	return r
}

// Tags returns the report labels. It is never nil.
func (r *Report) Tags() []*Tag {
	if r.tags == nil {
		return []*Tag{}
	}
	return r.tags
}

func (r *Report) SetTags(tags []*Tag) *Report {
	r.tags = tags
	return r
}
