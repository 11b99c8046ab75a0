// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Bundle describes the deployed application as a whole: who it is, how it is
// doing and where its packages come from. It is the non-package half of a
// [Report].
type Bundle struct {
	// ApplicationID is the numeric id of the application in the reporting
	// backend. Zero means not yet assigned.
	ApplicationID int

	// Name is the unique name of the application bundle.
	Name string

	// Status is the last known application status.
	Status ApplicationStatus

	// Repositories lists the package repository URLs the bundle installs from.
	Repositories []string

	// Tags are free-form labels attached to the bundle.
	Tags []*Tag
}
