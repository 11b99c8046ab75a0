// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// ApplicationStatus is the coarse health tag reported for an application.
// The zero value is [StatusUnknown].
type ApplicationStatus int

const (
	StatusUnknown ApplicationStatus = iota
	StatusOK
	StatusWarning
	StatusError
)

var applicationStatusNames = map[ApplicationStatus]string{
	StatusUnknown: "UNKNOWN",
	StatusOK:      "OK",
	StatusWarning: "WARNING",
	StatusError:   "ERROR",
}

// String returns the wire tag of the status, e.g. "UNKNOWN".
func (s ApplicationStatus) String() string {
	if name, ok := applicationStatusNames[s]; ok {
		return name
	}
	return applicationStatusNames[StatusUnknown]
}

// Project implements serializer.Projector: a status is emitted as its tag.
func (s ApplicationStatus) Project() any {
	return s.String()
}

// ParseApplicationStatus maps a case-insensitive tag to its status. An empty
// string yields [StatusUnknown].
func ParseApplicationStatus(tag string) (ApplicationStatus, error) {
	tag = strings.ToUpper(strings.TrimSpace(tag))
	if tag == "" {
		return StatusUnknown, nil
	}
	for status, name := range applicationStatusNames {
		if name == tag {
			return status, nil
		}
	}
	return StatusUnknown, fmt.Errorf("%w: %q", ErrUnknownApplicationStatus, tag)
}
