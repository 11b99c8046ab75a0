// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package serializer

import "errors"

var (
	// ErrNotSerializable is returned by [Project] when the top-level value has
	// no registered [Descriptor].
	ErrNotSerializable = errors.New("value is not a serializable entity")

	// ErrDuplicateDescriptor is returned by [Registry.Register] when a
	// descriptor for the same type has already been registered.
	ErrDuplicateDescriptor = errors.New("descriptor already registered")

	// ErrInvalidDescriptor is returned by [Registry.Register] for a nil
	// descriptor or one without a type.
	ErrInvalidDescriptor = errors.New("invalid descriptor")
)
