// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package router

import (
	"reflect"

	"github.com/MKhiriev/go-reporter-api/internal/endpoint"
)

var endpointType = reflect.TypeOf((*endpoint.Endpoint)(nil)).Elem()

// Class is the identity of an endpoint implementation: its Go type and a
// factory producing a new instance. Two classes with the same type share one
// cached instance.
type Class struct {
	name  string
	typ   reflect.Type
	newFn func() any
}

// NewClass declares a class for the implementation type T. T is not
// constrained to [endpoint.Endpoint] on purpose: the router checks the
// capability itself and refuses classes that lack it.
func NewClass[T any](name string, newFn func() T) Class {
	return Class{
		name: name,
		typ:  reflect.TypeOf((*T)(nil)).Elem(),
		newFn: func() any {
			return newFn()
		},
	}
}

// Name returns the human-readable class name.
func (c Class) Name() string {
	return c.name
}

// Type returns the implementation type.
func (c Class) Type() reflect.Type {
	return c.typ
}

// Implements reports whether the class implements [endpoint.Endpoint].
func (c Class) Implements() bool {
	return c.typ != nil && c.newFn != nil && c.typ.Implements(endpointType)
}

func (c Class) String() string {
	if c.typ == nil {
		return c.name
	}
	return c.name + " (" + c.typ.String() + ")"
}
