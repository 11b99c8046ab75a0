// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package serializer

import (
	"fmt"
	"reflect"
	"sync"
)

// Registry is a descriptor table keyed by entity type. Registration normally
// happens once at package init; lookups are safe for concurrent use.
type Registry struct {
	mu          sync.RWMutex
	descriptors map[reflect.Type]*Descriptor
}

// NewRegistry returns an empty [Registry].
func NewRegistry() *Registry {
	return &Registry{
		descriptors: make(map[reflect.Type]*Descriptor),
	}
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used by [Project] and
// [MustRegister].
func Default() *Registry {
	return defaultRegistry
}

// Register adds d to the registry. Registering the same type twice returns
// [ErrDuplicateDescriptor].
func (r *Registry) Register(d *Descriptor) error {
	if d == nil || d.typ == nil {
		return ErrInvalidDescriptor
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.descriptors[d.typ]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateDescriptor, d.typ)
	}
	r.descriptors[d.typ] = d

	return nil
}

// MustRegister is like [Registry.Register] but panics on error. It is meant
// for package init blocks.
func (r *Registry) MustRegister(d *Descriptor) {
	if err := r.Register(d); err != nil {
		panic(err)
	}
}

// Lookup returns the descriptor registered for t.
func (r *Registry) Lookup(t reflect.Type) (*Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.descriptors[t]
	return d, ok
}

// Len returns the number of registered descriptors.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.descriptors)
}

// MustRegister registers d on the default registry.
func MustRegister(d *Descriptor) {
	defaultRegistry.MustRegister(d)
}
