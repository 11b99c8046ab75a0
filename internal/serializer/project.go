// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package serializer

import (
	"fmt"
	"reflect"
)

// DefaultMaxDepth is the depth budget used by [Project] unless overridden.
const DefaultMaxDepth = 100

// Projector is implemented by values that know their own plain
// representation. The engine uses it instead of walking the value.
type Projector interface {
	Project() any
}

type options struct {
	maxDepth  int
	remapping Remapping
	registry  *Registry
}

// Option configures a [Project] call.
type Option func(*options)

// WithMaxDepth sets the depth budget. A budget below 1 yields an empty
// structure.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}

// WithRemapping applies per-call field rules.
func WithRemapping(m Remapping) Option {
	return func(o *options) {
		o.remapping = m
	}
}

// WithRegistry resolves descriptors from r instead of the default registry.
func WithRegistry(r *Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// Project converts entity into a [Structure] using the default registry and
// a depth budget of [DefaultMaxDepth].
func Project(entity any, opts ...Option) (*Structure, error) {
	o := options{
		maxDepth: DefaultMaxDepth,
		registry: defaultRegistry,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o.registry.Project(entity, o.maxDepth, o.remapping)
}

// Project converts entity into a [Structure] with an explicit depth budget
// and remapping. It fails only when entity's type has no descriptor.
func (r *Registry) Project(entity any, maxDepth int, remapping Remapping) (*Structure, error) {
	if entity == nil {
		return nil, fmt.Errorf("%w: <nil>", ErrNotSerializable)
	}

	d, ok := r.Lookup(reflect.TypeOf(entity))
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotSerializable, entity)
	}

	return r.project(d, entity, maxDepth, false, remapping), nil
}

// project emits the declared fields of entity. bounded is set below a field
// whose rule carries MaxDepth; nested overrides there may only shrink the
// budget.
func (r *Registry) project(d *Descriptor, entity any, depth int, bounded bool, m Remapping) *Structure {
	result := NewStructure()
	if depth < 1 || isNilPointer(reflect.ValueOf(entity)) {
		return result
	}
	depth--

	for _, f := range d.fields {
		if f.Accessor == nil {
			continue
		}

		rule := f.Rule
		if override, ok := m.lookup(d.typ, f.Name); ok {
			rule = override
		}

		key := f.Name
		switch {
		case rule.MapTo != "":
			key = rule.MapTo
		case rule.Exclude:
			continue
		}

		fieldDepth, fieldBounded := depth, bounded
		if rule.MaxDepth != nil {
			fieldDepth = *rule.MaxDepth
			if bounded {
				fieldDepth = min(fieldDepth, depth)
			}
			fieldBounded = true
		}

		result.Set(key, r.convert(f.Accessor(entity), fieldDepth, fieldBounded, m))
	}

	return result
}

// convert applies the value conversion rule: self-projecting values first,
// then collections, then registered entities; anything else passes through.
func (r *Registry) convert(value any, depth int, bounded bool, m Remapping) any {
	if value == nil {
		return nil
	}

	rv := reflect.ValueOf(value)
	if isNilPointer(rv) {
		if _, ok := r.Lookup(rv.Type()); ok {
			return NewStructure()
		}
		return nil
	}

	if p, ok := value.(Projector); ok {
		return p.Project()
	}

	switch rv.Kind() {
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return value
		}
		return r.convertList(rv, depth, bounded, m)
	case reflect.Array:
		return r.convertList(rv, depth, bounded, m)
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[mapKey(iter.Key())] = r.convert(iter.Value().Interface(), depth-1, bounded, m)
		}
		return out
	}

	if d, ok := r.Lookup(rv.Type()); ok {
		return r.project(d, value, depth, bounded, m)
	}

	return value
}

func (r *Registry) convertList(rv reflect.Value, depth int, bounded bool, m Remapping) []any {
	out := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out[i] = r.convert(rv.Index(i).Interface(), depth-1, bounded, m)
	}
	return out
}

func mapKey(k reflect.Value) string {
	if k.Kind() == reflect.String {
		return k.String()
	}
	return fmt.Sprint(k.Interface())
}

func isNilPointer(v reflect.Value) bool {
	return v.Kind() == reflect.Pointer && v.IsNil()
}
