// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package serializer

import "reflect"

// Accessor reads a single field value from an entity. The entity passed in is
// always of the type the owning [Descriptor] was built for.
type Accessor func(entity any) any

// Field is one declared serializable field of an entity type.
type Field struct {
	// Name is the declared field name and the default output key.
	Name string

	// Accessor reads the field value. A nil Accessor means the field was
	// declared but never wired; such fields are skipped during projection.
	Accessor Accessor

	// Rule is the default remapping rule for the field. A per-call
	// [Remapping] entry for the same field replaces it.
	Rule Rule
}

// Descriptor is the immutable projection metadata of one entity type: its
// declared serializable fields in emission order.
type Descriptor struct {
	typ    reflect.Type
	fields []Field
}

// Type returns the entity type the descriptor belongs to.
func (d *Descriptor) Type() reflect.Type {
	return d.typ
}

// Names returns the declared field names in declaration order.
func (d *Descriptor) Names() []string {
	names := make([]string, 0, len(d.fields))
	for _, f := range d.fields {
		names = append(names, f.Name)
	}
	return names
}

// Fields returns a copy of the declared fields.
func (d *Descriptor) Fields() []Field {
	return append([]Field(nil), d.fields...)
}

// DescriptorBuilder collects accessors and default rules for the entity type
// T before freezing them into a [Descriptor].
type DescriptorBuilder[T any] struct {
	names     []string
	accessors map[string]Accessor
	rules     map[string]Rule
}

// Describe starts a descriptor for T. names is the ordered list of
// serializable field names and is the only source of truth for what gets
// emitted: accessors registered for other names are ignored.
func Describe[T any](names ...string) *DescriptorBuilder[T] {
	seen := make(map[string]struct{}, len(names))
	unique := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		unique = append(unique, name)
	}

	return &DescriptorBuilder[T]{
		names:     unique,
		accessors: make(map[string]Accessor, len(unique)),
		rules:     make(map[string]Rule),
	}
}

// Get wires the accessor for the declared field name.
func (b *DescriptorBuilder[T]) Get(name string, fn func(T) any) *DescriptorBuilder[T] {
	b.accessors[name] = func(entity any) any {
		return fn(entity.(T))
	}
	return b
}

// Default sets the default remapping rule for the declared field name.
func (b *DescriptorBuilder[T]) Default(name string, rule Rule) *DescriptorBuilder[T] {
	b.rules[name] = rule
	return b
}

// Build freezes the builder into a [Descriptor].
func (b *DescriptorBuilder[T]) Build() *Descriptor {
	fields := make([]Field, 0, len(b.names))
	for _, name := range b.names {
		fields = append(fields, Field{
			Name:     name,
			Accessor: b.accessors[name],
			Rule:     b.rules[name],
		})
	}

	return &Descriptor{
		typ:    reflect.TypeOf((*T)(nil)).Elem(),
		fields: fields,
	}
}
