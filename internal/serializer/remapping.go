// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package serializer

import "reflect"

// Rule changes how a single field is projected.
type Rule struct {
	// MapTo replaces the output key when non-empty. A renamed field is
	// always emitted, even when Exclude is also set.
	MapTo string

	// Exclude drops the field from the output.
	Exclude bool

	// MaxDepth, when set, replaces the depth budget handed to the field's
	// value. It bounds the whole subtree rooted at the field: overrides met
	// inside that subtree can lower the budget but never raise it.
	MaxDepth *int
}

// MapTo returns a rule renaming the field to key.
func MapTo(key string) Rule {
	return Rule{MapTo: key}
}

// Exclude returns a rule dropping the field.
func Exclude() Rule {
	return Rule{Exclude: true}
}

// MaxDepth returns a rule limiting the field's subtree to depth levels.
func MaxDepth(depth int) Rule {
	return Rule{MaxDepth: &depth}
}

// With returns r overlaid with the non-zero parts of other.
func (r Rule) With(other Rule) Rule {
	if other.MapTo != "" {
		r.MapTo = other.MapTo
	}
	if other.Exclude {
		r.Exclude = true
	}
	if other.MaxDepth != nil {
		depth := *other.MaxDepth
		r.MaxDepth = &depth
	}
	return r
}

// Remapping holds per-call field rules keyed by entity type and then by
// declared field name. It is read-only while a projection runs.
type Remapping map[reflect.Type]map[string]Rule

// Remap adds rule for the declared field of entity type T to m and returns m.
// A nil m is allocated. Rules added twice for the same field are merged with
// [Rule.With].
func Remap[T any](m Remapping, field string, rule Rule) Remapping {
	if m == nil {
		m = make(Remapping)
	}

	t := reflect.TypeOf((*T)(nil)).Elem()
	rules, ok := m[t]
	if !ok {
		rules = make(map[string]Rule)
		m[t] = rules
	}
	rules[field] = rules[field].With(rule)

	return m
}

func (m Remapping) lookup(t reflect.Type, field string) (Rule, bool) {
	if m == nil {
		return Rule{}, false
	}
	rule, ok := m[t][field]
	return rule, ok
}
