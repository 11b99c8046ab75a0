// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package serializer turns domain entities into plain, JSON-representable
// data trees.
//
// Entities do not rely on struct tags or field reflection. Each entity type
// registers a [Descriptor] once, listing the serializable field names in
// emission order together with an accessor for each of them:
//
//	serializer.MustRegister(serializer.Describe[*Tag]("id", "name").
//		Get("id", func(t *Tag) any { return t.ID() }).
//		Get("name", func(t *Tag) any { return t.Name() }).
//		Build())
//
// [Project] walks the entity graph depth-first, bounded by a maximum depth
// (100 by default). Callers can rename, exclude or depth-limit single fields
// per call with a [Remapping]:
//
//	m := serializer.Remap[*Tag](nil, "name", serializer.MapTo("label"))
//	s, err := serializer.Project(tag, serializer.WithRemapping(m))
//
// The engine keeps no state between calls and performs no cycle detection;
// entity graphs passed to it must be acyclic.
package serializer
