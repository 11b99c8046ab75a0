// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package serializer

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Structure is the projection of one entity: string keys mapped to plain
// values, kept in insertion order. It encodes to a JSON object whose keys
// appear in that order.
type Structure struct {
	keys   []string
	values map[string]any
}

// NewStructure returns an empty [Structure].
func NewStructure() *Structure {
	return &Structure{
		values: make(map[string]any),
	}
}

// Set stores value under key. Setting an existing key replaces its value and
// keeps its original position.
func (s *Structure) Set(key string, value any) {
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// Get returns the value stored under key.
func (s *Structure) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (s *Structure) Keys() []string {
	return append([]string(nil), s.keys...)
}

// Len returns the number of keys.
func (s *Structure) Len() int {
	return len(s.keys)
}

// Map converts s into nested plain maps and slices, dropping key order.
func (s *Structure) Map() map[string]any {
	out := make(map[string]any, len(s.keys))
	for _, k := range s.keys {
		out[k] = plain(s.values[k])
	}
	return out
}

func plain(v any) any {
	switch value := v.(type) {
	case *Structure:
		if value == nil {
			return nil
		}
		return value.Map()
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = plain(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(value))
		for k, item := range value {
			out[k] = plain(item)
		}
		return out
	default:
		return v
	}
}

// MarshalJSON implements [json.Marshaler].
func (s *Structure) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range s.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		value, err := json.Marshal(s.values[k])
		if err != nil {
			return nil, fmt.Errorf("encoding field %q: %w", k, err)
		}
		buf.Write(value)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}
