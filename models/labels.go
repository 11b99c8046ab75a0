// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Tag is a free-form label attached to a report.
type Tag struct {
	id   int
	name string
}

func NewTag(id int, name string) *Tag {
	return &Tag{id: id, name: name}
}

// ParseTag reads a tag written as "id:name", e.g. "3:production".
func ParseTag(s string) (*Tag, error) {
	idPart, name, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || name == "" {
		return nil, fmt.Errorf("%w: %q", ErrMalformedTag, s)
	}

	id, err := strconv.Atoi(idPart)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrMalformedTag, s, err)
	}

	return NewTag(id, name), nil
}

func (t *Tag) ID() int { return t.id }

func (t *Tag) SetID(id int) { t.id = id }

func (t *Tag) Name() string { return t.name }

func (t *Tag) SetName(name string) { t.name = name }

// Category groups applications by numeric id.
type Category struct {
	id   int
	name string
}

func NewCategory(id int, name string) *Category {
	return &Category{id: id, name: name}
}

func (c *Category) ID() int { return c.id }

func (c *Category) SetID(id int) { c.id = id }

func (c *Category) Name() string { return c.name }

func (c *Category) SetName(name string) { c.name = name }

// Component is a named part of an application, identified by a string key.
type Component struct {
	id   string
	name string
}

func NewComponent(id, name string) *Component {
	return &Component{id: id, name: name}
}

func (c *Component) ID() string { return c.id }

func (c *Component) SetID(id string) { c.id = id }

func (c *Component) Name() string { return c.name }

func (c *Component) SetName(name string) { c.name = name }
