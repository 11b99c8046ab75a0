// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const packagesTable = "packages"

var packageColumns = []string{
	"name",
	"version",
	"type",
	"source_reference",
	"source_url",
	"source_type",
	"source_version",
}

// buildSelectPackagesQuery selects the packages of one bundle ordered by name.
func buildSelectPackagesQuery(builder sq.StatementBuilderType, bundle string) (string, []any, error) {
	query, args, err := builder.
		Select(packageColumns...).
		From(packagesTable).
		Where(sq.Eq{"bundle": bundle}).
		OrderBy("name").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
