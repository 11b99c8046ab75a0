// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrServiceUnavailable  = errors.New("reporter unavailable")
	ErrInternalServerError = errors.New("internal server error")
	ErrInvalidAddress      = errors.New("invalid adapter http address")
	ErrInvalidReport       = errors.New("invalid report")
)
