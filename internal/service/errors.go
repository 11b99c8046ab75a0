// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidBundleConfig    = errors.New("invalid bundle configuration")
	ErrUnknownInventorySource = errors.New("unknown inventory source")
	ErrOpeningInventory       = errors.New("error opening package inventory")
)
