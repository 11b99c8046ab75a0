// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var ErrIncompleteApp = errors.New("client app requires a report client and an output")
