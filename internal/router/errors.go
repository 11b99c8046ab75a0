// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package router

import "errors"

// ErrInvalidEndpointClass is returned by [Router.GetInstance] when the class
// does not implement the endpoint capability.
var ErrInvalidEndpointClass = errors.New("invalid endpoint class")
