// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package router maps request paths to endpoint instances.
//
// The route table binds a path to a [Class], the identity of an endpoint
// implementation together with its factory. Instances are created lazily on
// first resolution and cached for the lifetime of the [Router]; at most one
// instance per class ever exists, even under concurrent resolution.
//
// Resolution is total: unknown paths and classes that do not implement
// [endpoint.Endpoint] both resolve to [endpoint.Null]. Only the lower-level
// [Router.GetInstance] reports misconfiguration, as [ErrInvalidEndpointClass].
package router
