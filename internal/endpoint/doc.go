// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package endpoint defines the unit of request handling of the reporter API
// and its implementations.
//
// An [Endpoint] receives a transport-neutral [Request] (path and method) and
// produces a [Response] carrying a status code, headers and an encoded body.
// [Null] is the inert endpoint standing in for "no match"; callers treat it
// as a signal to pass the request on.
package endpoint
