// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package endpoint

import (
	"context"
	"net/http"
)

// Request is the part of an inbound request an endpoint may rely on.
type Request struct {
	// Method is the request method. Routing ignores it.
	Method string

	// Path is the URL path used for routing.
	Path string
}

// RequestFromHTTP builds a [Request] descriptor from r.
func RequestFromHTTP(r *http.Request) Request {
	return Request{
		Method: r.Method,
		Path:   r.URL.Path,
	}
}

// Null is the endpoint returned when nothing else matches.
type Null struct{}

// Handle always fails with [ErrNullEndpoint].
func (Null) Handle(context.Context, Request) (*Response, error) {
	return nil, ErrNullEndpoint
}

// IsNull reports whether e is the null endpoint or nil.
func IsNull(e Endpoint) bool {
	if e == nil {
		return true
	}
	_, ok := e.(Null)
	return ok
}
