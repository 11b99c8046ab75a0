// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package router

import (
	"fmt"
	"reflect"
	"slices"
	"sync"

	"github.com/MKhiriev/go-reporter-api/internal/endpoint"
	"github.com/MKhiriev/go-reporter-api/internal/logger"
)

// Router resolves request paths to cached endpoint instances.
type Router struct {
	routes map[string]Class

	mu    sync.Mutex
	cache map[reflect.Type]endpoint.Endpoint

	logger *logger.Logger
}

// New constructs a [Router] over a copy of routes. Classes that do not
// implement the endpoint capability are reported once here; their routes
// stay registered but resolve to [endpoint.Null].
func New(routes map[string]Class, logger *logger.Logger) *Router {
	table := make(map[string]Class, len(routes))
	for path, class := range routes {
		if !class.Implements() {
			logger.Warn().
				Str("func", "router.New").
				Str("path", path).
				Str("class", class.String()).
				Msg("route is bound to a class that does not implement Endpoint")
		}
		table[path] = class
	}

	return &Router{
		routes: table,
		cache:  make(map[reflect.Type]endpoint.Endpoint),
		logger: logger,
	}
}

// Resolve returns the endpoint registered for path, or [endpoint.Null] when
// there is none or its class is invalid. It never fails.
func (r *Router) Resolve(path string) endpoint.Endpoint {
	class, ok := r.routes[path]
	if !ok {
		return endpoint.Null{}
	}

	e, err := r.GetInstance(class)
	if err != nil {
		r.logger.Debug().Err(err).Str("path", path).Msg("falling back to null endpoint")
		return endpoint.Null{}
	}

	return e
}

// CanHandle reports whether req resolves to a real endpoint.
func (r *Router) CanHandle(req endpoint.Request) bool {
	return !endpoint.IsNull(r.Resolve(req.Path))
}

// GetInstance returns the cached instance of class, creating it on first
// use. It fails with [ErrInvalidEndpointClass] if class does not implement
// [endpoint.Endpoint].
func (r *Router) GetInstance(class Class) (endpoint.Endpoint, error) {
	if !class.Implements() {
		return nil, fmt.Errorf("%w: class %s must implement %s", ErrInvalidEndpointClass, class, endpointType)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.cache[class.typ]; ok {
		return e, nil
	}

	e, ok := class.newFn().(endpoint.Endpoint)
	if !ok || e == nil || isNilPointer(e) {
		return nil, fmt.Errorf("%w: factory of %s returned no endpoint", ErrInvalidEndpointClass, class)
	}
	r.cache[class.typ] = e

	return e, nil
}

// Routes returns the registered paths in lexical order.
func (r *Router) Routes() []string {
	paths := make([]string, 0, len(r.routes))
	for path := range r.routes {
		paths = append(paths, path)
	}
	slices.Sort(paths)
	return paths
}

func isNilPointer(e endpoint.Endpoint) bool {
	v := reflect.ValueOf(e)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
