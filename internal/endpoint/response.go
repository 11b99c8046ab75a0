// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package endpoint

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const contentTypeJSON = "application/json"

// Response is what an endpoint produces: a status code, headers and an
// already encoded body.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// NewJSONResponse encodes body as JSON. The Content-Type header is always
// forced to application/json, whatever header says. Encoding failures are
// returned wrapped in [ErrEncodingJSON].
func NewJSONResponse(body any, statusCode int, header http.Header) (*Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}

	h := header.Clone()
	if h == nil {
		h = make(http.Header)
	}
	h.Set("Content-Type", contentTypeJSON)

	return &Response{
		StatusCode: statusCode,
		Header:     h,
		Body:       data,
	}, nil
}

// Send copies the response onto w.
func (r *Response) Send(w http.ResponseWriter) (int, error) {
	for key, values := range r.Header {
		for _, v := range values {
			w.Header().Add(key, v)
		}
	}
	w.WriteHeader(r.StatusCode)

	return w.Write(r.Body)
}
