/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package client

import (
	"context"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/unikorn-cloud/reqres/pkg/openapi"
)

// Exchange is a completed request/response pair.
type Exchange struct {
	Method     string
	Path       string
	StatusCode int
	Header     http.Header
	Body       []byte
	TraceID    string
	Duration   time.Duration
}

// ResponseSpec is the set of default expectations applied to responses.
// Modifiers return a copy, so a shared spec is never mutated.
type ResponseSpec struct {
	status      int
	contentType string
	schema      *openapi.Schema
}

// DefaultResponseSpec expects a 200 with a JSON body.
func DefaultResponseSpec() ResponseSpec {
	return ResponseSpec{
		status:      http.StatusOK,
		contentType: contentTypeJSON,
	}
}

// WithStatus overrides the expected status code.
func (s ResponseSpec) WithStatus(status int) ResponseSpec {
	s.status = status
	return s
}

// WithContentType overrides the expected media type, empty disables the check.
func (s ResponseSpec) WithContentType(contentType string) ResponseSpec {
	s.contentType = contentType
	return s
}

// WithSchema enables OpenAPI conformance checking.
func (s ResponseSpec) WithSchema(schema *openapi.Schema) ResponseSpec {
	s.schema = schema
	return s
}

func (s ResponseSpec) Status() int {
	return s.status
}

// Verify applies each expectation in turn: status, content type, then schema.
// The first violation is returned as an *ExpectationError.
func (s ResponseSpec) Verify(ctx context.Context, exchange *Exchange) error {
	if s.status > 0 && exchange.StatusCode != s.status {
		return s.violation(exchange, "status", ErrUnexpectedStatus, strconv.Itoa(s.status), strconv.Itoa(exchange.StatusCode))
	}

	if s.contentType != "" {
		actual := exchange.Header.Get("Content-Type")

		mediaType, _, err := mime.ParseMediaType(actual)
		if err != nil || mediaType != s.contentType {
			return s.violation(exchange, "content-type", ErrUnexpectedContentType, s.contentType, strconv.Quote(actual))
		}
	}

	if s.schema != nil {
		if err := s.schema.ValidateResponse(ctx, exchange.Method, exchange.Path, exchange.StatusCode, exchange.Header, exchange.Body); err != nil {
			return s.violation(exchange, "schema", ErrSchemaViolation, "openapi "+s.schema.Version(), err.Error())
		}
	}

	return nil
}

func (s ResponseSpec) violation(exchange *Exchange, expectation string, err error, expected, actual string) *ExpectationError {
	return &ExpectationError{
		Expectation: expectation,
		Expected:    expected,
		Actual:      actual,
		Status:      exchange.StatusCode,
		TraceID:     exchange.TraceID,
		Body:        string(exchange.Body),
		err:         err,
	}
}
