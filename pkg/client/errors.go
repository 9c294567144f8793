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
	"errors"
	"fmt"
)

var (
	ErrInvalidConfiguration  = errors.New("invalid configuration")
	ErrUnexpectedStatus      = errors.New("unexpected status code")
	ErrUnexpectedContentType = errors.New("unexpected content type")
	ErrSchemaViolation       = errors.New("response does not conform to schema")
)

// ExpectationError names the response expectation that was violated along
// with what was expected and what was observed.
type ExpectationError struct {
	// Expectation is one of status, content-type or schema.
	Expectation string
	Expected    string
	Actual      string
	// Status is the observed HTTP status, whichever expectation failed.
	Status int
	// TraceID correlates the failure with the request log.
	TraceID string
	// Body is the raw response body, included for diagnosis.
	Body string

	err error
}

func (e *ExpectationError) Error() string {
	msg := fmt.Sprintf("%v: %s expected %s, got %s", e.err, e.Expectation, e.Expected, e.Actual)

	if e.Body != "" {
		msg += ", body: " + e.Body
	}

	if e.TraceID != "" {
		msg += " (trace ID: " + e.TraceID + ")"
	}

	return msg
}

func (e *ExpectationError) Unwrap() error {
	return e.err
}

// StatusCode returns the observed status carried by an expectation error,
// or 0 if err is not one.
func StatusCode(err error) int {
	var expectationErr *ExpectationError

	if !errors.As(err, &expectationErr) {
		return 0
	}

	return expectationErr.Status
}
