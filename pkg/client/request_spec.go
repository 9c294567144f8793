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
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/unikorn-cloud/reqres/pkg/constants"
)

const (
	contentTypeJSON = "application/json"
	apiKeyHeader    = "X-Api-Key"
)

// RequestSpec holds the defaults every request is built from: the base URL
// and a fixed header set.  It is read-only after construction.
type RequestSpec struct {
	baseURL string
	headers http.Header
}

// NewRequestSpec creates the shared request defaults from configuration.
func NewRequestSpec(config *Config) *RequestSpec {
	headers := http.Header{}
	headers.Set("Accept", contentTypeJSON)
	headers.Set("User-Agent", constants.UserAgent())

	if config.APIKey != "" {
		headers.Set(apiKeyHeader, config.APIKey)
	}

	return &RequestSpec{
		baseURL: strings.TrimSuffix(config.BaseURL, "/"),
		headers: headers,
	}
}

// BaseURL returns the URL all paths are relative to.
func (s *RequestSpec) BaseURL() string {
	return s.baseURL
}

// Headers returns a copy of the default headers.
func (s *RequestSpec) Headers() http.Header {
	return s.headers.Clone()
}

// NewRequest builds a request for path with the default headers applied.
// A non-nil body is JSON encoded.  Each request gets a fresh W3C trace context.
func (s *RequestSpec) NewRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var reader io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header = s.headers.Clone()

	if body != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}

	// Add W3C Trace Context headers
	req.Header.Set("Traceparent", createTraceParent())
	req.Header.Set("Tracestate", "test-automation=ginkgo")

	return req, nil
}

// generateTraceID creates a new W3C trace ID.
// we are using this to create a new trace ID for each request so if an error occurs we can find the request in the logs.
func generateTraceID() string {
	bytes := make([]byte, 16)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	bytes := make([]byte, 8)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	return fmt.Sprintf("00-%s-%s-01", generateTraceID(), generateSpanID())
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}
