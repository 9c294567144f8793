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

package client_test

import (
	"io"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unikorn-cloud/reqres/pkg/client"
	"github.com/unikorn-cloud/reqres/pkg/openapi"
)

var traceParentRegex = regexp.MustCompile(`^00-[0-9a-f]{32}-[0-9a-f]{16}-01$`)

func testConfig(baseURL string) *client.Config {
	return &client.Config{
		BaseURL:        baseURL,
		APIKey:         "secret",
		RequestTimeout: 5 * time.Second,
	}
}

func TestRequestSpecDefaults(t *testing.T) {
	t.Parallel()

	spec := client.NewRequestSpec(testConfig("https://reqres.in/api/"))

	require.Equal(t, "https://reqres.in/api", spec.BaseURL(), "trailing slash is trimmed")

	headers := spec.Headers()
	assert.Equal(t, "application/json", headers.Get("Accept"))
	assert.Equal(t, "secret", headers.Get("X-Api-Key"))
	assert.Contains(t, headers.Get("User-Agent"), "reqres-tests/")

	// Headers is a copy.
	headers.Set("Accept", "text/plain")
	assert.Equal(t, "application/json", spec.Headers().Get("Accept"))
}

func TestRequestSpecWithoutAPIKey(t *testing.T) {
	t.Parallel()

	config := testConfig("https://reqres.in/api")
	config.APIKey = ""

	spec := client.NewRequestSpec(config)

	_, ok := spec.Headers()["X-Api-Key"]
	require.False(t, ok)
}

func TestRequestSpecNewRequest(t *testing.T) {
	t.Parallel()

	spec := client.NewRequestSpec(testConfig("https://reqres.in/api"))

	req, err := spec.NewRequest(t.Context(), http.MethodGet, "/users?page=2", nil)
	require.NoError(t, err)
	require.Equal(t, "https://reqres.in/api/users?page=2", req.URL.String())
	require.Empty(t, req.Header.Get("Content-Type"))
	require.Nil(t, req.Body)
	require.Regexp(t, traceParentRegex, req.Header.Get("Traceparent"))

	body := openapi.CreateUserRequest{Name: "morpheus", Job: "leader"}

	req, err = spec.NewRequest(t.Context(), http.MethodPost, "/users", body)
	require.NoError(t, err)
	require.Equal(t, "application/json", req.Header.Get("Content-Type"))
	require.Equal(t, "secret", req.Header.Get("X-Api-Key"))

	data, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"morpheus","job":"leader"}`, string(data))

	other, err := spec.NewRequest(t.Context(), http.MethodPost, "/users", body)
	require.NoError(t, err)
	require.NotEqual(t, req.Header.Get("Traceparent"), other.Header.Get("Traceparent"), "each request gets its own trace")
}

func TestRequestSpecRejectsUnencodableBody(t *testing.T) {
	t.Parallel()

	spec := client.NewRequestSpec(testConfig("https://reqres.in/api"))

	_, err := spec.NewRequest(t.Context(), http.MethodPost, "/users", map[string]any{"bad": make(chan int)})
	require.ErrorContains(t, err, "marshaling request body")
}
