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
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultBaseURL        = "https://reqres.in/api"
	DefaultAPIKey         = "reqres-free-v1"
	DefaultRequestTimeout = 30 * time.Second
)

// Config is everything a client needs to reach the service.
type Config struct {
	// BaseURL includes the /api prefix, paths are appended to it.
	BaseURL string
	// APIKey is sent as x-api-key, empty omits the header.
	APIKey         string
	RequestTimeout time.Duration
	DebugLogging   bool
	LogRequests    bool
	LogResponses   bool
}

// IsHTTPURL reports whether s is an absolute http or https URL.
func IsHTTPURL(s string) bool {
	u, err := url.Parse(s)

	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Validate checks the configuration can build requests.
func (c *Config) Validate() error {
	var problems []string

	if !IsHTTPURL(c.BaseURL) {
		problems = append(problems, "base URL must be an absolute http(s) URL")
	}

	if c.RequestTimeout <= 0 {
		problems = append(problems, "request timeout must be positive")
	}

	if len(problems) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfiguration, strings.Join(problems, ", "))
}
