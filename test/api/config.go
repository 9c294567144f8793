/*
Copyright 2024-2025 the Unikorn Authors.
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

package api

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/unikorn-cloud/reqres/pkg/client"
)

const (
	DefaultTestTimeout = 2 * time.Minute
)

type TestConfig struct {
	client.Config

	TestTimeout     time.Duration
	FixtureDir      string
	SkipIntegration bool

	// unparsable records variables that were set but could not be parsed.
	unparsable map[string]string
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if any configuration value is invalid.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	l := &loader{
		unparsable: map[string]string{},
	}

	config := &TestConfig{
		Config: client.Config{
			BaseURL:        l.getStringWithDefault("API_BASE_URL", client.DefaultBaseURL),
			APIKey:         l.getStringWithDefault("REQRES_API_KEY", client.DefaultAPIKey),
			RequestTimeout: l.getDurationWithDefault("REQUEST_TIMEOUT", client.DefaultRequestTimeout),
			DebugLogging:   l.getBoolWithDefault("DEBUG_LOGGING", false),
			LogRequests:    l.getBoolWithDefault("LOG_REQUESTS", false),
			LogResponses:   l.getBoolWithDefault("LOG_RESPONSES", false),
		},
		TestTimeout:     l.getDurationWithDefault("TEST_TIMEOUT", DefaultTestTimeout),
		FixtureDir:      os.Getenv("TEST_FIXTURE_DIR"),
		SkipIntegration: l.getBoolWithDefault("SKIP_INTEGRATION", false),
		unparsable:      l.unparsable,
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// loader reads typed environment variables, remembering those that are set
// to something that does not parse.
type loader struct {
	unparsable map[string]string
}

// getStringWithDefault gets a string from environment variable or returns default.
// An explicitly empty variable is honoured, so REQRES_API_KEY= disables the key.
func (l *loader) getStringWithDefault(key, defaultValue string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}

	return value
}

// getDurationWithDefault gets a duration from environment variable or returns default.
func (l *loader) getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		l.unparsable[key] = "must be a Go duration"

		return defaultValue
	}

	return duration
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func (l *loader) getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		l.unparsable[key] = "must be a boolean"

		return defaultValue
	}

	return boolValue
}

func loadEnvFile() {
	envPaths := []string{
		"../../.env",    // From test/api/suites directory
		"../../../.env", // From test/contracts/consumer/reqres directory
		".env",
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	// Existing environment variables take precedence over the file.
	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// Validate checks that all configuration values are usable.
func (c *TestConfig) Validate() error {
	invalid := map[string]string{}

	for key, reason := range c.unparsable {
		invalid[key] = reason
	}

	if !client.IsHTTPURL(c.BaseURL) {
		invalid["API_BASE_URL"] = "must be an absolute http(s) URL"
	}

	if c.RequestTimeout <= 0 {
		invalid["REQUEST_TIMEOUT"] = "must be positive"
	}

	if c.TestTimeout <= 0 {
		invalid["TEST_TIMEOUT"] = "must be positive"
	}

	if c.FixtureDir != "" {
		if info, err := os.Stat(c.FixtureDir); err != nil || !info.IsDir() {
			invalid["TEST_FIXTURE_DIR"] = "must be an existing directory"
		}
	}

	if len(invalid) == 0 {
		return nil
	}

	problems := make([]string, 0, len(invalid))

	for envVar, reason := range invalid {
		problems = append(problems, envVar+" "+reason)
	}

	sort.Strings(problems)

	return fmt.Errorf("%w: %s. Please fix these environment variables or the .env file", ErrInvalidConfiguration, strings.Join(problems, ", "))
}
