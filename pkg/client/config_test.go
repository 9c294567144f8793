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
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/unikorn-cloud/reqres/pkg/client"
)

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		config  client.Config
		message string
	}{
		{
			name:   "defaults",
			config: client.Config{BaseURL: client.DefaultBaseURL, RequestTimeout: client.DefaultRequestTimeout},
		},
		{
			name:    "relative base URL",
			config:  client.Config{BaseURL: "reqres.in/api", RequestTimeout: time.Second},
			message: "base URL must be an absolute http(s) URL",
		},
		{
			name:    "unsupported scheme",
			config:  client.Config{BaseURL: "ftp://reqres.in/api", RequestTimeout: time.Second},
			message: "base URL must be an absolute http(s) URL",
		},
		{
			name:    "zero timeout",
			config:  client.Config{BaseURL: "http://localhost:8080/api"},
			message: "request timeout must be positive",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			err := test.config.Validate()
			if test.message == "" {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, client.ErrInvalidConfiguration)
			require.ErrorContains(t, err, test.message)
		})
	}
}
