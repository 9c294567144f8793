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

// Package api provides integration test utilities for the reqres API.
//
// Configuration is read from the environment, or a .env file, by
// LoadTestConfig and carries the client settings from pkg/client alongside
// suite level settings such as the spec timeout.
//
// # Fixtures
//
// Parameterized specs are driven from CSV files with a header row, embedded
// from the data directory.  Set TEST_FIXTURE_DIR to run against a different
// data set without rebuilding.
//
// # Live Service Data
//
// Some expectations, such as the identifier and token returned when
// registering eve.holt@reqres.in, are fixed values of the live demo service
// and are asserted verbatim.
package api
