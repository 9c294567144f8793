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

// Package client is a typed HTTP client for the reqres API.
//
// # Request and Response Specs
//
// Every request is built from a single RequestSpec (base URL, API key,
// content negotiation and W3C trace context headers) and every response is
// checked against a ResponseSpec (status, media type and, when a schema is
// attached, conformance to the embedded OpenAPI document).  Both are
// constructed once and never mutated, so callers may share them across
// goroutines.
package client
