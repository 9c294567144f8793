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

package openapi

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
)

//go:embed reqres.yaml
var document []byte

// Schema validates responses against the reqres OpenAPI document.
// It is immutable once loaded and safe for concurrent use.
type Schema struct {
	doc    *openapi3.T
	router routers.Router
}

// LoadSchema parses and validates the embedded document.
func LoadSchema(ctx context.Context) (*Schema, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(document)
	if err != nil {
		return nil, fmt.Errorf("loading openapi document: %w", err)
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validating openapi document: %w", err)
	}

	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("creating openapi router: %w", err)
	}

	return &Schema{
		doc:    doc,
		router: router,
	}, nil
}

// Version returns the document version.
func (s *Schema) Version() string {
	return s.doc.Info.Version
}

// ValidateResponse checks a response against the operation that serves
// method and path, where path is relative to the API base URL and may carry
// a query string.  Undocumented status codes are rejected.
func (s *Schema) ValidateResponse(ctx context.Context, method, path string, status int, header http.Header, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, method, path, nil)
	if err != nil {
		return fmt.Errorf("creating validation request: %w", err)
	}

	route, pathParams, err := s.router.FindRoute(req)
	if err != nil {
		return fmt.Errorf("finding route for %s %s: %w", method, path, err)
	}

	input := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: &openapi3filter.RequestValidationInput{
			Request:    req,
			PathParams: pathParams,
			Route:      route,
		},
		Status: status,
		Header: header,
		Options: &openapi3filter.Options{
			IncludeResponseStatus: true,
			MultiError:            true,
		},
	}

	input.SetBodyBytes(body)

	return openapi3filter.ValidateResponse(ctx, input)
}
