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

package client

import (
	"fmt"

	"github.com/oapi-codegen/runtime"
)

// Endpoints contains all API endpoint patterns.
// Paths are relative to the configured base URL.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// User endpoints.
func (e *Endpoints) ListUsers() string {
	return "/users"
}

func (e *Endpoints) ListUsersPage(page int) (string, error) {
	query, err := runtime.StyleParamWithLocation("form", true, "page", runtime.ParamLocationQuery, page)
	if err != nil {
		return "", fmt.Errorf("styling page parameter: %w", err)
	}

	return "/users?" + query, nil
}

func (e *Endpoints) GetUser(userID int) (string, error) {
	return e.user(userID)
}

func (e *Endpoints) CreateUser() string {
	return "/users"
}

func (e *Endpoints) UpdateUser(userID int) (string, error) {
	return e.user(userID)
}

func (e *Endpoints) user(userID int) (string, error) {
	id, err := runtime.StyleParamWithLocation("simple", false, "id", runtime.ParamLocationPath, userID)
	if err != nil {
		return "", fmt.Errorf("styling id parameter: %w", err)
	}

	return "/users/" + id, nil
}

// Authentication endpoints.
func (e *Endpoints) Register() string {
	return "/register"
}
