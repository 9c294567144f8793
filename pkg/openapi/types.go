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

// Package openapi holds the request and response shapes of the reqres API,
// and the OpenAPI document they are validated against.
// Decoding is lenient, fields the service adds that are not modelled here
// are ignored.
package openapi

// UserRecord is a single user as returned by the list and fetch endpoints.
type UserRecord struct {
	Id        int    `json:"id"`
	Email     string `json:"email,omitempty"`
	Password  string `json:"password,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Job       string `json:"job,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
}

// UserList is a page of users.
type UserList struct {
	Page       int          `json:"page"`
	PerPage    int          `json:"per_page"`
	Total      int          `json:"total"`
	TotalPages int          `json:"total_pages"`
	Data       []UserRecord `json:"data"`
}

// Envelope is the wrapper single resource reads are nested in.
type Envelope[T any] struct {
	Data T `json:"data"`
}

// CreateUserRequest is the body of user create and update requests.
type CreateUserRequest struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

// CreateUserResponse is returned by create, update and register.
// Token is only set by register.
type CreateUserResponse struct {
	Name      string  `json:"name,omitempty"`
	Job       string  `json:"job,omitempty"`
	Id        ID      `json:"id,omitempty"`
	CreatedAt string  `json:"createdAt,omitempty"`
	UpdatedAt string  `json:"updatedAt,omitempty"`
	Token     *string `json:"token,omitempty"`
}

// RegisterUserRequest is the body of a registration request.
type RegisterUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

// Error is the body the service returns on 4XX responses that carry one.
type Error struct {
	Error string `json:"error"`
}
