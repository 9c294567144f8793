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
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-logr/logr"

	"github.com/unikorn-cloud/reqres/pkg/openapi"
)

type Client struct {
	client    Doer
	request   *RequestSpec
	response  ResponseSpec
	config    *Config
	endpoints *Endpoints
	log       logr.Logger
}

// Option customizes a client at construction time.
type Option func(*Client)

// WithDoer replaces the HTTP client, typically with a mock.
func WithDoer(doer Doer) Option {
	return func(c *Client) {
		c.client = doer
	}
}

// WithLogger sets the request logger, the default discards.
func WithLogger(log logr.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithSchema validates every expected response against the OpenAPI document.
func WithSchema(schema *openapi.Schema) Option {
	return func(c *Client) {
		c.response = c.response.WithSchema(schema)
	}
}

func New(config *Config, options ...Option) *Client {
	c := &Client{
		client: &http.Client{
			Timeout: config.RequestTimeout,
		},
		request:   NewRequestSpec(config),
		response:  DefaultResponseSpec(),
		config:    config,
		endpoints: NewEndpoints(),
		log:       logr.Discard(),
	}

	for _, option := range options {
		option(c)
	}

	return c
}

// RequestSpec returns the shared request defaults.
func (c *Client) RequestSpec() *RequestSpec {
	return c.request
}

// ResponseSpec returns the default response expectations.
func (c *Client) ResponseSpec() ResponseSpec {
	return c.response
}

// Endpoints returns the endpoint path builders.
func (c *Client) Endpoints() *Endpoints {
	return c.endpoints
}

// Do performs a request without applying any response expectations.
func (c *Client) Do(ctx context.Context, method, path string, body any) (*Exchange, error) {
	return c.doRequest(ctx, method, path, body, nil)
}

// DoExpecting performs a request and applies the given response expectations.
// The exchange is returned even when an expectation fails.
func (c *Client) DoExpecting(ctx context.Context, method, path string, body any, spec ResponseSpec) (*Exchange, error) {
	return c.doRequest(ctx, method, path, body, &spec)
}

// logError logs a generic error with trace context.
func (c *Client) logError(method, path string, duration time.Duration, traceID string, err error, context string) {
	c.log.Error(err, context, "method", method, "path", path, "duration", duration, "traceID", traceID)
}

// logUnexpected logs a response that failed its expectations.
func (c *Client) logUnexpected(exchange *Exchange, err error) {
	c.log.Info("response failed expectations", "method", exchange.Method, "path", exchange.Path, "status", exchange.StatusCode, "error", err.Error(), "body", string(exchange.Body), "traceID", exchange.TraceID)
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any, spec *ResponseSpec) (*Exchange, error) {
	req, err := c.request.NewRequest(ctx, method, path, body)
	if err != nil {
		return nil, err
	}

	traceID := extractTraceID(req.Header.Get("Traceparent"))

	if c.config.DebugLogging {
		c.log.V(1).Info("sending request", "method", method, "url", req.URL.String(), "traceID", traceID)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logError(method, path, duration, traceID, err, "http request failed")
		return nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logError(method, path, duration, traceID, err, "reading response body")
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	exchange := &Exchange{
		Method:     method,
		Path:       path,
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
		TraceID:    traceID,
		Duration:   duration,
	}

	if c.config.LogRequests {
		c.log.Info("request complete", "method", method, "path", path, "status", resp.StatusCode, "duration", duration, "traceID", traceID)
	}

	if c.config.LogResponses && len(respBody) > 0 {
		c.log.Info("response body", "method", method, "path", path, "body", string(respBody))
	}

	if spec != nil {
		if err := spec.Verify(ctx, exchange); err != nil {
			c.logUnexpected(exchange, err)
			return exchange, err
		}
	}

	return exchange, nil
}

// decode unmarshals a response body into T, what names the resource for errors.
func decode[T any](exchange *Exchange, what string) (*T, error) {
	var out T

	if err := json.Unmarshal(exchange.Body, &out); err != nil {
		return nil, fmt.Errorf("unmarshaling %s response: %w", what, err)
	}

	return &out, nil
}

// ListUsers returns a single page of users.
func (c *Client) ListUsers(ctx context.Context, page int) (*openapi.UserList, error) {
	path, err := c.endpoints.ListUsersPage(page)
	if err != nil {
		return nil, err
	}

	exchange, err := c.doRequest(ctx, http.MethodGet, path, nil, &c.response)
	if err != nil {
		return nil, fmt.Errorf("listing users page %d: %w", page, err)
	}

	return decode[openapi.UserList](exchange, "user list")
}

// ListAllUsers returns the default page of users.
func (c *Client) ListAllUsers(ctx context.Context) (*openapi.UserList, error) {
	exchange, err := c.doRequest(ctx, http.MethodGet, c.endpoints.ListUsers(), nil, &c.response)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	return decode[openapi.UserList](exchange, "user list")
}

// GetUser retrieves a specific user, unwrapping the data envelope.
func (c *Client) GetUser(ctx context.Context, userID int) (*openapi.UserRecord, error) {
	path, err := c.endpoints.GetUser(userID)
	if err != nil {
		return nil, err
	}

	exchange, err := c.doRequest(ctx, http.MethodGet, path, nil, &c.response)
	if err != nil {
		return nil, fmt.Errorf("getting user %d: %w", userID, err)
	}

	envelope, err := decode[openapi.Envelope[openapi.UserRecord]](exchange, "user")
	if err != nil {
		return nil, err
	}

	return &envelope.Data, nil
}

// UserStatus fetches a user and returns only the status code, the body is
// not decoded.
func (c *Client) UserStatus(ctx context.Context, userID int) (int, error) {
	path, err := c.endpoints.GetUser(userID)
	if err != nil {
		return 0, err
	}

	exchange, err := c.doRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return 0, fmt.Errorf("getting user %d: %w", userID, err)
	}

	return exchange.StatusCode, nil
}

// CreateUser creates a new user.
func (c *Client) CreateUser(ctx context.Context, body openapi.CreateUserRequest) (*openapi.CreateUserResponse, error) {
	spec := c.response.WithStatus(http.StatusCreated)

	exchange, err := c.doRequest(ctx, http.MethodPost, c.endpoints.CreateUser(), body, &spec)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return decode[openapi.CreateUserResponse](exchange, "created user")
}

// UpdateUser replaces a user's name and job.
func (c *Client) UpdateUser(ctx context.Context, userID int, body openapi.CreateUserRequest) (*openapi.CreateUserResponse, error) {
	path, err := c.endpoints.UpdateUser(userID)
	if err != nil {
		return nil, err
	}

	exchange, err := c.doRequest(ctx, http.MethodPut, path, body, &c.response)
	if err != nil {
		return nil, fmt.Errorf("updating user %d: %w", userID, err)
	}

	return decode[openapi.CreateUserResponse](exchange, "updated user")
}

// Register registers a user, returning its ID and session token.
func (c *Client) Register(ctx context.Context, body openapi.RegisterUserRequest) (*openapi.CreateUserResponse, error) {
	exchange, err := c.doRequest(ctx, http.MethodPost, c.endpoints.Register(), body, &c.response)
	if err != nil {
		return nil, fmt.Errorf("registering user: %w", err)
	}

	return decode[openapi.CreateUserResponse](exchange, "registered user")
}
