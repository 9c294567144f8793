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

// Package probe runs a read-only smoke pass against a reqres deployment,
// for use where the test binaries are not available.
package probe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/pflag"

	"github.com/unikorn-cloud/reqres/pkg/client"
	"github.com/unikorn-cloud/reqres/pkg/openapi"

	"k8s.io/utils/ptr"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

var (
	ErrCheckFailed = errors.New("check failed")
	ErrUnexpected  = errors.New("unexpected response")
)

const (
	// knownUserID is eve.holt, present in every deployment's data set.
	knownUserID    = 4
	knownUserEmail = "eve.holt@reqres.in"
	missingUserID  = 23
)

type Options struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	Schema  bool
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.BaseURL, "base-url", client.DefaultBaseURL, "Base URL of the reqres API, including the /api prefix")
	f.StringVar(&o.APIKey, "api-key", client.DefaultAPIKey, "API key sent as x-api-key, empty to omit")
	f.DurationVar(&o.Timeout, "timeout", client.DefaultRequestTimeout, "Per request timeout")
	f.BoolVar(&o.Schema, "validate-schema", true, "Validate responses against the OpenAPI document")
}

// Config converts the options into a client configuration.
func (o *Options) Config() (*client.Config, error) {
	config := &client.Config{
		BaseURL:        o.BaseURL,
		APIKey:         o.APIKey,
		RequestTimeout: o.Timeout,
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Check is a single named probe.
type Check struct {
	Name string
	Run  func(ctx context.Context, apiClient *client.Client) error
}

// Prober runs checks against a single client.
type Prober struct {
	client *client.Client
	checks []Check
}

// New creates a prober with the default checks.
func New(apiClient *client.Client) *Prober {
	return &Prober{
		client: apiClient,
		checks: DefaultChecks(),
	}
}

// NewFromOptions builds the client from command line options.
func NewFromOptions(ctx context.Context, options *Options) (*Prober, error) {
	config, err := options.Config()
	if err != nil {
		return nil, err
	}

	clientOptions := []client.Option{
		client.WithLogger(log.FromContext(ctx).WithName("client")),
	}

	if options.Schema {
		schema, err := openapi.LoadSchema(ctx)
		if err != nil {
			return nil, err
		}

		clientOptions = append(clientOptions, client.WithSchema(schema))
	}

	return New(client.New(config, clientOptions...)), nil
}

// DefaultChecks lists users, fetches a known user, confirms an unknown one
// is absent and registers the known user.  None of them mutate the service.
func DefaultChecks() []Check {
	return []Check{
		{
			Name: "list-users",
			Run:  listUsers,
		},
		{
			Name: "get-user",
			Run:  getUser,
		},
		{
			Name: "missing-user",
			Run:  missingUser,
		},
		{
			Name: "register",
			Run:  register,
		},
	}
}

// Run executes every check, a failing check does not stop the rest.
func (p *Prober) Run(ctx context.Context) error {
	log := log.FromContext(ctx)

	var errs []error

	for _, check := range p.checks {
		start := time.Now()

		if err := check.Run(ctx, p.client); err != nil {
			log.Error(err, "check failed", "check", check.Name, "duration", time.Since(start))

			errs = append(errs, fmt.Errorf("%s: %w", check.Name, err))

			continue
		}

		log.Info("check passed", "check", check.Name, "duration", time.Since(start))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %d of %d checks failed: %w", ErrCheckFailed, len(errs), len(p.checks), errors.Join(errs...))
	}

	return nil
}

func listUsers(ctx context.Context, apiClient *client.Client) error {
	users, err := apiClient.ListAllUsers(ctx)
	if err != nil {
		return err
	}

	for _, user := range users.Data {
		if user.Email == knownUserEmail {
			return nil
		}
	}

	return fmt.Errorf("%w: %s not in first page of %d users", ErrUnexpected, knownUserEmail, users.Total)
}

func getUser(ctx context.Context, apiClient *client.Client) error {
	user, err := apiClient.GetUser(ctx, knownUserID)
	if err != nil {
		return err
	}

	if user.Id != knownUserID || user.Email != knownUserEmail {
		return fmt.Errorf("%w: user %d has email %s", ErrUnexpected, user.Id, user.Email)
	}

	return nil
}

func missingUser(ctx context.Context, apiClient *client.Client) error {
	status, err := apiClient.UserStatus(ctx, missingUserID)
	if err != nil {
		return err
	}

	if status != http.StatusNotFound {
		return fmt.Errorf("%w: user %d returned status %d", ErrUnexpected, missingUserID, status)
	}

	return nil
}

func register(ctx context.Context, apiClient *client.Client) error {
	log := log.FromContext(ctx)

	user, err := apiClient.Register(ctx, openapi.RegisterUserRequest{
		Email:    knownUserEmail,
		Password: "pistol",
	})
	if err != nil {
		return err
	}

	token := ptr.Deref(user.Token, "")
	if token == "" {
		return fmt.Errorf("%w: registration issued no token", ErrUnexpected)
	}

	log.V(1).Info("registered", "id", user.Id, "tokenLength", len(token))

	return nil
}
