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

package api

import (
	"context"
	"fmt"

	"github.com/onsi/gomega/types"

	"github.com/unikorn-cloud/reqres/pkg/client"
)

type conformMatcher struct {
	ctx  context.Context //nolint:containedctx
	spec client.ResponseSpec
	err  error
}

// ConformTo succeeds if a *client.Exchange satisfies the response spec.
func ConformTo(ctx context.Context, spec client.ResponseSpec) types.GomegaMatcher {
	return &conformMatcher{
		ctx:  ctx,
		spec: spec,
	}
}

func (m *conformMatcher) Match(actual interface{}) (bool, error) {
	exchange, ok := actual.(*client.Exchange)
	if !ok {
		return false, fmt.Errorf("ConformTo matcher expects a *client.Exchange, got %T", actual)
	}

	m.err = m.spec.Verify(m.ctx, exchange)

	return m.err == nil, nil
}

func (m *conformMatcher) FailureMessage(_ interface{}) string {
	return fmt.Sprintf("Expected response to conform to the response spec\n\t%v", m.err)
}

func (m *conformMatcher) NegatedFailureMessage(actual interface{}) string {
	exchange, _ := actual.(*client.Exchange)

	if exchange == nil {
		return "Expected response not to conform to the response spec"
	}

	return fmt.Sprintf("Expected %s %s (status %d) not to conform to the response spec", exchange.Method, exchange.Path, exchange.StatusCode)
}
