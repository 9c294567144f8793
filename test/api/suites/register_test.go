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

//nolint:testpackage,revive // test package in suites is standard for these tests
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/reqres/pkg/client"
	"github.com/unikorn-cloud/reqres/pkg/openapi"
	"github.com/unikorn-cloud/reqres/test/api"
)

// The service only registers users from its own data set and always issues
// the same token.
const (
	registeredEmail = "eve.holt@reqres.in"
	registeredID    = "4"
	registeredToken = "QpwL5tke4Pnpja7X4"
)

var _ = Describe("Registration", metadata.Labels(), func() {
	Context("When registering a defined user", func() {
		It("should return the fixed ID and token", func() {
			user, err := apiClient.Register(ctx, openapi.RegisterUserRequest{
				Email:    registeredEmail,
				Password: "qwerty",
			})
			Expect(err).NotTo(HaveOccurred(), "Should register %s (HTTP 200)", registeredEmail)

			api.VerifyRegistration(user, registeredID, registeredToken)
		})
	})

	Context("When registering without a password", func() {
		It("should be rejected", func() {
			_, err := apiClient.Register(ctx, openapi.RegisterUserRequest{
				Email: "sydney@fife",
			})
			Expect(err).To(MatchError(client.ErrUnexpectedStatus), "Should reject registration (expected HTTP 400)")
			Expect(client.StatusCode(err)).To(Equal(http.StatusBadRequest))
			GinkgoWriter.Printf("Expected HTTP 400 error for missing password: %v\n", err)
		})
	})
})
