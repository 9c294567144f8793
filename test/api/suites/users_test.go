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

	"github.com/unikorn-cloud/reqres/test/api"
)

var _ = Describe("User Management", metadata.Labels(), func() {
	Context("When listing users", func() {
		It("should decode a page that carries unmodelled fields", func() {
			users, err := apiClient.ListUsers(ctx, 2)
			Expect(err).NotTo(HaveOccurred(), "Should list page 2 (HTTP 200)")
			Expect(users.Page).To(Equal(2))
			Expect(users.Data).NotTo(BeEmpty(), "Page 2 should contain users")
			GinkgoWriter.Printf("Page %d of %d holds %d users\n", users.Page, users.TotalPages, len(users.Data))
		})

		It("should include eve.holt among the reqres.in emails", func() {
			users, err := apiClient.ListAllUsers(ctx)
			Expect(err).NotTo(HaveOccurred(), "Should list users (HTTP 200)")

			api.VerifyEmailPresence(users.Data, api.ReqresEmailPattern, "eve.holt@reqres.in")
		})
	})

	Context("When fetching a user", func() {
		DescribeTable("should return the known email for each ID",
			func(fixture api.UserLookupFixture) {
				user, err := apiClient.GetUser(ctx, fixture.ID)
				Expect(err).NotTo(HaveOccurred(), "Should fetch user %d (HTTP 200)", fixture.ID)

				api.VerifyUserLookup(user, fixture)
			},
			api.UserLookupEntries(fixtureDir()),
		)

		It("should return 404 for a user that does not exist", func() {
			status, err := apiClient.UserStatus(ctx, 23)
			Expect(err).NotTo(HaveOccurred(), "Transport should succeed")
			Expect(status).To(Equal(http.StatusNotFound), "Expected HTTP 404 for user 23")
		})
	})

	Context("When creating a user", func() {
		DescribeTable("should echo the name and job and assign an identity",
			func(fixture api.UserFixture) {
				request := api.NewCreateUserPayload().FromFixture(fixture).Build()

				user, err := apiClient.CreateUser(ctx, request)
				Expect(err).NotTo(HaveOccurred(), "Should create user %q (HTTP 201)", request.Name)

				api.VerifyCreatedUser(request, user)
				GinkgoWriter.Printf("Created user %s with ID %s at %s\n", user.Name, user.Id, user.CreatedAt)
			},
			api.CreateUserEntries(fixtureDir()),
		)

		It("should accept a generated user", func() {
			request := api.NewCreateUserPayload().Build()

			user, err := apiClient.CreateUser(ctx, request)
			Expect(err).NotTo(HaveOccurred(), "Should create user %q (HTTP 201)", request.Name)

			api.VerifyCreatedUser(request, user)
		})
	})

	Context("When updating a user", func() {
		It("should echo the new name and job", func() {
			request := api.NewCreateUserPayload().WithName("Gosling").WithJob("Driver").Build()

			user, err := apiClient.UpdateUser(ctx, 2, request)
			Expect(err).NotTo(HaveOccurred(), "Should update user 2 (HTTP 200)")

			api.VerifyUserEcho(request, user)
			Expect(user.UpdatedAt).NotTo(BeEmpty(), "Expected an update time")
		})
	})
})
