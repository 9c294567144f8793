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

package api_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/unikorn-cloud/reqres/pkg/client"
	"github.com/unikorn-cloud/reqres/pkg/openapi"
	"github.com/unikorn-cloud/reqres/test/api"
	"github.com/unikorn-cloud/reqres/test/fake"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()

	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))

	return dir
}

func TestEmbeddedUserFixtures(t *testing.T) {
	t.Parallel()

	fixtures, err := api.LoadUserFixtures("")
	require.NoError(t, err)
	require.NotEmpty(t, fixtures)
	require.Equal(t, api.UserFixture{Name: "morpheus", Job: "leader"}, fixtures[0])

	require.Len(t, api.CreateUserEntries(""), len(fixtures))
}

func TestEmbeddedUserLookupFixtures(t *testing.T) {
	t.Parallel()

	fixtures, err := api.LoadUserLookupFixtures("")
	require.NoError(t, err)
	require.Contains(t, fixtures, api.UserLookupFixture{ID: 4, Email: "eve.holt@reqres.in"})

	for _, fixture := range fixtures {
		require.Regexp(t, api.ReqresEmailPattern, fixture.Email)
	}

	require.Len(t, api.UserLookupEntries(""), len(fixtures))
}

func TestUserFixturesOverride(t *testing.T) {
	t.Parallel()

	dir := writeFixture(t, api.UsersFixtureFile, "name,job\n# comment\nsmith, agent\n")

	fixtures, err := api.LoadUserFixtures(dir)
	require.NoError(t, err)
	require.Equal(t, []api.UserFixture{{Name: "smith", Job: "agent"}}, fixtures)
}

func TestInvalidFixtures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		message string
	}{
		{
			name:    "Empty",
			content: "",
			message: "reading header",
		},
		{
			name:    "HeaderOnly",
			content: "id,email\n",
			message: "no rows",
		},
		{
			name:    "WrongHeader",
			content: "email,id\nfoo@reqres.in,1\n",
			message: "expected header id,email",
		},
		{
			name:    "NonIntegerID",
			content: "id,email\nfour,eve.holt@reqres.in\n",
			message: `id "four" is not an integer`,
		},
		{
			name:    "MissingColumn",
			content: "id,email\n4\n",
			message: "wrong number of fields",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			dir := writeFixture(t, api.UserLookupFixtureFile, test.content)

			_, err := api.LoadUserLookupFixtures(dir)
			require.ErrorIs(t, err, api.ErrInvalidFixture)
			require.ErrorContains(t, err, test.message)
		})
	}
}

func TestMissingFixture(t *testing.T) {
	t.Parallel()

	_, err := api.LoadUserFixtures(t.TempDir())
	require.ErrorContains(t, err, "opening fixture users.csv")
	require.Panics(t, func() { api.CreateUserEntries(t.TempDir()) })
}

func TestEmailsMatching(t *testing.T) {
	t.Parallel()

	users := []openapi.UserRecord{
		{Id: 1, Email: "george.bluth@reqres.in"},
		{Id: 2, Email: "someone@example.com"},
		{Id: 3, Email: "emma.wong@reqres.in"},
	}

	require.Equal(t, []string{"george.bluth@reqres.in", "emma.wong@reqres.in"}, api.EmailsMatching(users, api.ReqresEmailPattern))
	require.Empty(t, api.EmailsMatching(users[1:2], api.ReqresEmailPattern))
}

func TestCreateUserPayloadBuilder(t *testing.T) {
	t.Parallel()

	a := api.NewCreateUserPayload().Build()
	b := api.NewCreateUserPayload().Build()

	require.Equal(t, "tester", a.Job)
	require.Regexp(t, `^testautomation-[a-z0-9]+$`, a.Name)
	require.NotEqual(t, a.Name, b.Name)

	payload := api.NewCreateUserPayload().FromFixture(api.UserFixture{Name: "Neo", Job: "the one"}).Build()
	require.Equal(t, openapi.CreateUserRequest{Name: "Neo", Job: "the one"}, payload)
}

// newFakeClient returns a schema validating client wired to a fresh stand-in.
func newFakeClient(t *testing.T) *client.Client {
	t.Helper()

	server := fake.New(fake.WithAPIKey("secret"))
	t.Cleanup(server.Close)

	schema, err := openapi.LoadSchema(t.Context())
	require.NoError(t, err)

	config := &client.Config{
		BaseURL:        server.BaseURL(),
		APIKey:         "secret",
		RequestTimeout: 5 * time.Second,
	}

	return client.New(config, client.WithSchema(schema))
}

func TestUserLookupFixturesAgainstService(t *testing.T) {
	t.Parallel()

	apiClient := newFakeClient(t)

	fixtures, err := api.LoadUserLookupFixtures("")
	require.NoError(t, err)

	for _, fixture := range fixtures {
		user, err := apiClient.GetUser(t.Context(), fixture.ID)
		require.NoError(t, err)
		require.Equal(t, fixture.ID, user.Id)
		require.Equal(t, fixture.Email, user.Email)
	}
}

func TestEmailsMatchingServiceUsers(t *testing.T) {
	t.Parallel()

	apiClient := newFakeClient(t)

	users, err := apiClient.ListAllUsers(t.Context())
	require.NoError(t, err)
	require.Contains(t, api.EmailsMatching(users.Data, api.ReqresEmailPattern), "eve.holt@reqres.in")
}
