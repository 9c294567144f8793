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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"
	"strconv"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spjmurray/go-util/pkg/set"

	"github.com/unikorn-cloud/reqres/pkg/openapi"
)

const (
	UsersFixtureFile      = "users.csv"
	UserLookupFixtureFile = "users_id_and_mail.csv"
)

//go:embed data/*.csv
var embeddedFixtures embed.FS

// ReqresEmailPattern matches addresses in the service's own domain.
var ReqresEmailPattern = regexp.MustCompile(`^.+@reqres\.in$`)

// UserFixture is one name/job row used to create users.
type UserFixture struct {
	Name string
	Job  string
}

// UserLookupFixture is one id/email row of a known user.
type UserLookupFixture struct {
	ID    int
	Email string
}

func fixtureFS(dir string) (fs.FS, error) {
	if dir != "" {
		return os.DirFS(dir), nil
	}

	return fs.Sub(embeddedFixtures, "data")
}

// readFixture reads a CSV file whose first row must name exactly the given columns.
func readFixture(dir, name string, columns ...string) ([][]string, error) {
	fsys, err := fixtureFS(dir)
	if err != nil {
		return nil, fmt.Errorf("opening fixtures: %w", err)
	}

	file, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening fixture %s: %w", name, err)
	}

	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comment = '#'
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = len(columns)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: reading header: %w", ErrInvalidFixture, name, err)
	}

	for i, column := range columns {
		if !strings.EqualFold(strings.TrimSpace(header[i]), column) {
			return nil, fmt.Errorf("%w: %s: expected header %s, got %s", ErrInvalidFixture, name, strings.Join(columns, ","), strings.Join(header, ","))
		}
	}

	var rows [][]string

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidFixture, name, err)
		}

		rows = append(rows, record)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s: no rows", ErrInvalidFixture, name)
	}

	return rows, nil
}

// LoadUserFixtures loads name/job rows, dir empty selects the embedded set.
func LoadUserFixtures(dir string) ([]UserFixture, error) {
	rows, err := readFixture(dir, UsersFixtureFile, "name", "job")
	if err != nil {
		return nil, err
	}

	fixtures := make([]UserFixture, len(rows))

	for i, row := range rows {
		fixtures[i] = UserFixture{
			Name: row[0],
			Job:  row[1],
		}
	}

	return fixtures, nil
}

// LoadUserLookupFixtures loads id/email rows, dir empty selects the embedded set.
func LoadUserLookupFixtures(dir string) ([]UserLookupFixture, error) {
	rows, err := readFixture(dir, UserLookupFixtureFile, "id", "email")
	if err != nil {
		return nil, err
	}

	fixtures := make([]UserLookupFixture, len(rows))

	for i, row := range rows {
		id, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			return nil, fmt.Errorf("%w: %s row %d: id %q is not an integer", ErrInvalidFixture, UserLookupFixtureFile, i+1, row[0])
		}

		fixtures[i] = UserLookupFixture{
			ID:    id,
			Email: row[1],
		}
	}

	return fixtures, nil
}

// CreateUserEntries turns the name/job fixture into table entries.
// It is called while the spec tree is built, so a broken fixture panics.
func CreateUserEntries(dir string) []TableEntry {
	fixtures, err := LoadUserFixtures(dir)
	if err != nil {
		panic(err)
	}

	entries := make([]TableEntry, len(fixtures))

	for i, fixture := range fixtures {
		entries[i] = Entry(fmt.Sprintf("name=%q job=%q", fixture.Name, fixture.Job), fixture)
	}

	return entries
}

// UserLookupEntries turns the id/email fixture into table entries.
func UserLookupEntries(dir string) []TableEntry {
	fixtures, err := LoadUserLookupFixtures(dir)
	if err != nil {
		panic(err)
	}

	entries := make([]TableEntry, len(fixtures))

	for i, fixture := range fixtures {
		entries[i] = Entry(fmt.Sprintf("id=%d email=%s", fixture.ID, fixture.Email), fixture)
	}

	return entries
}

// VerifyUserEcho verifies the service echoed back the submitted name and job.
func VerifyUserEcho(request openapi.CreateUserRequest, response *openapi.CreateUserResponse) {
	Expect(response).NotTo(BeNil())
	Expect(response.Name).To(Equal(request.Name), "Expected name to be echoed back")
	Expect(response.Job).To(Equal(request.Job), "Expected job to be echoed back")
}

// VerifyCreatedUser verifies a create response echoes the request and carries
// an identity and creation time.
func VerifyCreatedUser(request openapi.CreateUserRequest, response *openapi.CreateUserResponse) {
	VerifyUserEcho(request, response)
	Expect(response.Id).NotTo(BeEmpty(), "Expected the created user to have an ID")
	Expect(response.CreatedAt).NotTo(BeEmpty(), "Expected the created user to have a creation time")
}

// VerifyRegistration verifies the ID and token issued on registration.
func VerifyRegistration(response *openapi.CreateUserResponse, expectedID, expectedToken string) {
	Expect(response).NotTo(BeNil())
	Expect(response.Id.String()).To(Equal(expectedID), "Expected registered user ID")
	Expect(response.Token).To(HaveValue(Equal(expectedToken)), "Expected registration token")
}

// VerifyUserLookup verifies a fetched user matches a known id/email pair.
func VerifyUserLookup(user *openapi.UserRecord, fixture UserLookupFixture) {
	Expect(user).NotTo(BeNil())
	Expect(user.Id).To(Equal(fixture.ID), "Expected user ID %d", fixture.ID)
	Expect(user.Email).To(Equal(fixture.Email), "Expected email for user %d", fixture.ID)
}

// EmailsMatching returns the emails of users that match pattern, in order.
func EmailsMatching(users []openapi.UserRecord, pattern *regexp.Regexp) []string {
	var emails []string

	for _, user := range users {
		if pattern.MatchString(user.Email) {
			emails = append(emails, user.Email)
		}
	}

	return emails
}

// VerifyEmailPresence verifies that among emails matching pattern, expected is present.
func VerifyEmailPresence(users []openapi.UserRecord, pattern *regexp.Regexp, expected string) {
	matching := EmailsMatching(users, pattern)
	Expect(matching).NotTo(BeEmpty(), "Expected at least one email matching %s", pattern)

	var found []string

	for email := range set.New[string](matching...).Intersection(set.New[string](expected)).All() {
		found = append(found, email)
	}

	Expect(found).To(ConsistOf(expected), "Expected %s among emails matching %s: %v", expected, pattern, matching)
}
