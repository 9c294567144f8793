package api

import (
	"fmt"

	"k8s.io/apimachinery/pkg/util/rand"

	"github.com/unikorn-cloud/reqres/pkg/openapi"
)

func generateRandomName(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, rand.String(8))
}

// CreateUserPayloadBuilder builds user create and update bodies.
type CreateUserPayloadBuilder struct {
	payload openapi.CreateUserRequest
}

// NewCreateUserPayload creates a builder with a unique name and a default job.
func NewCreateUserPayload() *CreateUserPayloadBuilder {
	return &CreateUserPayloadBuilder{
		payload: openapi.CreateUserRequest{
			Name: generateRandomName("testautomation"),
			Job:  "tester",
		},
	}
}

// FromFixture seeds the builder from a fixture row.
func (b *CreateUserPayloadBuilder) FromFixture(fixture UserFixture) *CreateUserPayloadBuilder {
	b.payload.Name = fixture.Name
	b.payload.Job = fixture.Job

	return b
}

// WithName sets the user name.
func (b *CreateUserPayloadBuilder) WithName(name string) *CreateUserPayloadBuilder {
	b.payload.Name = name
	return b
}

// WithJob sets the user job.
func (b *CreateUserPayloadBuilder) WithJob(job string) *CreateUserPayloadBuilder {
	b.payload.Job = job
	return b
}

// Build returns the completed payload.
func (b *CreateUserPayloadBuilder) Build() openapi.CreateUserRequest {
	return b.payload
}
