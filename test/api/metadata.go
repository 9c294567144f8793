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
	"strings"

	"github.com/onsi/ginkgo/v2"
)

// CategoryAPI is the label every API spec carries, select with
// ginkgo --label-filter=api.
const CategoryAPI = "api"

// Metadata describes a suite for reporting.
type Metadata struct {
	Owner   string
	Feature string
	Story   string
}

// Labels returns the suite decorators, the category plus feature and story
// labels so they can be filtered on too.
func (m Metadata) Labels() ginkgo.Labels {
	return ginkgo.Label(CategoryAPI, "feature:"+labelValue(m.Feature), "story:"+labelValue(m.Story))
}

// labelValue lower cases and hyphenates, label filters are whitespace sensitive.
func labelValue(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}

// Report attaches the metadata to the current spec's report.  It must be
// called from a setup or subject node, typically BeforeEach.
func (m Metadata) Report() {
	ginkgo.AddReportEntry("owner", m.Owner)
	ginkgo.AddReportEntry("feature", m.Feature)
	ginkgo.AddReportEntry("story", m.Story)
}
