/*
Copyright 2025 the Dogs API Tests Authors.

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
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/truenvy/dogs-api-api-tests-pet-project/pkg/asserter"
	"github.com/truenvy/dogs-api-api-tests-pet-project/test/api"
)

var _ = Describe("Groups", func() {
	Context("When listing groups", func() {
		It("should return groups referencing breeds", func() {
			groups, err := base.Client.GetAllGroups(ctx)
			Expect(err).NotTo(HaveOccurred())

			asserter.ThatGroups(groups).
				ToHaveStatusCode(http.StatusOK).
				ToHaveAtLeastGroups(1).
				ToHaveGroupType().
				ToReferenceBreeds()
		})
	})

	Context("When getting a group by id", func() {
		It("should return the group", func() {
			// Given: A known group id
			id, err := api.FirstGroupID(ctx, base.Client)
			Expect(err).NotTo(HaveOccurred())

			// When: I request that group
			group, err := base.Client.GetGroupByID(ctx, id)
			Expect(err).NotTo(HaveOccurred())

			// Then: The same group is returned
			asserter.ThatGroup(group).
				ToHaveStatusCode(http.StatusOK).
				ToHaveID(id)
		})

		It("should reject an unknown id", func() {
			group, err := base.Client.GetGroupByID(ctx, api.UnknownID)
			Expect(err).NotTo(HaveOccurred())

			asserter.ThatError(group, group.Body).ToHaveStatusCode(http.StatusNotFound)
		})
	})
})
