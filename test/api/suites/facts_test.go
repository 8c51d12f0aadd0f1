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

var _ = Describe("Facts", func() {
	Context("When requesting facts with a limit", func() {
		It("should return exactly that many facts", func() {
			// Given: A random limit
			limit := api.RandomFactsLimit(base.Faker)

			// When: I request facts with that limit
			facts, err := base.Client.GetFactsWithLimit(ctx, limit)
			Expect(err).NotTo(HaveOccurred())

			// Then: The number of facts matches the limit
			asserter.ThatFacts(facts).
				ToHaveStatusCode(http.StatusOK).
				ToHaveNumberOfFacts(limit)
		})

		It("should return facts with a body", func() {
			facts, err := base.Client.GetFactsWithLimit(ctx, api.RandomFactsLimit(base.Faker))
			Expect(err).NotTo(HaveOccurred())

			asserter.ThatFacts(facts).
				ToHaveStatusCode(http.StatusOK).
				ToHaveFactsBodyNotNull()
		})
	})

	Context("When requesting facts without a limit", func() {
		It("should return a single fact", func() {
			facts, err := base.Client.GetFacts(ctx)
			Expect(err).NotTo(HaveOccurred())

			asserter.ThatFacts(facts).
				ToHaveStatusCode(http.StatusOK).
				ToHaveNumberOfFacts(1).
				ToHaveFactsBodyNotNull()
		})
	})
})
