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

var _ = Describe("Breeds", func() {
	Context("When listing breeds", func() {
		It("should return breeds with their attributes", func() {
			// When: I request all breeds
			breeds, err := base.Client.GetAllBreeds(ctx)
			Expect(err).NotTo(HaveOccurred())

			// Then: At least one breed is returned, each named and well formed
			asserter.ThatBreeds(breeds).
				ToHaveStatusCode(http.StatusOK).
				ToHaveAtLeastBreeds(1).
				ToHaveBreedType().
				ToHaveNames().
				ToHaveUniqueIDs()
		})

		It("should return a different second page", func() {
			// Given: The first page of breeds
			first, err := base.Client.GetBreedsPage(ctx, 1)
			Expect(err).NotTo(HaveOccurred())
			asserter.ThatBreeds(first).ToHaveStatusCode(http.StatusOK).ToHaveAtLeastBreeds(1)

			// When: I request the second page
			second, err := base.Client.GetBreedsPage(ctx, 2)
			Expect(err).NotTo(HaveOccurred())

			// Then: It holds breeds the first page does not
			asserter.ThatBreeds(second).ToHaveStatusCode(http.StatusOK).ToHaveAtLeastBreeds(1).ToHaveBreedType()

			Expect(second.JSON200.Data[0].Id).NotTo(Equal(first.JSON200.Data[0].Id))
		})
	})

	Context("When getting a breed by id", func() {
		It("should return the breed", func() {
			// Given: A known breed id
			id, err := api.FirstBreedID(ctx, base.Client)
			Expect(err).NotTo(HaveOccurred())

			// When: I request that breed
			breed, err := base.Client.GetBreedByID(ctx, id)
			Expect(err).NotTo(HaveOccurred())

			// Then: The same breed is returned
			asserter.ThatBreed(breed).
				ToHaveStatusCode(http.StatusOK).
				ToHaveID(id).
				ToHaveName()
		})

		It("should reject an unknown id", func() {
			// When: I request a breed that does not exist
			breed, err := base.Client.GetBreedByID(ctx, api.UnknownID)
			Expect(err).NotTo(HaveOccurred())

			// Then: The request is rejected with 404 Not Found
			asserter.ThatError(breed, breed.Body).ToHaveStatusCode(http.StatusNotFound)
		})
	})
})
