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

package dogs_test

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"testing"

	. "github.com/onsi/ginkgo/v2" //nolint:revive
	. "github.com/onsi/gomega"    //nolint:revive
	"github.com/pact-foundation/pact-go/v2/consumer"
	"github.com/pact-foundation/pact-go/v2/matchers"

	"github.com/truenvy/dogs-api-api-tests-pet-project/pkg/asserter"
	"github.com/truenvy/dogs-api-api-tests-pet-project/pkg/config"
	"github.com/truenvy/dogs-api-api-tests-pet-project/pkg/dogs"
)

var testingT *testing.T //nolint:gochecknoglobals

func TestContracts(t *testing.T) { //nolint:paralleltest
	testingT = t

	RegisterFailHandler(Fail)
	RunSpecs(t, "Dogs API Consumer Contract Suite")
}

const (
	breedID = "036feed0-da8a-42c9-ab9a-57449b530b13"
	groupID = "be0147df-7755-4228-b132-3518c0c6f4d4"
	missing = "00000000-0000-4000-8000-000000000000"
)

// createDogsClient creates a dogs client for the mock server.
func createDogsClient(server consumer.MockServerConfig) (*dogs.Client, error) {
	c := config.Defaults()
	c.BaseURI = fmt.Sprintf("http://%s/api/v2", net.JoinHostPort(server.Host, fmt.Sprintf("%d", server.Port)))

	return dogs.New(&c)
}

func reference(kind string) map[string]interface{} {
	return map[string]interface{}{
		"id":   matchers.UUID(),
		"type": matchers.String(kind),
	}
}

func rangeOf(lower, upper int) map[string]interface{} {
	return map[string]interface{}{
		"min": matchers.Integer(lower),
		"max": matchers.Integer(upper),
	}
}

func breedBody(id string) map[string]interface{} {
	return map[string]interface{}{
		"id":   matchers.String(id),
		"type": matchers.String("breed"),
		"attributes": map[string]interface{}{
			"name":           matchers.String("Border Collie"),
			"description":    matchers.String("A highly intelligent herding dog."),
			"hypoallergenic": matchers.Like(false),
			"life":           rangeOf(12, 15),
			"male_weight":    rangeOf(14, 20),
			"female_weight":  rangeOf(12, 19),
		},
		"relationships": map[string]interface{}{
			"group": map[string]interface{}{
				"data": reference("group"),
			},
		},
	}
}

func groupBody(id string) map[string]interface{} {
	return map[string]interface{}{
		"id":   matchers.String(id),
		"type": matchers.String("group"),
		"attributes": map[string]interface{}{
			"name": matchers.String("Herding Group"),
		},
		"relationships": map[string]interface{}{
			"breeds": map[string]interface{}{
				"data": matchers.EachLike(reference("breed"), 1),
			},
		},
	}
}

func notFoundBody() map[string]interface{} {
	return map[string]interface{}{
		"errors": matchers.EachLike(map[string]interface{}{
			"status": matchers.String("404"),
			"title":  matchers.String("Not Found"),
		}, 1),
	}
}

var _ = Describe("Dogs API Contract", func() {
	var (
		pact *consumer.V4HTTPMockProvider
		ctx  context.Context
	)

	BeforeEach(func() {
		var err error
		pact, err = consumer.NewV4Pact(consumer.MockHTTPProviderConfig{
			Consumer: "dogs-api-tests",
			Provider: "dogs-api",
			PactDir:  "../pacts",
		})
		Expect(err).NotTo(HaveOccurred())
		ctx = context.Background()
	})

	Describe("GetBreeds", func() {
		It("returns a page of breeds", func() {
			pact.AddInteraction().
				Given("breeds exist").
				UponReceiving("a request for the second page of breeds").
				WithRequest("GET", "/api/v2/breeds", func(b *consumer.V4RequestBuilder) {
					b.Query("page[number]", matchers.String("2"))
				}).
				WillRespondWith(200, func(b *consumer.V4ResponseBuilder) {
					b.JSONBody(map[string]interface{}{
						"data": matchers.EachLike(breedBody(breedID), 1),
						"meta": map[string]interface{}{
							"pagination": map[string]interface{}{
								"current": matchers.Integer(2),
								"records": matchers.Integer(283),
							},
						},
					})
				})

			test := func(config consumer.MockServerConfig) error {
				client, err := createDogsClient(config)
				if err != nil {
					return fmt.Errorf("creating dogs client: %w", err)
				}

				breeds, err := client.GetBreedsPage(ctx, 2)
				if err != nil {
					return fmt.Errorf("listing breeds: %w", err)
				}

				asserter.ThatBreeds(breeds).
					ToHaveStatusCode(http.StatusOK).
					ToHaveAtLeastBreeds(1).
					ToHaveBreedType().
					ToHaveNames()

				Expect(*breeds.JSON200.Meta.Pagination.Current).To(Equal(2))

				return nil
			}

			Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
		})
	})

	Describe("GetBreed", func() {
		It("returns the breed", func() {
			pact.AddInteraction().
				Given("breed exists").
				UponReceiving("a request for a breed").
				WithRequest("GET", "/api/v2/breeds/"+breedID).
				WillRespondWith(200, func(b *consumer.V4ResponseBuilder) {
					b.JSONBody(map[string]interface{}{
						"data": breedBody(breedID),
					})
				})

			test := func(config consumer.MockServerConfig) error {
				client, err := createDogsClient(config)
				if err != nil {
					return fmt.Errorf("creating dogs client: %w", err)
				}

				breed, err := client.GetBreedByID(ctx, breedID)
				if err != nil {
					return fmt.Errorf("getting breed: %w", err)
				}

				asserter.ThatBreed(breed).
					ToHaveStatusCode(http.StatusOK).
					ToHaveID(breedID).
					ToHaveName()

				return nil
			}

			Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
		})

		It("rejects an unknown breed", func() {
			pact.AddInteraction().
				Given("breed does not exist").
				UponReceiving("a request for an unknown breed").
				WithRequest("GET", "/api/v2/breeds/"+missing).
				WillRespondWith(404, func(b *consumer.V4ResponseBuilder) {
					b.JSONBody(notFoundBody())
				})

			test := func(config consumer.MockServerConfig) error {
				client, err := createDogsClient(config)
				if err != nil {
					return fmt.Errorf("creating dogs client: %w", err)
				}

				breed, err := client.GetBreedByID(ctx, missing)
				if err != nil {
					return fmt.Errorf("getting breed: %w", err)
				}

				asserter.ThatError(breed, breed.Body).
					ToHaveStatusCode(http.StatusNotFound).
					ToHaveErrorTitle("Not Found")

				return nil
			}

			Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
		})
	})

	Describe("GetFacts", func() {
		It("returns a single fact by default", func() {
			pact.AddInteraction().
				Given("facts exist").
				UponReceiving("a request for facts").
				WithRequest("GET", "/api/v2/facts").
				WillRespondWith(200, func(b *consumer.V4ResponseBuilder) {
					b.JSONBody(map[string]interface{}{
						"data": matchers.EachLike(map[string]interface{}{
							"id":   matchers.UUID(),
							"type": matchers.String("fact"),
							"attributes": map[string]interface{}{
								"body": matchers.String("Puppies are born deaf and blind."),
							},
						}, 1),
					})
				})

			test := func(config consumer.MockServerConfig) error {
				client, err := createDogsClient(config)
				if err != nil {
					return fmt.Errorf("creating dogs client: %w", err)
				}

				facts, err := client.GetFacts(ctx)
				if err != nil {
					return fmt.Errorf("getting facts: %w", err)
				}

				asserter.ThatFacts(facts).
					ToHaveStatusCode(http.StatusOK).
					ToHaveNumberOfFacts(1).
					ToHaveFactsBodyNotNull()

				return nil
			}

			Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
		})

		It("returns as many facts as the limit", func() {
			const limit = 3

			fact := map[string]interface{}{
				"id":   matchers.UUID(),
				"type": matchers.String("fact"),
				"attributes": map[string]interface{}{
					"body": matchers.String("Dogs sweat through the pads of their feet."),
				},
			}

			pact.AddInteraction().
				Given("facts exist").
				UponReceiving("a request for a limited number of facts").
				WithRequest("GET", "/api/v2/facts", func(b *consumer.V4RequestBuilder) {
					b.Query("limit", matchers.String(fmt.Sprintf("%d", limit)))
				}).
				WillRespondWith(200, func(b *consumer.V4ResponseBuilder) {
					b.JSONBody(map[string]interface{}{
						"data": []interface{}{fact, fact, fact},
					})
				})

			test := func(config consumer.MockServerConfig) error {
				client, err := createDogsClient(config)
				if err != nil {
					return fmt.Errorf("creating dogs client: %w", err)
				}

				facts, err := client.GetFactsWithLimit(ctx, limit)
				if err != nil {
					return fmt.Errorf("getting facts: %w", err)
				}

				asserter.ThatFacts(facts).
					ToHaveStatusCode(http.StatusOK).
					ToHaveNumberOfFacts(limit).
					ToHaveFactsBodyNotNull()

				return nil
			}

			Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
		})
	})

	Describe("GetGroups", func() {
		It("returns groups referencing breeds", func() {
			pact.AddInteraction().
				Given("groups exist").
				UponReceiving("a request for groups").
				WithRequest("GET", "/api/v2/groups").
				WillRespondWith(200, func(b *consumer.V4ResponseBuilder) {
					b.JSONBody(map[string]interface{}{
						"data": matchers.EachLike(groupBody(groupID), 1),
					})
				})

			test := func(config consumer.MockServerConfig) error {
				client, err := createDogsClient(config)
				if err != nil {
					return fmt.Errorf("creating dogs client: %w", err)
				}

				groups, err := client.GetAllGroups(ctx)
				if err != nil {
					return fmt.Errorf("listing groups: %w", err)
				}

				asserter.ThatGroups(groups).
					ToHaveStatusCode(http.StatusOK).
					ToHaveAtLeastGroups(1).
					ToHaveGroupType().
					ToReferenceBreeds()

				return nil
			}

			Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
		})
	})

	Describe("GetGroup", func() {
		It("returns the group", func() {
			pact.AddInteraction().
				Given("group exists").
				UponReceiving("a request for a group").
				WithRequest("GET", "/api/v2/groups/"+groupID).
				WillRespondWith(200, func(b *consumer.V4ResponseBuilder) {
					b.JSONBody(map[string]interface{}{
						"data": groupBody(groupID),
					})
				})

			test := func(config consumer.MockServerConfig) error {
				client, err := createDogsClient(config)
				if err != nil {
					return fmt.Errorf("creating dogs client: %w", err)
				}

				group, err := client.GetGroupByID(ctx, groupID)
				if err != nil {
					return fmt.Errorf("getting group: %w", err)
				}

				asserter.ThatGroup(group).
					ToHaveStatusCode(http.StatusOK).
					ToHaveID(groupID)

				return nil
			}

			Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
		})

		It("rejects an unknown group", func() {
			pact.AddInteraction().
				Given("group does not exist").
				UponReceiving("a request for an unknown group").
				WithRequest("GET", "/api/v2/groups/"+missing).
				WillRespondWith(404, func(b *consumer.V4ResponseBuilder) {
					b.JSONBody(notFoundBody())
				})

			test := func(config consumer.MockServerConfig) error {
				client, err := createDogsClient(config)
				if err != nil {
					return fmt.Errorf("creating dogs client: %w", err)
				}

				group, err := client.GetGroupByID(ctx, missing)
				if err != nil {
					return fmt.Errorf("getting group: %w", err)
				}

				asserter.ThatError(group, group.Body).
					ToHaveStatusCode(http.StatusNotFound).
					ToHaveErrorTitle("Not Found")

				return nil
			}

			Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
		})
	})
})
