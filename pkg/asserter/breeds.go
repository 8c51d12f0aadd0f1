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

package asserter

import (
	"fmt"
	"slices"

	"github.com/onsi/gomega"
	"github.com/spjmurray/go-util/pkg/set"

	"github.com/truenvy/dogs-api-api-tests-pet-project/pkg/openapi"
)

const breedType = "breed"

// BreedsAsserter checks a breeds listing.
type BreedsAsserter struct {
	base
	payload *openapi.BreedsResponse
}

func ThatBreeds(resp *openapi.GetBreedsResponse, options ...Option) *BreedsAsserter {
	return NewBreedsAsserter(gomega.Default, resp, options...)
}

func NewBreedsAsserter(g gomega.Gomega, resp *openapi.GetBreedsResponse, options ...Option) *BreedsAsserter {
	if resp == nil {
		return &BreedsAsserter{base: newBase(g, 0, nil, options...)}
	}

	return &BreedsAsserter{
		base:    newBase(g, resp.StatusCode(), resp.Body, options...),
		payload: resp.JSON200,
	}
}

func (a *BreedsAsserter) ToHaveStatusCode(code int) *BreedsAsserter {
	a.statusCode(code)

	return a
}

func (a *BreedsAsserter) ToHaveAtLeastBreeds(n int) *BreedsAsserter {
	a.step("check minimum number of breeds", "expected", n)

	if decode(&a.base, &a.payload) && present(&a.base, a.payload.Data) {
		a.g.ExpectWithOffset(1, len(a.payload.Data)).To(gomega.BeNumerically(">=", n), "number of breeds")
	}

	return a
}

func (a *BreedsAsserter) ToHaveBreedType() *BreedsAsserter {
	a.step("check every item is a breed")

	if decode(&a.base, &a.payload) && present(&a.base, a.payload.Data) {
		a.g.ExpectWithOffset(1, a.payload.Data).To(allOf(gomega.HaveField("Type", breedType)))
	}

	return a
}

// ToHaveNames checks every breed is named and its life and weight ranges are
// ordered.
func (a *BreedsAsserter) ToHaveNames() *BreedsAsserter {
	a.step("check breeds have names and ranges")

	if !decode(&a.base, &a.payload) || !present(&a.base, a.payload.Data) {
		return a
	}

	var soft softAssertions

	for _, breed := range a.payload.Data {
		checkBreed(&soft, &breed)
	}

	soft.assertAll(a.g)

	return a
}

func checkBreed(soft *softAssertions, breed *openapi.Breed) {
	attributes := &breed.Attributes

	soft.that(fmt.Sprintf("breed %s name", breed.Id), attributes.Name, gomega.Not(gomega.BeEmpty()))

	if attributes.Life != nil {
		soft.that(fmt.Sprintf("breed %s life", breed.Id), attributes.Life.Min, gomega.BeNumerically("<=", attributes.Life.Max))
	}

	if attributes.MaleWeight != nil {
		soft.that(fmt.Sprintf("breed %s male weight", breed.Id), attributes.MaleWeight.Min, gomega.BeNumerically("<=", attributes.MaleWeight.Max))
	}

	if attributes.FemaleWeight != nil {
		soft.that(fmt.Sprintf("breed %s female weight", breed.Id), attributes.FemaleWeight.Min, gomega.BeNumerically("<=", attributes.FemaleWeight.Max))
	}
}

func (a *BreedsAsserter) ToHaveUniqueIDs() *BreedsAsserter {
	a.step("check breed ids are unique")

	if !decode(&a.base, &a.payload) || !present(&a.base, a.payload.Data) {
		return a
	}

	ids := make([]string, len(a.payload.Data))

	for i := range a.payload.Data {
		ids[i] = a.payload.Data[i].Id
	}

	unique := slices.Collect(set.New[string](ids...).All())

	a.g.ExpectWithOffset(1, unique).To(gomega.HaveLen(len(ids)), "duplicate breed ids in %v", ids)

	return a
}

// BreedAsserter checks a single breed.
type BreedAsserter struct {
	base
	payload *openapi.BreedResponse
}

func ThatBreed(resp *openapi.GetBreedResponse, options ...Option) *BreedAsserter {
	return NewBreedAsserter(gomega.Default, resp, options...)
}

func NewBreedAsserter(g gomega.Gomega, resp *openapi.GetBreedResponse, options ...Option) *BreedAsserter {
	if resp == nil {
		return &BreedAsserter{base: newBase(g, 0, nil, options...)}
	}

	return &BreedAsserter{
		base:    newBase(g, resp.StatusCode(), resp.Body, options...),
		payload: resp.JSON200,
	}
}

func (a *BreedAsserter) ToHaveStatusCode(code int) *BreedAsserter {
	a.statusCode(code)

	return a
}

func (a *BreedAsserter) ToHaveID(id string) *BreedAsserter {
	a.step("check breed id", "expected", id)

	if decode(&a.base, &a.payload) {
		a.g.ExpectWithOffset(1, a.payload.Data.Id).To(gomega.Equal(id))
		a.g.ExpectWithOffset(1, a.payload.Data.Type).To(gomega.Equal(breedType))
	}

	return a
}

func (a *BreedAsserter) ToHaveName() *BreedAsserter {
	a.step("check breed has a name")

	if decode(&a.base, &a.payload) {
		a.g.ExpectWithOffset(1, a.payload.Data.Attributes.Name).NotTo(gomega.BeEmpty(), "breed %s name", a.payload.Data.Id)
	}

	return a
}
