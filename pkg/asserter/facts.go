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
	"github.com/onsi/gomega"

	"github.com/truenvy/dogs-api-api-tests-pet-project/pkg/openapi"
)

// FactsAsserter checks a facts listing.
type FactsAsserter struct {
	base
	payload *openapi.FactsResponse
}

// ThatFacts starts a chain using the default Gomega instance.
func ThatFacts(resp *openapi.GetFactsResponse, options ...Option) *FactsAsserter {
	return NewFactsAsserter(gomega.Default, resp, options...)
}

// NewFactsAsserter starts a chain reporting failures through g.
func NewFactsAsserter(g gomega.Gomega, resp *openapi.GetFactsResponse, options ...Option) *FactsAsserter {
	if resp == nil {
		return &FactsAsserter{base: newBase(g, 0, nil, options...)}
	}

	return &FactsAsserter{
		base:    newBase(g, resp.StatusCode(), resp.Body, options...),
		payload: resp.JSON200,
	}
}

func (a *FactsAsserter) ToHaveStatusCode(code int) *FactsAsserter {
	a.statusCode(code)

	return a
}

func (a *FactsAsserter) ToHaveNumberOfFacts(n int) *FactsAsserter {
	a.step("check number of facts", "expected", n)

	if decode(&a.base, &a.payload) && present(&a.base, a.payload.Data) {
		a.g.ExpectWithOffset(1, a.payload.Data).To(gomega.HaveLen(n), "number of facts")
	}

	return a
}

// ToHaveFactsBodyNotNull checks every item is a fact and carries a body,
// reporting both checks together.
func (a *FactsAsserter) ToHaveFactsBodyNotNull() *FactsAsserter {
	a.step("check facts have a body")

	if !decode(&a.base, &a.payload) || !present(&a.base, a.payload.Data) {
		return a
	}

	var soft softAssertions

	soft.that("every item is a fact", a.payload.Data, allOf(gomega.HaveField("Type", "fact")))
	soft.that("every fact has a body", a.payload.Data, allOf(gomega.HaveField("Attributes.Body", gomega.Not(gomega.BeNil()))))
	soft.assertAll(a.g)

	return a
}
