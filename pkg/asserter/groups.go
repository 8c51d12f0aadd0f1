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

const groupType = "group"

// GroupsAsserter checks a groups listing.
type GroupsAsserter struct {
	base
	payload *openapi.GroupsResponse
}

func ThatGroups(resp *openapi.GetGroupsResponse, options ...Option) *GroupsAsserter {
	return NewGroupsAsserter(gomega.Default, resp, options...)
}

func NewGroupsAsserter(g gomega.Gomega, resp *openapi.GetGroupsResponse, options ...Option) *GroupsAsserter {
	if resp == nil {
		return &GroupsAsserter{base: newBase(g, 0, nil, options...)}
	}

	return &GroupsAsserter{
		base:    newBase(g, resp.StatusCode(), resp.Body, options...),
		payload: resp.JSON200,
	}
}

func (a *GroupsAsserter) ToHaveStatusCode(code int) *GroupsAsserter {
	a.statusCode(code)

	return a
}

func (a *GroupsAsserter) ToHaveAtLeastGroups(n int) *GroupsAsserter {
	a.step("check minimum number of groups", "expected", n)

	if decode(&a.base, &a.payload) && present(&a.base, a.payload.Data) {
		a.g.ExpectWithOffset(1, len(a.payload.Data)).To(gomega.BeNumerically(">=", n), "number of groups")
	}

	return a
}

func (a *GroupsAsserter) ToHaveGroupType() *GroupsAsserter {
	a.step("check every item is a group")

	if decode(&a.base, &a.payload) && present(&a.base, a.payload.Data) {
		a.g.ExpectWithOffset(1, a.payload.Data).To(allOf(gomega.HaveField("Type", groupType)))
	}

	return a
}

// ToReferenceBreeds checks every group relates to breeds only, by well formed
// identifiers.
func (a *GroupsAsserter) ToReferenceBreeds() *GroupsAsserter {
	a.step("check groups reference breeds")

	if !decode(&a.base, &a.payload) || !present(&a.base, a.payload.Data) {
		return a
	}

	var soft softAssertions

	for i := range a.payload.Data {
		checkGroupReferences(&soft, &a.payload.Data[i])
	}

	soft.assertAll(a.g)

	return a
}

func checkGroupReferences(soft *softAssertions, group *openapi.Group) {
	if group.Relationships == nil || group.Relationships.Breeds == nil {
		soft.fail("group %s has no breeds relationship", group.Id)
		return
	}

	references := group.Relationships.Breeds.Data

	types := make([]string, len(references))

	for i, reference := range references {
		types[i] = reference.Type

		_, err := openapi.ParseResourceID(reference.Id)
		soft.that(fmt.Sprintf("group %s breed reference %q", group.Id, reference.Id), err, gomega.Succeed())
	}

	foreign := slices.Sorted(set.New[string](types...).Difference(set.New[string](breedType)).All())

	soft.that(fmt.Sprintf("group %s reference types", group.Id), foreign, gomega.BeEmpty())
}

// GroupAsserter checks a single group.
type GroupAsserter struct {
	base
	payload *openapi.GroupResponse
}

func ThatGroup(resp *openapi.GetGroupResponse, options ...Option) *GroupAsserter {
	return NewGroupAsserter(gomega.Default, resp, options...)
}

func NewGroupAsserter(g gomega.Gomega, resp *openapi.GetGroupResponse, options ...Option) *GroupAsserter {
	if resp == nil {
		return &GroupAsserter{base: newBase(g, 0, nil, options...)}
	}

	return &GroupAsserter{
		base:    newBase(g, resp.StatusCode(), resp.Body, options...),
		payload: resp.JSON200,
	}
}

func (a *GroupAsserter) ToHaveStatusCode(code int) *GroupAsserter {
	a.statusCode(code)

	return a
}

func (a *GroupAsserter) ToHaveID(id string) *GroupAsserter {
	a.step("check group id", "expected", id)

	if decode(&a.base, &a.payload) {
		a.g.ExpectWithOffset(1, a.payload.Data.Id).To(gomega.Equal(id))
		a.g.ExpectWithOffset(1, a.payload.Data.Type).To(gomega.Equal(groupType))
	}

	return a
}
