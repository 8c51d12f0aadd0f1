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

	"k8s.io/utils/ptr"

	"github.com/truenvy/dogs-api-api-tests-pet-project/pkg/openapi"
)

// ErrorAsserter checks an error response of any operation.
type ErrorAsserter struct {
	base
	payload *openapi.ErrorResponse
}

func ThatError[T any, R interface {
	*T
	response
}](resp R, body []byte, options ...Option) *ErrorAsserter {
	return NewErrorAsserter[T, R](gomega.Default, resp, body, options...)
}

// NewErrorAsserter checks the error body of any response wrapper.  Body is
// passed separately as the wrappers only share their status accessors.
func NewErrorAsserter[T any, R interface {
	*T
	response
}](g gomega.Gomega, resp R, body []byte, options ...Option) *ErrorAsserter {
	return &ErrorAsserter{
		base: newBase(g, statusOf[T, R](resp), body, options...),
	}
}

func (a *ErrorAsserter) ToHaveStatusCode(code int) *ErrorAsserter {
	a.statusCode(code)

	return a
}

func (a *ErrorAsserter) ToHaveErrorTitle(title string) *ErrorAsserter {
	a.step("check error title", "expected", title)

	if decode(&a.base, &a.payload) {
		a.g.ExpectWithOffset(1, a.payload.Errors).To(gomega.ContainElement(gomega.HaveField("Title", gomega.Equal(ptr.To(title)))), "error titles")
	}

	return a
}
