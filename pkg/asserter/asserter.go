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

// Package asserter provides fluent assertion chains over Dogs API responses.
// Each chain evaluates Gomega matchers, logs the step it checks and returns
// itself so checks can be composed in a single expression.
package asserter

import (
	"encoding/json"

	"github.com/go-logr/logr"
	"github.com/onsi/gomega"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// response is the subset of a generated response wrapper an asserter needs.
type response interface {
	StatusCode() int
}

// statusOf returns the status of a possibly nil response wrapper, a nil
// wrapper reports zero and fails the first check that needs it.
func statusOf[T any, R interface {
	*T
	response
}](resp R) int {
	if resp == nil {
		return 0
	}

	return resp.StatusCode()
}

// Option customizes an asserter.
type Option func(*base)

// WithLogger overrides the step logger.
func WithLogger(logger logr.Logger) Option {
	return func(b *base) {
		b.logger = logger
	}
}

// base holds what every asserter shares.
type base struct {
	g      gomega.Gomega
	logger logr.Logger
	status int
	body   []byte
}

func newBase(g gomega.Gomega, status int, body []byte, options ...Option) base {
	b := base{
		g:      g,
		logger: log.Log.WithName("asserter"),
		status: status,
		body:   body,
	}

	for _, o := range options {
		o(&b)
	}

	return b
}

func (b *base) step(msg string, keysAndValues ...any) {
	b.logger.Info(msg, keysAndValues...)
}

func (b *base) statusCode(code int) {
	b.step("check status code", "expected", code, "actual", b.status)

	b.g.ExpectWithOffset(2, b.status).To(gomega.Equal(code), "unexpected status code, body: %s", b.body)
}

// decode lazily unmarshals the response body into payload, a body that cannot
// be decoded fails the assertion.
func decode[T any](b *base, payload **T) bool {
	if *payload != nil {
		return true
	}

	var value T

	err := json.Unmarshal(b.body, &value)
	if !b.g.ExpectWithOffset(2, err).NotTo(gomega.HaveOccurred(), "decoding %T from body %q", value, b.body) {
		return false
	}

	*payload = &value

	return true
}

// present fails when a decoded listing carries no data member at all, an
// empty list is still present.
func present[T any](b *base, data []T) bool {
	return b.g.ExpectWithOffset(2, data).NotTo(gomega.BeNil(), "no data in body %q", b.body)
}
