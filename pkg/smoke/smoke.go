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

// Package smoke runs every Dogs API endpoint once through the asserters and
// reports all failures.
package smoke

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/onsi/gomega"

	"github.com/truenvy/dogs-api-api-tests-pet-project/pkg/asserter"
	"github.com/truenvy/dogs-api-api-tests-pet-project/pkg/dogs"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

var (
	// ErrFailed is returned when any check fails.
	ErrFailed = errors.New("smoke checks failed")
)

// UnknownID is well formed but names no resource.
const UnknownID = "00000000-0000-4000-8000-000000000000"

// Runner drives the checks.
type Runner struct {
	client dogs.ClientInterface
	limit  int

	failures []string
	g        gomega.Gomega
}

// New returns a runner that requests limit facts.
func New(client dogs.ClientInterface, limit int) *Runner {
	r := &Runner{
		client: client,
		limit:  limit,
	}

	r.g = gomega.NewGomega(func(message string, _ ...int) {
		r.failures = append(r.failures, message)
	})

	return r
}

// check is a single endpoint check, an error aborts the run.
type check struct {
	name string
	run  func(ctx context.Context) error
}

// Run performs every check, transport errors abort the run, assertion
// failures are collected and returned together.
func (r *Runner) Run(ctx context.Context) error {
	log := log.FromContext(ctx)

	r.failures = nil

	checks := []check{
		{name: "breeds", run: r.breeds},
		{name: "facts", run: r.facts},
		{name: "groups", run: r.groups},
	}

	for _, c := range checks {
		before := len(r.failures)

		if err := c.run(ctx); err != nil {
			return fmt.Errorf("running %s checks: %w", c.name, err)
		}

		log.Info("checks complete", "name", c.name, "failures", len(r.failures)-before)
	}

	if len(r.failures) > 0 {
		return fmt.Errorf("%w:\n%s", ErrFailed, strings.Join(r.failures, "\n"))
	}

	return nil
}

func (r *Runner) breeds(ctx context.Context) error {
	breeds, err := r.client.GetAllBreeds(ctx)
	if err != nil {
		return err
	}

	asserter.NewBreedsAsserter(r.g, breeds).
		ToHaveStatusCode(http.StatusOK).
		ToHaveAtLeastBreeds(1).
		ToHaveBreedType().
		ToHaveNames().
		ToHaveUniqueIDs()

	if breeds.JSON200 == nil || len(breeds.JSON200.Data) == 0 {
		return nil
	}

	id := breeds.JSON200.Data[0].Id

	breed, err := r.client.GetBreedByID(ctx, id)
	if err != nil {
		return err
	}

	asserter.NewBreedAsserter(r.g, breed).
		ToHaveStatusCode(http.StatusOK).
		ToHaveID(id).
		ToHaveName()

	missing, err := r.client.GetBreedByID(ctx, UnknownID)
	if err != nil {
		return err
	}

	asserter.NewErrorAsserter(r.g, missing, missing.Body).
		ToHaveStatusCode(http.StatusNotFound)

	return nil
}

func (r *Runner) facts(ctx context.Context) error {
	facts, err := r.client.GetFacts(ctx)
	if err != nil {
		return err
	}

	asserter.NewFactsAsserter(r.g, facts).
		ToHaveStatusCode(http.StatusOK).
		ToHaveNumberOfFacts(1).
		ToHaveFactsBodyNotNull()

	limited, err := r.client.GetFactsWithLimit(ctx, r.limit)
	if err != nil {
		return err
	}

	asserter.NewFactsAsserter(r.g, limited).
		ToHaveStatusCode(http.StatusOK).
		ToHaveNumberOfFacts(r.limit).
		ToHaveFactsBodyNotNull()

	return nil
}

func (r *Runner) groups(ctx context.Context) error {
	groups, err := r.client.GetAllGroups(ctx)
	if err != nil {
		return err
	}

	asserter.NewGroupsAsserter(r.g, groups).
		ToHaveStatusCode(http.StatusOK).
		ToHaveAtLeastGroups(1).
		ToHaveGroupType().
		ToReferenceBreeds()

	if groups.JSON200 == nil || len(groups.JSON200.Data) == 0 {
		return nil
	}

	id := groups.JSON200.Data[0].Id

	group, err := r.client.GetGroupByID(ctx, id)
	if err != nil {
		return err
	}

	asserter.NewGroupAsserter(r.g, group).
		ToHaveStatusCode(http.StatusOK).
		ToHaveID(id)

	return nil
}
