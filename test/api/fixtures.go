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

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/truenvy/dogs-api-api-tests-pet-project/pkg/dogs"
)

const (
	// MaxFactsLimit bounds generated facts limits, exclusive.
	MaxFactsLimit = 5

	// UnknownID is a well formed identifier no resource has.
	UnknownID = "00000000-0000-4000-8000-000000000000"
)

var (
	ErrNoResources = errors.New("no resources returned")
)

// RandomFactsLimit picks a limit in [1, MaxFactsLimit).
func RandomFactsLimit(faker *gofakeit.Faker) int {
	return faker.Number(1, MaxFactsLimit-1)
}

// FirstBreedID returns the id of the first listed breed.
func FirstBreedID(ctx context.Context, client dogs.ClientInterface) (string, error) {
	resp, err := client.GetAllBreeds(ctx)
	if err != nil {
		return "", err
	}

	if resp.StatusCode() != http.StatusOK || resp.JSON200 == nil || len(resp.JSON200.Data) == 0 {
		return "", fmt.Errorf("%w: breeds, status %d", ErrNoResources, resp.StatusCode())
	}

	return resp.JSON200.Data[0].Id, nil
}

// FirstGroupID returns the id of the first listed group.
func FirstGroupID(ctx context.Context, client dogs.ClientInterface) (string, error) {
	resp, err := client.GetAllGroups(ctx)
	if err != nil {
		return "", err
	}

	if resp.StatusCode() != http.StatusOK || resp.JSON200 == nil || len(resp.JSON200.Data) == 0 {
		return "", fmt.Errorf("%w: groups, status %d", ErrNoResources, resp.StatusCode())
	}

	return resp.JSON200.Data[0].Id, nil
}
