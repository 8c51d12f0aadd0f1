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

//go:generate mockgen -source=interfaces.go -destination=mock/interfaces.go -package=mock

package dogs

import (
	"context"

	"github.com/truenvy/dogs-api-api-tests-pet-project/pkg/openapi"
)

// ClientInterface is the set of Dogs API calls tests depend on.
type ClientInterface interface {
	// GetAllBreeds returns the first page of breeds.
	GetAllBreeds(ctx context.Context) (*openapi.GetBreedsResponse, error)
	// GetBreedsPage returns a page of breeds, pages start at 1.
	GetBreedsPage(ctx context.Context, page int) (*openapi.GetBreedsResponse, error)
	// GetBreedByID returns a single breed.
	GetBreedByID(ctx context.Context, id string) (*openapi.GetBreedResponse, error)
	// GetFacts returns facts using the service's default limit.
	GetFacts(ctx context.Context) (*openapi.GetFactsResponse, error)
	// GetFactsWithLimit returns up to limit facts.
	GetFactsWithLimit(ctx context.Context, limit int) (*openapi.GetFactsResponse, error)
	// GetAllGroups returns the first page of breed groups.
	GetAllGroups(ctx context.Context) (*openapi.GetGroupsResponse, error)
	// GetGroupByID returns a single breed group.
	GetGroupByID(ctx context.Context, id string) (*openapi.GetGroupResponse, error)
}
