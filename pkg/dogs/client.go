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

package dogs

import (
	"context"
	"fmt"

	"k8s.io/utils/ptr"

	"github.com/truenvy/dogs-api-api-tests-pet-project/pkg/config"
	"github.com/truenvy/dogs-api-api-tests-pet-project/pkg/openapi"
	"github.com/truenvy/dogs-api-api-tests-pet-project/pkg/rest"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// Client calls the Dogs API breeds, facts and groups endpoints.  It returns
// responses as received, judging them is left to the caller.
type Client struct {
	client openapi.ClientWithResponsesInterface
}

// Ensure the interface is implemented.
var _ ClientInterface = &Client{}

// New returns a client configured from the project configuration.
func New(config *config.Configuration, options ...rest.Option) (*Client, error) {
	client, err := rest.Build(rest.NewBuilder(config, options...), openapi.NewClientWithResponses)
	if err != nil {
		return nil, err
	}

	return NewWithClient(client), nil
}

// NewWithClient wraps an existing generated client.
func NewWithClient(client openapi.ClientWithResponsesInterface) *Client {
	return &Client{
		client: client,
	}
}

func (c *Client) GetAllBreeds(ctx context.Context) (*openapi.GetBreedsResponse, error) {
	log.FromContext(ctx).Info("get all breeds")

	resp, err := c.client.GetBreedsWithResponse(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("getting all breeds: %w", err)
	}

	return resp, nil
}

func (c *Client) GetBreedsPage(ctx context.Context, page int) (*openapi.GetBreedsResponse, error) {
	log.FromContext(ctx).Info("get breeds page", "page", page)

	params := &openapi.GetBreedsParams{
		PageNumber: ptr.To(page),
	}

	resp, err := c.client.GetBreedsWithResponse(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("getting breeds page %d: %w", page, err)
	}

	return resp, nil
}

func (c *Client) GetBreedByID(ctx context.Context, id string) (*openapi.GetBreedResponse, error) {
	log.FromContext(ctx).Info("get breed by id", "id", id)

	resp, err := c.client.GetBreedWithResponse(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting breed %s: %w", id, err)
	}

	return resp, nil
}

func (c *Client) GetFacts(ctx context.Context) (*openapi.GetFactsResponse, error) {
	log.FromContext(ctx).Info("get facts")

	resp, err := c.client.GetFactsWithResponse(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("getting facts: %w", err)
	}

	return resp, nil
}

func (c *Client) GetFactsWithLimit(ctx context.Context, limit int) (*openapi.GetFactsResponse, error) {
	log.FromContext(ctx).Info("get facts with the limit", "limit", limit)

	params := &openapi.GetFactsParams{
		Limit: ptr.To(limit),
	}

	resp, err := c.client.GetFactsWithResponse(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("getting %d facts: %w", limit, err)
	}

	return resp, nil
}

func (c *Client) GetAllGroups(ctx context.Context) (*openapi.GetGroupsResponse, error) {
	log.FromContext(ctx).Info("get all groups")

	resp, err := c.client.GetGroupsWithResponse(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("getting all groups: %w", err)
	}

	return resp, nil
}

func (c *Client) GetGroupByID(ctx context.Context, id string) (*openapi.GetGroupResponse, error) {
	log.FromContext(ctx).Info("get group by id", "id", id)

	resp, err := c.client.GetGroupWithResponse(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting group %s: %w", id, err)
	}

	return resp, nil
}
