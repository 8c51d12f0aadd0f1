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
	"github.com/brianvoe/gofakeit/v7"

	"github.com/truenvy/dogs-api-api-tests-pet-project/pkg/dogs"
	"github.com/truenvy/dogs-api-api-tests-pet-project/pkg/rest"
)

// Base is embedded state shared by every test: the configuration, a Dogs API
// client built from it and the fake data generator.
type Base struct {
	Config *TestConfig
	Client dogs.ClientInterface
	Faker  *gofakeit.Faker
}

// NewBase builds the shared test state, options customize the client's
// transport, for example to point at a fake server.
func NewBase(config *TestConfig, options ...rest.Option) (*Base, error) {
	configuration := config.Config()

	client, err := dogs.New(&configuration, options...)
	if err != nil {
		return nil, err
	}

	return &Base{
		Config: config,
		Client: client,
		Faker:  config.Faker(),
	}, nil
}
