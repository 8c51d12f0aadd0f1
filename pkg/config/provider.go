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

package config

import (
	"sync"

	"github.com/brianvoe/gofakeit/v7"
)

// Provider holds the process-wide configuration together with the fake data
// generator seeded from it.
type Provider struct {
	config Configuration
	faker  *gofakeit.Faker
}

// NewProvider returns a provider over a copy of the given configuration.
func NewProvider(config *Configuration) *Provider {
	return &Provider{
		config: *config,
		faker:  gofakeit.New(config.FakerSeed),
	}
}

// Config returns a copy of the configuration, callers cannot mutate the
// provider's view.
func (p *Provider) Config() Configuration {
	return p.config
}

// Faker returns the shared fake data generator.  It is not safe for
// concurrent use.
func (p *Provider) Faker() *gofakeit.Faker {
	return p.faker
}

//nolint:gochecknoglobals
var (
	defaultOnce     sync.Once
	defaultProvider *Provider
	defaultErr      error
)

// Default loads the configuration on first use and returns the same provider
// for the rest of the process lifetime.
func Default(envFiles ...string) (*Provider, error) {
	defaultOnce.Do(func() {
		config, err := Load(envFiles...)
		if err != nil {
			defaultErr = err
			return
		}

		defaultProvider = NewProvider(config)
	})

	return defaultProvider, defaultErr
}
