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

package rest

import (
	"fmt"
	"net/http"

	"github.com/truenvy/dogs-api-api-tests-pet-project/pkg/config"
	"github.com/truenvy/dogs-api-api-tests-pet-project/pkg/openapi"
)

// Builder applies the project configuration to generated API clients: base
// URI, timeouts, trace headers, and optional logging and response validation.
type Builder struct {
	config    config.Configuration
	transport http.RoundTripper
}

// Option customizes a builder.
type Option func(*Builder)

// WithTransport replaces the transport used for the network round trip,
// the builder's own transports are layered on top of it.
func WithTransport(transport http.RoundTripper) Option {
	return func(b *Builder) {
		b.transport = transport
	}
}

// NewBuilder returns a builder for the given configuration.
func NewBuilder(config *config.Configuration, options ...Option) *Builder {
	b := &Builder{
		config:    *config,
		transport: http.DefaultTransport,
	}

	for _, o := range options {
		o(b)
	}

	return b
}

// HTTPClient returns a client with the transport chain the configuration
// asks for.
func (b *Builder) HTTPClient() (*http.Client, error) {
	transport := b.transport

	if b.config.ValidateResponses {
		validator, err := NewValidator(b.config.BaseURI)
		if err != nil {
			return nil, err
		}

		transport = &validatingTransport{
			next:      transport,
			validator: validator,
		}
	}

	if b.config.Logging {
		transport = &loggingTransport{
			next: transport,
		}
	}

	transport = &traceTransport{
		next: transport,
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   b.config.RequestTimeout,
	}

	return client, nil
}

// Build creates a generated client against the configured base URI, the
// constructor is a generated one such as openapi.NewClientWithResponses.
func Build[T any](b *Builder, constructor func(server string, opts ...openapi.ClientOption) (T, error), opts ...openapi.ClientOption) (T, error) {
	var zero T

	client, err := b.HTTPClient()
	if err != nil {
		return zero, err
	}

	opts = append([]openapi.ClientOption{openapi.WithHTTPClient(client)}, opts...)

	t, err := constructor(b.config.BaseURI, opts...)
	if err != nil {
		return zero, fmt.Errorf("building api client: %w", err)
	}

	return t, nil
}
