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

package openapi

import (
	_ "embed"
	"fmt"
	"net/url"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed server.spec.yaml
var rawSpec []byte

// RawSpec returns the raw OpenAPI document describing the Dogs API.
func RawSpec() []byte {
	return rawSpec
}

// GetSwagger returns the parsed Dogs API document.  The document is loaded
// afresh on every call, callers that mutate it may do so freely.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.ReadFromURIFunc = func(_ *openapi3.Loader, u *url.URL) ([]byte, error) {
		return nil, fmt.Errorf("%w: external reference %s", ErrSpecReference, u)
	}

	swagger, err := loader.LoadFromData(RawSpec())
	if err != nil {
		return nil, fmt.Errorf("loading openapi document: %w", err)
	}

	return swagger, nil
}
