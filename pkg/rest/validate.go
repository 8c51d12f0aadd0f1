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
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/go-chi/chi/v5"

	"github.com/truenvy/dogs-api-api-tests-pet-project/pkg/openapi"
)

var (
	ErrResponseValidation = errors.New("response does not match the openapi document")

	ErrUnknownOperation = errors.New("no operation in the openapi document matches the request")
)

// Validator checks API responses against the embedded OpenAPI document.
// Operations are located with a chi route tree built from the document's
// paths, which share chi's {param} template syntax.
type Validator struct {
	doc      *openapi3.T
	basePath string
	mux      *chi.Mux
}

// NewValidator returns a validator for an API served under baseURI.
func NewValidator(baseURI string) (*Validator, error) {
	doc, err := openapi.GetSwagger()
	if err != nil {
		return nil, err
	}

	u, err := url.Parse(baseURI)
	if err != nil {
		return nil, fmt.Errorf("parsing base uri: %w", err)
	}

	mux := chi.NewRouter()

	noop := func(http.ResponseWriter, *http.Request) {}

	for path, item := range doc.Paths.Map() {
		for method := range item.Operations() {
			mux.MethodFunc(method, path, noop)
		}
	}

	return &Validator{
		doc:      doc,
		basePath: strings.TrimSuffix(u.Path, "/"),
		mux:      mux,
	}, nil
}

// route resolves the document operation for a request.
func (v *Validator) route(req *http.Request) (*routers.Route, map[string]string, error) {
	path := strings.TrimPrefix(req.URL.Path, v.basePath)
	if path == "" {
		path = "/"
	}

	rctx := chi.NewRouteContext()

	if !v.mux.Match(rctx, req.Method, path) {
		return nil, nil, fmt.Errorf("%w: %s %s", ErrUnknownOperation, req.Method, req.URL.Path)
	}

	pattern := rctx.RoutePattern()

	item := v.doc.Paths.Find(pattern)
	if item == nil {
		return nil, nil, fmt.Errorf("%w: %s %s", ErrUnknownOperation, req.Method, pattern)
	}

	params := make(map[string]string, len(rctx.URLParams.Keys))

	for i, key := range rctx.URLParams.Keys {
		params[key] = rctx.URLParams.Values[i]
	}

	route := &routers.Route{
		Spec:      v.doc,
		Path:      pattern,
		PathItem:  item,
		Method:    req.Method,
		Operation: item.GetOperation(req.Method),
	}

	return route, params, nil
}

// Validate checks a response body and headers against the operation that
// served the request.  Undocumented status codes are not an error here, status
// checks belong to the tests.
func (v *Validator) Validate(ctx context.Context, req *http.Request, status int, header http.Header, body []byte) error {
	route, params, err := v.route(req)
	if err != nil {
		return err
	}

	input := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: &openapi3filter.RequestValidationInput{
			Request:    req,
			PathParams: params,
			Route:      route,
		},
		Status: status,
		Header: header,
		Body:   io.NopCloser(bytes.NewReader(body)),
		Options: &openapi3filter.Options{
			MultiError: true,
		},
	}

	if err := openapi3filter.ValidateResponse(ctx, input); err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrResponseValidation, req.Method, req.URL.Path, err)
	}

	return nil
}

// validatingTransport fails any round trip whose response does not conform
// to the OpenAPI document.
type validatingTransport struct {
	next      http.RoundTripper
	validator *Validator
}

func (t *validatingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp.Body = io.NopCloser(bytes.NewReader(body))

	if err := t.validator.Validate(req.Context(), req, resp.StatusCode, resp.Header, body); err != nil {
		return nil, err
	}

	return resp, nil
}
