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

package rest_test

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"

	"github.com/truenvy/dogs-api-api-tests-pet-project/pkg/config"
	"github.com/truenvy/dogs-api-api-tests-pet-project/pkg/dogstest"
	"github.com/truenvy/dogs-api-api-tests-pet-project/pkg/openapi"
	"github.com/truenvy/dogs-api-api-tests-pet-project/pkg/rest"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

var errConstructor = errors.New("constructor failed")

// recordingTransport remembers the headers of every request it forwards.
type recordingTransport struct {
	lock    sync.Mutex
	headers []http.Header
}

func (t *recordingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.lock.Lock()
	t.headers = append(t.headers, req.Header.Clone())
	t.lock.Unlock()

	return http.DefaultTransport.RoundTrip(req)
}

func testConfig(server *dogstest.Server) *config.Configuration {
	c := config.Defaults()
	c.BaseURI = server.BaseURI()

	return &c
}

func TestBuildUsesBaseURI(t *testing.T) {
	t.Parallel()

	server := dogstest.NewServer(t)

	client, err := rest.Build(rest.NewBuilder(testConfig(server)), openapi.NewClientWithResponses)
	require.NoError(t, err)

	resp, err := client.GetBreedsWithResponse(t.Context(), nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	require.NotNil(t, resp.JSON200)
	require.Len(t, resp.JSON200.Data, dogstest.DefaultPageSize)
	require.EqualValues(t, 1, server.Requests())
}

func TestBuildConstructorError(t *testing.T) {
	t.Parallel()

	c := config.Defaults()

	constructor := func(string, ...openapi.ClientOption) (*openapi.Client, error) {
		return nil, errConstructor
	}

	_, err := rest.Build(rest.NewBuilder(&c), constructor)
	require.ErrorIs(t, err, errConstructor)
}

func TestTraceHeaders(t *testing.T) {
	t.Parallel()

	server := dogstest.NewServer(t)
	recorder := &recordingTransport{}

	client, err := rest.Build(rest.NewBuilder(testConfig(server), rest.WithTransport(recorder)), openapi.NewClientWithResponses)
	require.NoError(t, err)

	_, err = client.GetFactsWithResponse(t.Context(), &openapi.GetFactsParams{Limit: ptr.To(2)})
	require.NoError(t, err)

	_, err = client.GetGroupWithResponse(t.Context(), dogstest.ToyGroupID)
	require.NoError(t, err)

	require.Len(t, recorder.headers, 2)

	pattern := regexp.MustCompile("^00-[0-9a-f]{32}-[0-9a-f]{16}-01$")

	first := recorder.headers[0].Get("Traceparent")
	second := recorder.headers[1].Get("Traceparent")

	require.Regexp(t, pattern, first)
	require.Regexp(t, pattern, second)
	require.NotEqual(t, rest.TraceID(first), rest.TraceID(second))
	require.Equal(t, strings.Split(first, "-")[1], rest.TraceID(first))
	require.NotEmpty(t, recorder.headers[0].Get("Tracestate"))
}

func TestValidationRejectsMismatch(t *testing.T) {
	t.Parallel()

	server := dogstest.NewServer(t, dogstest.WithOverride("/breeds", http.StatusOK, `{"items":[]}`))

	client, err := rest.Build(rest.NewBuilder(testConfig(server)), openapi.NewClientWithResponses)
	require.NoError(t, err)

	_, err = client.GetBreedsWithResponse(t.Context(), nil)
	require.ErrorIs(t, err, rest.ErrResponseValidation)
}

func TestValidationDisabled(t *testing.T) {
	t.Parallel()

	server := dogstest.NewServer(t, dogstest.WithOverride("/breeds", http.StatusOK, `{"items":[]}`))

	c := testConfig(server)
	c.ValidateResponses = false

	client, err := rest.Build(rest.NewBuilder(c), openapi.NewClientWithResponses)
	require.NoError(t, err)

	resp, err := client.GetBreedsWithResponse(t.Context(), nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	require.Empty(t, resp.JSON200.Data)
}

func TestValidationIgnoresUndocumentedStatus(t *testing.T) {
	t.Parallel()

	server := dogstest.NewServer(t, dogstest.WithOverride("/facts", http.StatusInternalServerError, `{"errors":[]}`))

	client, err := rest.Build(rest.NewBuilder(testConfig(server)), openapi.NewClientWithResponses)
	require.NoError(t, err)

	resp, err := client.GetFactsWithResponse(t.Context(), nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode())
	require.Nil(t, resp.JSON200)
}

func TestLogging(t *testing.T) {
	t.Parallel()

	server := dogstest.NewServer(t)

	var (
		lock  sync.Mutex
		lines []string
	)

	logger := funcr.New(func(prefix, args string) {
		lock.Lock()
		defer lock.Unlock()

		lines = append(lines, args)
	}, funcr.Options{})

	ctx := log.IntoContext(context.Background(), logger)

	c := testConfig(server)
	c.Logging = true

	client, err := rest.Build(rest.NewBuilder(c), openapi.NewClientWithResponses)
	require.NoError(t, err)

	resp, err := client.GetBreedWithResponse(ctx, dogstest.PugID)
	require.NoError(t, err)
	require.Equal(t, "Pug", resp.JSON200.Data.Attributes.Name)

	lock.Lock()
	defer lock.Unlock()

	require.Len(t, lines, 2)
	require.Contains(t, lines[0], `"msg"="request"`)
	require.Contains(t, lines[0], dogstest.PugID)
	require.Contains(t, lines[1], `"msg"="response"`)
	require.Contains(t, lines[1], `"status"=200`)
	require.Contains(t, lines[1], "Pug")
}

func TestNoLoggingByDefault(t *testing.T) {
	t.Parallel()

	server := dogstest.NewServer(t)

	var calls int

	logger := funcr.New(func(string, string) { calls++ }, funcr.Options{})
	ctx := log.IntoContext(context.Background(), logger)

	client, err := rest.Build(rest.NewBuilder(testConfig(server)), openapi.NewClientWithResponses)
	require.NoError(t, err)

	_, err = client.GetGroupsWithResponse(ctx, nil)
	require.NoError(t, err)
	require.Zero(t, calls)
}
