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

// Package dogstest provides an in-process fake of the Dogs API for tests.
package dogstest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
	"k8s.io/utils/ptr"

	"github.com/truenvy/dogs-api-api-tests-pet-project/pkg/openapi"
)

const (
	// BasePath is where the fake mounts the API, as the real service does.
	BasePath = "/api/v2"

	DefaultPageSize = 4
)

type override struct {
	status int
	body   string
}

// Server is a running fake Dogs API.
type Server struct {
	*httptest.Server

	data      Data
	pageSize  int
	overrides map[string]override
	requests  atomic.Int64
}

// Option customizes a fake server.
type Option func(*Server)

// WithData replaces the served resources.
func WithData(data Data) Option {
	return func(s *Server) {
		s.data = data
	}
}

// WithPageSize sets how many breeds or groups make up a page.
func WithPageSize(size int) Option {
	return func(s *Server) {
		s.pageSize = size
	}
}

// WithOverride serves a canned response for a path below the base path,
// for example "/breeds", regardless of the data.
func WithOverride(path string, status int, body string) Option {
	return func(s *Server) {
		s.overrides[path] = override{status: status, body: body}
	}
}

// NewServer starts a fake server, it is closed when the test ends.
func NewServer(t interface {
	Helper()
	Cleanup(func())
}, options ...Option) *Server {
	t.Helper()

	s := &Server{
		data:      DefaultData(),
		pageSize:  DefaultPageSize,
		overrides: map[string]override{},
	}

	for _, o := range options {
		o(s)
	}

	s.Server = httptest.NewServer(s.Handler())

	t.Cleanup(s.Close)

	return s
}

// BaseURI is the value to configure clients with.
func (s *Server) BaseURI() string {
	return s.URL + BasePath
}

// Requests returns the number of API requests served.
func (s *Server) Requests() int64 {
	return s.requests.Load()
}

// Handler returns the router serving the API.
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()

	router.Route(BasePath, func(r chi.Router) {
		r.Use(s.count, s.override)
		r.Get("/breeds", s.listBreeds)
		r.Get("/breeds/{id}", s.getBreed)
		r.Get("/facts", s.listFacts)
		r.Get("/groups", s.listGroups)
		r.Get("/groups/{id}", s.getGroup)
	})

	return router
}

func (s *Server) count(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.requests.Add(1)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) override(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		o, ok := s.overrides[strings.TrimPrefix(r.URL.Path, BasePath)]
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(o.status)
		_, _ = w.Write([]byte(o.body))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, openapi.ErrorResponse{
		Errors: []openapi.Error{
			{
				Status: ptr.To(strconv.Itoa(status)),
				Title:  ptr.To(http.StatusText(status)),
				Detail: ptr.To(detail),
			},
		},
	})
}

// positiveQuery reads an optional positive integer query parameter.
func positiveQuery(r *http.Request, key string, defaultValue int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, raw)
	}

	return value, nil
}

// paginate returns the bounds of a 1-indexed page and its metadata.
func (s *Server) paginate(r *http.Request, total int) (int, int, *openapi.Meta, error) {
	page, err := positiveQuery(r, "page[number]", 1)
	if err != nil {
		return 0, 0, nil, err
	}

	last := max((total+s.pageSize-1)/s.pageSize, 1)

	pagination := &openapi.Pagination{
		Current: ptr.To(page),
		Last:    ptr.To(last),
		Records: ptr.To(total),
	}

	if page < last {
		pagination.Next = ptr.To(page + 1)
	}

	if page > 1 {
		pagination.Prev = ptr.To(page - 1)
	}

	// Pages past the end are empty.
	start := min((min(page, last+1)-1)*s.pageSize, total)
	end := min(start+s.pageSize, total)

	return start, end, &openapi.Meta{Pagination: pagination}, nil
}

func (s *Server) links(r *http.Request) *openapi.Links {
	self := s.URL + r.URL.RequestURI()

	return &openapi.Links{
		Self:    ptr.To(self),
		Current: ptr.To(self),
	}
}

func (s *Server) listBreeds(w http.ResponseWriter, r *http.Request) {
	start, end, meta, err := s.paginate(r, len(s.data.Breeds))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, openapi.BreedsResponse{
		Data:  append([]openapi.Breed{}, s.data.Breeds[start:end]...),
		Meta:  meta,
		Links: s.links(r),
	})
}

func (s *Server) getBreed(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	for _, breed := range s.data.Breeds {
		if breed.Id == id {
			writeJSON(w, http.StatusOK, openapi.BreedResponse{Data: breed, Links: s.links(r)})
			return
		}
	}

	writeError(w, http.StatusNotFound, fmt.Sprintf("breed %s not found", id))
}

// listFacts returns the first limit facts, one by default.
func (s *Server) listFacts(w http.ResponseWriter, r *http.Request) {
	limit, err := positiveQuery(r, "limit", 1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, openapi.FactsResponse{
		Data:  append([]openapi.Fact{}, s.data.Facts[:min(limit, len(s.data.Facts))]...),
		Links: s.links(r),
	})
}

func (s *Server) listGroups(w http.ResponseWriter, r *http.Request) {
	start, end, meta, err := s.paginate(r, len(s.data.Groups))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, openapi.GroupsResponse{
		Data:  append([]openapi.Group{}, s.data.Groups[start:end]...),
		Meta:  meta,
		Links: s.links(r),
	})
}

func (s *Server) getGroup(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	for _, group := range s.data.Groups {
		if group.Id == id {
			writeJSON(w, http.StatusOK, openapi.GroupResponse{Data: group, Links: s.links(r)})
			return
		}
	}

	writeError(w, http.StatusNotFound, fmt.Sprintf("group %s not found", id))
}
