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
	"errors"
	"regexp"
)

var (
	ErrInvalidResourceID = errors.New("invalid resource id: must be a lower case hyphenated UUID")

	ErrSpecReference = errors.New("openapi document must be self contained")
)

var resourceIDValidationRegex = regexp.MustCompile("^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$")

// ResourceID is the identifier the Dogs API gives breeds, facts and groups.
type ResourceID struct {
	Value string
}

func (r *ResourceID) UnmarshalText(text []byte) error {
	if !resourceIDValidationRegex.Match(text) {
		return ErrInvalidResourceID
	}

	*r = ResourceID{
		Value: string(text),
	}

	return nil
}

func (r ResourceID) MarshalText() ([]byte, error) {
	return []byte(r.Value), nil
}

func (r ResourceID) String() string {
	return r.Value
}

// ParseResourceID validates and wraps a raw identifier.
func ParseResourceID(s string) (ResourceID, error) {
	var id ResourceID

	if err := id.UnmarshalText([]byte(s)); err != nil {
		return ResourceID{}, err
	}

	return id, nil
}
