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
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

const (
	DefaultBaseURI        = "https://dogapi.dog/api/v2"
	DefaultRequestTimeout = 30 * time.Second

	EnvBaseURI           = "DOGS_BASE_URI"
	EnvLogging           = "DOGS_LOGGING"
	EnvRequestTimeout    = "DOGS_REQUEST_TIMEOUT"
	EnvValidateResponses = "DOGS_VALIDATE_RESPONSES"
	EnvFakerSeed         = "DOGS_FAKER_SEED"
)

var ErrInvalidConfiguration = errors.New("invalid configuration")

// Configuration is the read-only project configuration shared by the API
// client and the tests that drive it.
type Configuration struct {
	// BaseURI is the root of the Dogs API, including the version prefix.
	BaseURI string
	// Logging enables request and response logging for every call.
	Logging bool
	// RequestTimeout bounds a single HTTP round trip.
	RequestTimeout time.Duration
	// ValidateResponses checks every response against the OpenAPI document.
	ValidateResponses bool
	// FakerSeed seeds the fake data generator, zero picks a random seed.
	FakerSeed uint64
}

// Defaults returns the configuration used when nothing is overridden.
func Defaults() Configuration {
	return Configuration{
		BaseURI:           DefaultBaseURI,
		RequestTimeout:    DefaultRequestTimeout,
		ValidateResponses: true,
	}
}

// Load reads configuration from the environment.  Any env files that exist
// are loaded first, they never override variables already set in the process
// environment.
func Load(envFiles ...string) (*Configuration, error) {
	if err := loadEnvFiles(envFiles...); err != nil {
		return nil, err
	}

	config := Defaults()

	if value := os.Getenv(EnvBaseURI); value != "" {
		config.BaseURI = value
	}

	var err error

	if config.Logging, err = getBool(EnvLogging, config.Logging); err != nil {
		return nil, err
	}

	if config.RequestTimeout, err = getDuration(EnvRequestTimeout, config.RequestTimeout); err != nil {
		return nil, err
	}

	if config.ValidateResponses, err = getBool(EnvValidateResponses, config.ValidateResponses); err != nil {
		return nil, err
	}

	if config.FakerSeed, err = getUint(EnvFakerSeed, config.FakerSeed); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// AddFlags registers command line overrides, the current values are used as
// flag defaults so flags take precedence over the environment.
func (c *Configuration) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&c.BaseURI, "base-uri", c.BaseURI, "Dogs API base URI.")
	f.BoolVar(&c.Logging, "logging", c.Logging, "Log every request and response.")
	f.DurationVar(&c.RequestTimeout, "request-timeout", c.RequestTimeout, "Timeout for a single API request.")
	f.BoolVar(&c.ValidateResponses, "validate-responses", c.ValidateResponses, "Validate responses against the OpenAPI document.")
	f.Uint64Var(&c.FakerSeed, "faker-seed", c.FakerSeed, "Seed for generated test data, 0 for random.")
}

// Validate checks the configuration is usable.
func (c *Configuration) Validate() error {
	u, err := url.Parse(c.BaseURI)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidConfiguration, EnvBaseURI, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: %s: scheme must be http or https, got %q", ErrInvalidConfiguration, EnvBaseURI, u.Scheme)
	}

	if u.Host == "" {
		return fmt.Errorf("%w: %s: host is required", ErrInvalidConfiguration, EnvBaseURI)
	}

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("%w: %s: must be positive, got %s", ErrInvalidConfiguration, EnvRequestTimeout, c.RequestTimeout)
	}

	return nil
}

func loadEnvFiles(paths ...string) error {
	var found []string

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			found = append(found, path)
		}
	}

	// Missing files are fine, CI sets variables directly.
	if len(found) == 0 {
		return nil
	}

	if err := godotenv.Load(found...); err != nil {
		return fmt.Errorf("loading env files %v: %w", found, err)
	}

	return nil
}

func getBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrInvalidConfiguration, key, err)
	}

	return boolValue, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalidConfiguration, key, err)
	}

	return duration, nil
}

func getUint(key string, defaultValue uint64) (uint64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	uintValue, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalidConfiguration, key, err)
	}

	return uintValue, nil
}
