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
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/truenvy/dogs-api-api-tests-pet-project/pkg/config"
)

// envFiles are tried relative to the suite directories.
//
//nolint:gochecknoglobals
var envFiles = []string{
	"../../../test/.env", // From test/api/suites directory
	"../../../.env",      // From test/contracts/consumer directories
}

type TestConfig struct {
	*config.Provider

	TestTimeout     time.Duration
	SkipIntegration bool
}

// LoadTestConfig loads configuration from environment variables and .env files.
// The underlying provider is shared by every caller in the process.
func LoadTestConfig() (*TestConfig, error) {
	provider, err := config.Default(envFiles...)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	testTimeout, err := getDurationWithDefault("TEST_TIMEOUT", 5*time.Minute)
	if err != nil {
		return nil, err
	}

	skipIntegration, err := getBoolWithDefault("SKIP_INTEGRATION", false)
	if err != nil {
		return nil, err
	}

	return &TestConfig{
		Provider:        provider,
		TestTimeout:     testTimeout,
		SkipIntegration: skipIntegration,
	}, nil
}

// getDurationWithDefault gets a duration from environment variable or returns default.
func getDurationWithDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", config.ErrInvalidConfiguration, key, err)
	}

	return duration, nil
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %w", config.ErrInvalidConfiguration, key, err)
	}

	return boolValue, nil
}
