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

// Package api provides integration test scaffolding for the Dogs API.
//
// Tests reach the service through the dogs client, the same client the smoke
// binary uses, so every request carries W3C trace context and, when enabled,
// is logged and validated against the embedded OpenAPI document.  Failed
// requests can be correlated with server logs through the trace ID printed by
// the logging transport.
//
// Configuration is read once per process through the shared provider, which
// also owns the seeded fake data generator used to pick request parameters.
package api
