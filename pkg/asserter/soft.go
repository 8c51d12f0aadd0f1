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

package asserter

import (
	"fmt"
	"strings"

	"github.com/onsi/gomega"
	"github.com/onsi/gomega/types"
)

// softAssertions evaluates matchers without failing, then fails once with
// every collected message.
type softAssertions struct {
	failures []string
}

func (s *softAssertions) that(description string, actual any, matcher types.GomegaMatcher) {
	ok, err := matcher.Match(actual)
	if err != nil {
		s.failures = append(s.failures, fmt.Sprintf("%s: %v", description, err))
		return
	}

	if !ok {
		s.failures = append(s.failures, fmt.Sprintf("%s: %s", description, matcher.FailureMessage(actual)))
	}
}

func (s *softAssertions) fail(format string, args ...any) {
	s.failures = append(s.failures, fmt.Sprintf(format, args...))
}

func (s *softAssertions) assertAll(g gomega.Gomega) bool {
	if len(s.failures) == 0 {
		return true
	}

	return g.ExpectWithOffset(2, s.failures).To(gomega.BeEmpty(), "%d soft assertions failed:\n%s", len(s.failures), strings.Join(s.failures, "\n"))
}

// allOf matches an empty collection or one where every element satisfies the
// matcher.
func allOf(matcher types.GomegaMatcher) types.GomegaMatcher {
	return gomega.Or(gomega.BeEmpty(), gomega.HaveEach(matcher))
}
