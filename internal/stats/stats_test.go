// Copyright 2025 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package stats_test

import (
	"strings"
	"testing"

	. "fillmore-labs.com/flowguard/internal/stats"
)

func TestStats(t *testing.T) {
	t.Parallel()

	s := New()
	s.Function(1)
	s.Function(3)
	s.Region(true)
	s.Region(false)

	if got, want := s.Functions(), uint64(2); got != want {
		t.Errorf("Functions() = %d, want %d", got, want)
	}

	if got, want := s.Passes(), uint64(4); got != want {
		t.Errorf("Passes() = %d, want %d", got, want)
	}

	if got, want := s.Rescans(), uint64(2); got != want {
		t.Errorf("Rescans() = %d, want %d", got, want)
	}

	var out strings.Builder
	s.WritePrometheus(&out)

	for _, want := range []string{
		"flowguard_functions_total 2",
		`flowguard_regions_total{status="rejected"} 1`,
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("WritePrometheus() output lacks %q:\n%s", want, out.String())
		}
	}

	var none *Stats
	none.Function(1) // must not panic
}
