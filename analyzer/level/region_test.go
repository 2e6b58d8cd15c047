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

package level_test

import (
	"testing"

	. "fillmore-labs.com/flowguard/analyzer/level"
)

func TestRegionText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want Region
	}{
		{"", RegionSummary},
		{"on", RegionSummary},
		{"Summary", RegionSummary},
		{"full", RegionFull},
		{"FALSE", RegionOff},
		{"off", RegionOff},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			var got Region
			if err := got.UnmarshalText([]byte(tt.text)); err != nil {
				t.Fatalf("UnmarshalText(%q) failed: %v", tt.text, err)
			}

			if got != tt.want {
				t.Errorf("UnmarshalText(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestRegionRoundTrip(t *testing.T) {
	t.Parallel()

	for _, l := range []Region{RegionSummary, RegionFull, RegionOff} {
		text, err := l.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%d) failed: %v", l, err)
		}

		var got Region
		if err := got.UnmarshalText(text); err != nil || got != l {
			t.Errorf("UnmarshalText(%q) = %v, %v, want %v", text, got, err, l)
		}
	}
}

func TestRegionInvalid(t *testing.T) {
	t.Parallel()

	var l Region
	if err := l.UnmarshalText([]byte("partial")); err == nil {
		t.Error("Expected error for unknown level")
	}

	if _, err := Region(42).MarshalText(); err == nil {
		t.Error("Expected error for unknown value")
	}

	if got, want := Region(42).String(), "Region(42)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
