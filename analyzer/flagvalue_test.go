// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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

package analyzer_test

import (
	"flag"
	"io"
	"strings"
	"testing"

	. "fillmore-labs.com/flowguard/analyzer"
	"fillmore-labs.com/flowguard/internal/config"
)

func TestFlagValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial config.AnalyzerFlags
		args    []string
		want    bool
	}{
		{
			name:    "Enable",
			initial: config.UnreachableAnalyzer,
			args:    []string{"-unassigned"},
			want:    true,
		},
		{
			name:    "Disable",
			initial: config.UnassignedAnalyzer,
			args:    []string{"-unassigned=false"},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var flags config.Analyzers
			flags.Set(tt.initial, true)

			fs := flag.NewFlagSet("test", flag.ContinueOnError)

			const value = config.UnassignedAnalyzer
			fv := NewAnalyzerValue(&flags, value)
			fs.Var(fv, "unassigned", "report unassigned reads")

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if fv.Get() != tt.want {
				t.Errorf("Flag get = %v, want %v", fv.Get(), tt.want)
			}

			if flags.Enabled(value) != tt.want {
				t.Errorf("UnassignedAnalyzer enabled = %v, want %v", flags.Enabled(value), tt.want)
			}
		})
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	var flags config.Analyzers
	flags.Set(config.UnreachableAnalyzer, true)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)

	fv := NewAnalyzerValue(&flags, config.UnreachableAnalyzer)
	fs.Var(fv, "unreachable", "report unreachable code")

	const expectedUsage = `
  -unreachable
    	report unreachable code (default true)
`

	var out strings.Builder
	fs.SetOutput(&out)
	fs.Usage()

	if got, want := out.String(), expectedUsage; !strings.HasSuffix(got, want) {
		t.Errorf("Usage() = %q, want suffix %q", got, want)
	}
}

func TestAnalyzerFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		args  []string
		flag  string
		value string
	}{
		{"default_regions", nil, "regions", "summary"},
		{"full_regions", []string{"-regions=full"}, "regions", "full"},
		{"off_regions", []string{"-regions", "off"}, "regions", "off"},
		{"unassigned", []string{"-unassigned"}, "unassigned", "true"},
		{"unreachable", []string{"-unreachable=false"}, "unreachable", "false"},
		{"generated", nil, "generated", "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := New()
			a.Flags.Init(a.Name, flag.ContinueOnError)

			if err := a.Flags.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			f := a.Flags.Lookup(tt.flag)
			if f == nil {
				t.Fatalf("Flag %s not registered", tt.flag)
			}

			if got := f.Value.String(); got != tt.value {
				t.Errorf("Flag %s = %q, want %q", tt.flag, got, tt.value)
			}
		})
	}
}

func TestInvalidRegionFlag(t *testing.T) {
	t.Parallel()

	a := New()
	a.Flags.Init(a.Name, flag.ContinueOnError)
	a.Flags.SetOutput(io.Discard)

	if err := a.Flags.Parse([]string{"-regions=partial"}); err == nil {
		t.Error("Expected error for unknown region level")
	}
}
