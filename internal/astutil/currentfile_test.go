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

package astutil_test

import (
	"go/ast"
	"slices"
	"testing"

	. "fillmore-labs.com/flowguard/internal/astutil"
	"fillmore-labs.com/flowguard/internal/testsource"
)

func TestCommentHasNoLint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"flowguard", "//nolint:flowguard", true},
		{"all", "//nolint:all", true},
		{"list", "//nolint:errcheck, FlowGuard", true},
		{"space", "// nolint:flowguard", true},
		{"other", "//nolint:errcheck", false},
		{"plain", "// flowguard", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := CommentHasNoLint(&ast.Comment{Text: tt.text}); got != tt.want {
				t.Errorf("CommentHasNoLint(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestNoLintComment(t *testing.T) {
	t.Parallel()

	// given
	fset, f := testsource.ParseFile(t, `func f() {
	x := 1 //nolint:flowguard
	_ = x
	y := 2
	// nolint:flowguard
	_ = y
}
`)

	cf := NewCurrentFile(fset, f)
	body := testsource.FuncDecl(t, f, "f").Body.List

	// when
	var got []bool
	for _, s := range body {
		got = append(got, cf.NoLintComment(s.Pos()))
	}

	// then
	want := []bool{true, false, false, false}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("NoLintComment(statement %d) = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRegions(t *testing.T) {
	t.Parallel()

	// given
	fset, f := testsource.ParseFile(t, `func f() {
	//flowguard:endregion
	//flowguard:region first
	x := 1
	//flowguard:endregion
	_ = x
	//flowguard:region
	//flowguard:region
	y := 2
	//flowguard:endregion
	_ = y
	//flowguard:region
}
`)

	cf := NewCurrentFile(fset, f)

	// when
	regions, unmatched := cf.Regions()

	// then
	if len(regions) != 2 {
		t.Fatalf("Expected 2 regions, got %d", len(regions))
	}

	if got := fset.Position(regions[0].Open.Pos()).Line; got != 5 {
		t.Errorf("First region opens on line %d, want 5", got)
	}

	if got := fset.Position(regions[1].Open.Pos()).Line; got != 10 {
		t.Errorf("Second region opens on line %d, want 10", got)
	}

	if regions[0].Pos() >= regions[0].End() {
		t.Errorf("Region [%d, %d) is empty", regions[0].Pos(), regions[0].End())
	}

	var lines []int
	for _, c := range unmatched {
		lines = append(lines, fset.Position(c.Pos()).Line)
	}

	if want := []int{4, 9, 14}; !slices.Equal(lines, want) {
		t.Errorf("Unmatched directives on lines %v, want %v", lines, want)
	}
}

func TestNoLintFile(t *testing.T) {
	t.Parallel()

	fset, f := testsource.ParseFile(t, "")
	f.Doc = &ast.CommentGroup{List: []*ast.Comment{{Text: "// Package test."}, {Text: "//nolint:flowguard"}}}

	if cf := NewCurrentFile(fset, f); !cf.Valid() || !cf.NoLint() {
		t.Errorf("Expected valid file excluded by nolint, got valid=%v nolint=%v", cf.Valid(), cf.NoLint())
	}
}
