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

package report_test

import (
	"go/token"
	"go/types"
	"strings"
	"testing"

	. "fillmore-labs.com/flowguard/internal/report"
	"fillmore-labs.com/flowguard/internal/astutil"
	"fillmore-labs.com/flowguard/internal/flow"
	"fillmore-labs.com/flowguard/internal/region"
	"fillmore-labs.com/flowguard/internal/testsource"
)

func TestConcatNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		names []string
		want  string
	}{
		{"empty", nil, "nothing"},
		{"one", []string{"a"}, "'a'"},
		{"two", []string{"a", "b"}, "'a' and 'b'"},
		{"three", []string{"a", "b", "c"}, "'a', 'b' and 'c'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ConcatNames(tt.names); got != tt.want {
				t.Errorf("concatNames(%q) = %q, want %q", tt.names, got, tt.want)
			}
		})
	}
}

func TestMessage(t *testing.T) {
	t.Parallel()

	x := types.NewVar(token.NoPos, nil, "x", types.Typ[types.Int])

	tests := []struct {
		name string
		diag flow.Diagnostic
		want string
	}{
		{
			name: "unassigned",
			diag: flow.Diagnostic{Code: flow.UnassignedRead, Var: x},
			want: "Variable 'x' is used before being assigned (fg:una)",
		},
		{
			name: "unreachable",
			diag: flow.Diagnostic{Code: flow.UnreachableCode},
			want: "Unreachable code (fg:unr)",
		},
		{
			name: "missing_return",
			diag: flow.Diagnostic{Code: flow.MissingReturn},
			want: "Missing return at end of function (fg:ret)",
		},
		{
			name: "result",
			diag: flow.Diagnostic{Code: flow.UnassignedResult, Var: x},
			want: "Named result 'x' may be returned without assignment (fg:res)",
		},
		{
			name: "not_implemented",
			diag: flow.Diagnostic{Code: flow.NotImplemented, Detail: "*ast.BadStmt"},
			want: "Unsupported construct *ast.BadStmt (fg:nyi)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Message(tt.diag)

			if got.Message != tt.want {
				t.Errorf("Got message %q, want %q", got.Message, tt.want)
			}

			if got.Category != tt.diag.Code.String() {
				t.Errorf("Got category %q, want %q", got.Category, tt.diag.Code)
			}
		})
	}
}

func TestRegionMessage(t *testing.T) {
	t.Parallel()

	// given
	const src = `func f(a int) (r int) {
	b := a
	//flowguard:region
	c := b * 2
	if c > 10 {
		return c
	}
	r = c + a
	//flowguard:endregion
	return r + b
}
`

	fset, f := testsource.ParseFile(t, src)
	_, info := testsource.Check(t, fset, f)

	regions, unmatched := astutil.NewCurrentFile(fset, f).Regions()
	if len(regions) != 1 || len(unmatched) != 0 {
		t.Fatalf("Expected one region directive, got %d and %d unmatched", len(regions), len(unmatched))
	}

	d := regions[0]
	a := region.New(t.Context(), region.Config{Info: info, File: f, Start: d.Pos(), End: d.End()})

	if !a.Succeeded() {
		t.Fatalf("Region analysis failed: %v", a.Err())
	}

	// when
	msg := RegionMessage(t.Context(), a)
	related := RegionDetails(t.Context(), a)

	// then
	if want := "Region: data flows in 'a' and 'b', out 'r', declares 'c', 1 exit (fg:rgn)"; msg != want {
		t.Errorf("Got message %q, want %q", msg, want)
	}

	var details []string
	for _, r := range related {
		details = append(details, r.Message)
	}

	got := strings.Join(details, "; ")
	for _, want := range []string{"Declared: 'c'", "Always assigned: 'c'", "Exits the region"} {
		if !strings.Contains(got, want) {
			t.Errorf("Details %q do not contain %q", got, want)
		}
	}
}

func TestExpressionMessage(t *testing.T) {
	t.Parallel()

	// given
	const src = `func f(a, b int) int {
	c := 1 + /*<*/a*b/*>*/
	return c
}
`

	fset, f := testsource.ParseFile(t, src)
	_, info := testsource.Check(t, fset, f)

	content := testsource.FileSource(src)
	start, end := strings.Index(content, "/*<*/")+len("/*<*/"), strings.Index(content, "/*>*/")
	file := fset.File(f.Pos())

	a := region.New(t.Context(), region.Config{Info: info, File: f, Start: file.Pos(start), End: file.Pos(end)})

	if !a.Succeeded() {
		t.Fatalf("Region analysis failed: %v", a.Err())
	}

	// when
	msg := RegionMessage(t.Context(), a)

	// then
	if want := "Expression: data flows in 'a' and 'b' (fg:rgn)"; msg != want {
		t.Errorf("Got message %q, want %q", msg, want)
	}
}
