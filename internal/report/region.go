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

package report

import (
	"context"
	"fmt"
	"go/ast"
	"go/types"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/flowguard/internal/astutil"
	"fillmore-labs.com/flowguard/internal/region"
)

// Region emits the data flow summary of a //flowguard:region directive.
// With details, read, write, capture and control flow facts are added as related information.
func Region(ctx context.Context, p *analysis.Pass, d astutil.RegionDirective, a *region.Analysis, details bool) {
	defer trace.StartRegion(ctx, "ReportRegion").End()

	if !a.Succeeded() {
		p.Report(analysis.Diagnostic{
			Pos:      d.Open.Pos(),
			End:      d.Open.End(),
			Category: regionCategory,
			Message:  fmt.Sprintf("Invalid region: %v (fg:%s)", a.Err(), regionCategory),
		})

		return
	}

	r := a.Region()

	diagnostic := analysis.Diagnostic{
		Pos:      r.Pos(),
		End:      r.End(),
		Category: regionCategory,
		Message:  RegionMessage(ctx, a),
	}

	if details {
		diagnostic.Related = RegionDetails(ctx, a)
	}

	p.Report(diagnostic)
}

// Unmatched reports a region directive without partner.
func Unmatched(p *analysis.Pass, comment *ast.Comment) {
	p.Report(analysis.Diagnostic{
		Pos:      comment.Pos(),
		End:      comment.End(),
		Category: regionCategory,
		Message:  fmt.Sprintf("Unmatched region directive (fg:%s)", regionCategory),
	})
}

const regionCategory = "rgn"

// RegionMessage summarizes a valid region: the data flowing into and out of
// it, the variables it declares and the number of jumps leaving it.
// Expressions only report the data flowing in.
func RegionMessage(ctx context.Context, a *region.Analysis) string {
	in := concatNames(varNames(a.DataFlowsIn(ctx)))

	if a.Region().Expr() {
		return fmt.Sprintf("Expression: data flows in %s (fg:%s)", in, regionCategory)
	}

	return fmt.Sprintf("Region: data flows in %s, out %s, declares %s, %s (fg:%s)",
		in,
		concatNames(varNames(a.DataFlowsOut(ctx))),
		concatNames(varNames(a.VariablesDeclared(ctx))),
		exitCount(len(a.ExitPoints(ctx))),
		regionCategory)
}

func exitCount(n int) string {
	switch n {
	case 0:
		return "no exits"

	case 1:
		return "1 exit"

	default:
		return fmt.Sprintf("%d exits", n)
	}
}

// RegionDetails lists the remaining facts about a valid region.
func RegionDetails(ctx context.Context, a *region.Analysis) []analysis.RelatedInformation {
	pos := a.Region().Pos()

	facts := []struct {
		label string
		vars  []*types.Var
	}{
		{"Declared", a.VariablesDeclared(ctx)},
		{"Always assigned", a.AlwaysAssigned(ctx)},
		{"Read inside", a.ReadInside(ctx)},
		{"Written inside", a.WrittenInside(ctx)},
		{"Read outside", a.ReadOutside(ctx)},
		{"Written outside", a.WrittenOutside(ctx)},
		{"Captured", a.Captured(ctx)},
		{"Address taken", a.UnsafeAddressTaken(ctx)},
	}

	related := make([]analysis.RelatedInformation, 0, len(facts)+2)
	for _, f := range facts {
		if len(f.vars) == 0 {
			continue
		}

		related = append(related, analysis.RelatedInformation{
			Pos:     pos,
			Message: fmt.Sprintf("%s: %s", f.label, concatNames(varNames(f.vars))),
		})
	}

	if !a.StartPointIsReachable(ctx) {
		related = append(related, analysis.RelatedInformation{Pos: pos, Message: "Start point is unreachable"})
	}

	if !a.EndPointIsReachable(ctx) {
		related = append(related, analysis.RelatedInformation{Pos: a.Region().End(), Message: "End point is unreachable"})
	}

	for _, exit := range a.ExitPoints(ctx) {
		related = append(related, analysis.RelatedInformation{Pos: exit.Pos(), End: exit.End(), Message: "Exits the region"})
	}

	for _, entry := range a.EntryPoints(ctx) {
		related = append(related, analysis.RelatedInformation{Pos: entry.Pos(), End: entry.Colon, Message: "Entered from outside"})
	}

	return related
}
