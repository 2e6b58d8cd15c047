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

// Package report turns analysis results into [analysis.Diagnostic]s.
package report

import (
	"context"
	"fmt"
	"go/types"
	"runtime/trace"
	"strings"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/flowguard/internal/astutil"
	"fillmore-labs.com/flowguard/internal/config"
	"fillmore-labs.com/flowguard/internal/flow"
)

// Diagnostics emits the findings of the flow analysis of one function body
// that belong to an enabled analyzer and are not suppressed by a //nolint:flowguard comment.
func Diagnostics(ctx context.Context, p *analysis.Pass, currentFile astutil.CurrentFile, diags []flow.Diagnostic, analyzers config.Analyzers) {
	if len(diags) == 0 {
		return
	}

	defer trace.StartRegion(ctx, "Report").End()

	for _, d := range diags {
		if flag, ok := analyzerOf(d.Code); ok && !analyzers.Enabled(flag) {
			continue
		}

		if currentFile.NoLintComment(d.Pos) {
			continue
		}

		p.Report(diagnostic(d))
	}
}

// analyzerOf returns the analyzer responsible for a diagnostic code.
// Codes without an analyzer are always reported.
func analyzerOf(code flow.Code) (config.AnalyzerFlags, bool) {
	switch code {
	case flow.UnassignedRead:
		return config.UnassignedAnalyzer, true

	case flow.UnreachableCode:
		return config.UnreachableAnalyzer, true

	case flow.MissingReturn:
		return config.MissingReturnAnalyzer, true

	case flow.UnassignedResult:
		return config.ResultsAnalyzer, true

	default:
		return 0, false
	}
}

func diagnostic(d flow.Diagnostic) analysis.Diagnostic {
	diagnostic := analysis.Diagnostic{
		Pos:      d.Pos,
		End:      d.End,
		Category: d.Code.String(),
	}

	switch d.Code {
	case flow.UnassignedRead:
		diagnostic.Message = fmt.Sprintf("Variable '%s' is used before being assigned (fg:%s)", d.Var.Name(), d.Code)

	case flow.UnreachableCode:
		diagnostic.Message = fmt.Sprintf("Unreachable code (fg:%s)", d.Code)

	case flow.MissingReturn:
		diagnostic.Message = fmt.Sprintf("Missing return at end of function (fg:%s)", d.Code)

	case flow.UnassignedResult:
		diagnostic.Message = fmt.Sprintf("Named result '%s' may be returned without assignment (fg:%s)", d.Var.Name(), d.Code)
		diagnostic.Related = []analysis.RelatedInformation{{Pos: d.Var.Pos(), Message: "Declared here"}}

	default:
		diagnostic.Message = fmt.Sprintf("Unsupported construct %s (fg:%s)", d.Detail, d.Code)
	}

	return diagnostic
}

// varNames returns the names of vs.
func varNames(vs []*types.Var) []string {
	names := make([]string, 0, len(vs))
	for _, v := range vs {
		names = append(names, v.Name())
	}

	return names
}

// concatNames formats a list of variable names into a human-readable string (e.g., "'a', 'b' and 'c'").
// An empty list reads "nothing".
func concatNames(varNames []string) string {
	if len(varNames) == 0 {
		return "nothing"
	}

	var allNames strings.Builder

	for i, name := range varNames {
		if i > 0 {
			var separator string
			if i == len(varNames)-1 {
				separator = " and "
			} else {
				separator = ", "
			}

			allNames.WriteString(separator) // ignore error
		}

		allNames.WriteByte('\'')   // ignore error
		allNames.WriteString(name) // ignore error
		allNames.WriteByte('\'')   // ignore error
	}

	return allNames.String()
}
