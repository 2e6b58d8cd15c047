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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/flowguard/internal/astutil"
	"fillmore-labs.com/flowguard/internal/config"
	"fillmore-labs.com/flowguard/internal/emptystruct"
	"fillmore-labs.com/flowguard/internal/flow"
	"fillmore-labs.com/flowguard/internal/region"
	"fillmore-labs.com/flowguard/internal/report"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the flowguard analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("flowguard: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "FlowGuard")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	// One cache for all functions of the package
	empty := emptystruct.New()

	var walker *flow.Walker
	if r.Analyzers.Any(config.UnassignedAnalyzer, config.UnreachableAnalyzer,
		config.MissingReturnAnalyzer, config.ResultsAnalyzer) {
		walker = flow.New(flow.Config{Info: p.TypesInfo, Empty: empty, Stats: r.Stats})
	}

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if currentFile.NoLint() {
			continue
		}

		if walker != nil {
			// Loop over all function and method declarations in this file
			for c := range f.Preorder((*ast.FuncDecl)(nil)) {
				fun := c.Node().(*ast.FuncDecl)

				if fun.Body == nil {
					continue
				}

				// Skip functions with nolint comment
				if astutil.DocHasNoLint(fun.Doc) {
					continue
				}

				result := walker.Analyze(ctx, fun.Recv, fun.Type, fun.Body)

				report.Diagnostics(ctx, p, currentFile, result.Diagnostics, r.Analyzers)
			}
		}

		if r.Analyzers.Enabled(config.RegionAnalyzer) {
			r.regions(ctx, p, currentFile)
		}
	}

	return nil, nil
}

// regions reports the region directives of a file.
func (r *Options) regions(ctx context.Context, p *analysis.Pass, currentFile astutil.CurrentFile) {
	directives, unmatched := currentFile.Regions()

	for _, comment := range unmatched {
		report.Unmatched(p, comment)
	}

	details := r.Behavior.Enabled(config.RegionDetails)

	for _, d := range directives {
		a := region.New(ctx, region.Config{
			Info:  p.TypesInfo,
			File:  currentFile.File(),
			Start: d.Pos(),
			End:   d.End(),
			Stats: r.Stats,
		})

		report.Region(ctx, p, d, a, details)
	}
}
