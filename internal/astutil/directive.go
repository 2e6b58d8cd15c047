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

package astutil

import (
	"go/ast"
	"go/token"
	"strings"
)

const (
	regionDirective    = "//" + flowguard + ":region"
	endregionDirective = "//" + flowguard + ":endregion"
)

// RegionDirective is a matched pair of //flowguard:region and //flowguard:endregion comments.
type RegionDirective struct {
	Open, Close *ast.Comment
}

// Pos returns the start of the selected source, after the opening comment.
func (d RegionDirective) Pos() token.Pos { return d.Open.End() }

// End returns the end of the selected source, before the closing comment.
func (d RegionDirective) End() token.Pos { return d.Close.Pos() }

// Regions returns the region directives of the file in source order,
// together with directive comments that have no partner.
func (c CurrentFile) Regions() (regions []RegionDirective, unmatched []*ast.Comment) {
	if c.file == nil {
		return nil, nil
	}

	var open *ast.Comment

	for _, group := range c.file.Comments {
		for _, comment := range group.List {
			switch directive(comment) {
			case regionDirective:
				if open != nil {
					unmatched = append(unmatched, open) // regions do not nest
				}

				open = comment

			case endregionDirective:
				if open == nil {
					unmatched = append(unmatched, comment)

					continue
				}

				regions = append(regions, RegionDirective{Open: open, Close: comment})
				open = nil
			}
		}
	}

	if open != nil {
		unmatched = append(unmatched, open)
	}

	return regions, unmatched
}

// directive returns the directive part of a comment, without arguments.
func directive(comment *ast.Comment) string {
	text, _, _ := strings.Cut(comment.Text, " ")

	return text
}
