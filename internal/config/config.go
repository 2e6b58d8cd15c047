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

package config

// AnalyzerFlags represents specific analyzers.
type AnalyzerFlags uint8

const (
	// UnassignedAnalyzer reports reads of local variables that are not definitely assigned.
	UnassignedAnalyzer AnalyzerFlags = 1 << iota

	// UnreachableAnalyzer reports statements control can not reach.
	UnreachableAnalyzer

	// MissingReturnAnalyzer reports functions with results whose end is reachable.
	MissingReturnAnalyzer

	// ResultsAnalyzer reports named results that may be returned without an explicit assignment.
	ResultsAnalyzer

	// RegionAnalyzer reports data flow summaries for //flowguard:region directives.
	RegionAnalyzer
)

// Analyzers is a set of enabled analyzers.
type Analyzers = BitMask[AnalyzerFlags]

// DefaultAnalyzers returns the analyzers enabled by default.
func DefaultAnalyzers() Analyzers {
	return NewBitMask(UnreachableAnalyzer, MissingReturnAnalyzer, RegionAnalyzer)
}

// BehaviorFlags represents configuration options for the analyzers.
type BehaviorFlags uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated BehaviorFlags = 1 << iota

	// RegionDetails adds read, write, capture and control flow facts to region summaries.
	RegionDetails
)

// Behavior is a set of behavioral options.
type Behavior = BitMask[BehaviorFlags]

// DefaultBehavior returns the default behavior.
func DefaultBehavior() Behavior {
	return Behavior{}
}
