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

package gclplugin

import (
	flowguard "fillmore-labs.com/flowguard/analyzer"
	"fillmore-labs.com/flowguard/analyzer/level"
)

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Unassigned enables reports of reads before definite assignment.
	Unassigned *bool `json:"unassigned,omitzero"`
	// Unreachable enables reports of unreachable code.
	Unreachable *bool `json:"unreachable,omitzero"`
	// MissingReturn enables reports of functions with results and a reachable end.
	MissingReturn *bool `json:"missing-return,omitzero"`
	// Results enables reports of named results returned without assignment.
	Results *bool `json:"results,omitzero"`
	// Regions sets the reporting level of region directives.
	Regions *level.Region `json:"regions,omitzero"`
}

// Options converts [Settings] into a list of [flowguard.Option] for the flowguard analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []flowguard.Option {
	var opts []flowguard.Option

	opts = appendOption(opts, s.Unassigned, flowguard.WithUnassigned)
	opts = appendOption(opts, s.Unreachable, flowguard.WithUnreachable)
	opts = appendOption(opts, s.MissingReturn, flowguard.WithMissingReturn)
	opts = appendOption(opts, s.Results, flowguard.WithResults)
	opts = appendOption(opts, s.Regions, flowguard.WithRegions)

	return opts
}

// appendOption appends a non-nil setting to a [flowguard.Option] list.
func appendOption[T any](opts []flowguard.Option, value *T, constructor func(T) flowguard.Option) []flowguard.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
