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

package analyzer

import (
	"errors"
	"log/slog"

	"fillmore-labs.com/flowguard/analyzer/level"
	"fillmore-labs.com/flowguard/internal/config"
	"fillmore-labs.com/flowguard/internal/run"
)

// ErrNoChecks is returned by [Validate] for options disabling every check.
var ErrNoChecks = errors.New("every check is disabled")

// Validate reports whether opts leave at least one check enabled.
func Validate(opts ...Option) error {
	r := run.DefaultOptions()
	Options(opts).apply(r)

	if r.Analyzers.Empty() {
		return ErrNoChecks
	}

	return nil
}

// Option configures specific behavior of a [New] flowguard analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// analyzerOption toggles one analyzer.
type analyzerOption struct {
	key     string
	flag    config.AnalyzerFlags
	enabled bool
}

func (o analyzerOption) apply(r *run.Options) {
	r.Analyzers.Set(o.flag, o.enabled)
}

func (o analyzerOption) LogAttr() slog.Attr {
	return slog.Bool(o.key, o.enabled)
}

// WithUnassigned is an [Option] to configure whether reads of variables that are not definitely assigned are reported.
func WithUnassigned(unassigned bool) Option {
	return analyzerOption{key: "unassigned", flag: config.UnassignedAnalyzer, enabled: unassigned}
}

// WithUnreachable is an [Option] to configure whether unreachable code is reported.
func WithUnreachable(unreachable bool) Option {
	return analyzerOption{key: "unreachable", flag: config.UnreachableAnalyzer, enabled: unreachable}
}

// WithMissingReturn is an [Option] to configure whether functions with results and a reachable end are reported.
func WithMissingReturn(missingReturn bool) Option {
	return analyzerOption{key: "missing-return", flag: config.MissingReturnAnalyzer, enabled: missingReturn}
}

// WithResults is an [Option] to configure whether named results returned without assignment are reported.
func WithResults(results bool) Option {
	return analyzerOption{key: "results", flag: config.ResultsAnalyzer, enabled: results}
}

// WithRegions is an [Option] to configure the reporting of //flowguard:region directives.
func WithRegions(regions level.Region) Option { return regionsOption{regions: regions} }

type regionsOption struct{ regions level.Region }

func (o regionsOption) apply(r *run.Options) {
	setRegionLevel(r, o.regions)
}

func (o regionsOption) LogAttr() slog.Attr {
	return slog.String("regions", o.regions.String())
}

func setRegionLevel(r *run.Options, l level.Region) {
	r.Analyzers.Set(config.RegionAnalyzer, l != level.RegionOff)
	r.Behavior.Set(config.RegionDetails, l == level.RegionFull)
}

func regionLevel(r *run.Options) level.Region {
	switch {
	case !r.Analyzers.Enabled(config.RegionAnalyzer):
		return level.RegionOff

	case r.Behavior.Enabled(config.RegionDetails):
		return level.RegionFull

	default:
		return level.RegionSummary
	}
}
