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

// Package stats collects counters about analysis runs.
package stats

import (
	"io"

	"github.com/VictoriaMetrics/metrics"
)

// Stats holds the counters of one analyzer instance.
type Stats struct {
	set *metrics.Set

	functions *metrics.Counter
	passes    *metrics.Counter
	rescans   *metrics.Counter
	regions   *metrics.Counter
	rejected  *metrics.Counter
}

// New creates a [Stats] with a fresh metrics set.
func New() *Stats {
	set := metrics.NewSet()

	return &Stats{
		set:       set,
		functions: set.NewCounter(`flowguard_functions_total`),
		passes:    set.NewCounter(`flowguard_passes_total`),
		rescans:   set.NewCounter(`flowguard_rescans_total`),
		regions:   set.NewCounter(`flowguard_regions_total{status="analyzed"}`),
		rejected:  set.NewCounter(`flowguard_regions_total{status="rejected"}`),
	}
}

// Function records the analysis of one function body that took the given number of passes.
func (s *Stats) Function(passes int) {
	if s == nil {
		return
	}

	s.functions.Inc()
	s.passes.Add(passes)

	if passes > 1 {
		s.rescans.Add(passes - 1)
	}
}

// Region records a region query.
func (s *Stats) Region(succeeded bool) {
	if s == nil {
		return
	}

	if succeeded {
		s.regions.Inc()
	} else {
		s.rejected.Inc()
	}
}

// Functions returns the number of analyzed function bodies.
func (s *Stats) Functions() uint64 { return s.functions.Get() }

// Passes returns the total number of analysis passes.
func (s *Stats) Passes() uint64 { return s.passes.Get() }

// Rescans returns the number of passes repeated because of backward branches.
func (s *Stats) Rescans() uint64 { return s.rescans.Get() }

// WritePrometheus writes all counters in Prometheus text exposition format.
func (s *Stats) WritePrometheus(w io.Writer) {
	s.set.WritePrometheus(w)
}
