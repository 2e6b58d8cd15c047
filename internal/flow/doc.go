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

// Package flow implements definite assignment and reachability analysis of Go function bodies.
//
// A [Walker] visits a function body in program order, carrying one mutable
// flow state: which tracked variables are definitely assigned, and whether
// the current point is reachable. Jumps are captured as pending branches and
// joined into their targets; labels reached by backward goto statements (and
// loop heads, when tracking is enabled) can weaken state that earlier parts
// of the body relied on, in which case the whole body is scanned again until
// nothing changes.
//
// Region walkers observe the traversal through [Hooks].
package flow
