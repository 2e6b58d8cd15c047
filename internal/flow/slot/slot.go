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

// Package slot maps trackable variables to dense integer indices.
package slot

import "go/types"

// Slot is a dense index identifying one tracked variable within an analysis run.
type Slot int32

const (
	// Untracked marks storage that is not tracked and is always considered assigned.
	Untracked Slot = -1

	// Sentinel is never bound to a variable. Its bit records that an unreachable code
	// diagnostic has already been emitted for the state reaching a point.
	Sentinel Slot = 0
)

// Tracked reports whether s refers to a variable.
func (s Slot) Tracked() bool { return s > Sentinel }

// Table is a bidirectional mapping between variables and slots.
// Slots are allocated on first sight and never reused.
type Table struct {
	slots map[*types.Var]Slot
	vars  []*types.Var
}

// NewTable creates an empty [Table] with the sentinel slot reserved.
func NewTable() *Table {
	return &Table{
		slots: make(map[*types.Var]Slot),
		vars:  []*types.Var{nil},
	}
}

// Of returns the slot of v without allocating one.
func (t *Table) Of(v *types.Var) (Slot, bool) {
	s, ok := t.slots[v]

	return s, ok
}

// For returns the slot of v, allocating a new slot on the first call.
func (t *Table) For(v *types.Var) Slot {
	if s, ok := t.slots[v]; ok {
		return s
	}

	s := Slot(len(t.vars))
	t.slots[v] = s
	t.vars = append(t.vars, v)

	return s
}

// Var returns the variable bound to s, or nil for the sentinel and out of range slots.
func (t *Table) Var(s Slot) *types.Var {
	if s <= Sentinel || int(s) >= len(t.vars) {
		return nil
	}

	return t.vars[s]
}

// Len returns the number of allocated slots, including the sentinel.
func (t *Table) Len() int {
	return len(t.vars)
}
