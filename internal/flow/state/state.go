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

// Package state implements the flow state propagated by the definite assignment walker.
//
// A [State] is a reachability flag plus one bit per slot. Under boolean
// sub-expressions the walker carries a [Cond] instead, holding the states
// for the true and false outcomes separately.
package state

import (
	"iter"

	"github.com/bits-and-blooms/bitset"

	"fillmore-labs.com/flowguard/internal/flow/slot"
)

// State is a flow state in unconditional mode.
//
// Unreachable states consider every tracked slot assigned, so that nothing
// downstream of an unconditional jump reports unassigned reads.
type State struct {
	assigned  *bitset.BitSet
	width     uint
	reachable bool
}

// Entry returns a reachable state over n slots with nothing assigned.
func Entry(n int) State {
	return State{assigned: bitset.New(uint(n)), width: uint(n), reachable: true}
}

// Unreachable returns the state after an unconditional jump: every tracked
// slot is assigned and the unreachable code diagnostic is armed.
func Unreachable(n int) State {
	s := State{assigned: bitset.New(uint(n)), width: uint(n)}
	if n > 1 {
		s.assigned.FlipRange(1, uint(n))
	}

	return s
}

// Dead returns an unreachable state that does not report unreachable code.
// It is used for branches excluded by a constant condition.
func Dead(n int) State {
	s := Unreachable(n)
	s.assigned.Set(uint(slot.Sentinel))

	return s
}

// Reachable reports whether control can reach this point per the language rules.
func (s State) Reachable() bool { return s.reachable }

// Flagged reports whether the sentinel slot is set.
func (s State) Flagged() bool { return s.assigned.Test(uint(slot.Sentinel)) }

// Live reports reachability in the narrower execution sense: reachable and not flagged.
func (s State) Live() bool { return s.reachable && !s.Flagged() }

// Width returns the number of slots covered by this state.
func (s State) Width() int { return int(s.width) }

// IsAssigned reports whether sl is definitely assigned.
func (s State) IsAssigned(sl slot.Slot) bool {
	if sl == slot.Untracked {
		return true
	}

	if uint(sl) >= s.width {
		return !s.reachable
	}

	return s.assigned.Test(uint(sl))
}

// Assign marks sl as assigned.
func (s *State) Assign(sl slot.Slot) {
	if sl == slot.Untracked {
		return
	}

	s.grow(uint(sl) + 1)
	s.assigned.Set(uint(sl))
}

// Unassign marks sl as unassigned. Unreachable states are left unchanged.
func (s *State) Unassign(sl slot.Slot) {
	if sl <= slot.Sentinel || !s.reachable {
		return
	}

	s.grow(uint(sl) + 1)
	s.assigned.Clear(uint(sl))
}

// Flag sets the sentinel slot, suppressing further unreachable code diagnostics.
func (s *State) Flag() {
	s.assigned.Set(uint(slot.Sentinel))
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	return State{assigned: s.assigned.Clone(), width: s.width, reachable: s.reachable}
}

// Normalize extends s to cover n slots. Slots added to an unreachable state are assigned.
func (s *State) Normalize(n int) {
	s.grow(uint(n))
}

func (s *State) grow(n uint) {
	if n <= s.width {
		return
	}

	if !s.reachable {
		s.assigned.FlipRange(s.width, n)
	}

	s.width = n
}

// Join combines other into s at a control flow merge point: reachability is
// the disjunction, assignment the per-slot conjunction. It reports whether s changed.
func (s *State) Join(other State) bool {
	n := max(s.width, other.width)
	s.grow(n)

	if other.width < n {
		other = other.Clone()
		other.grow(n)
	}

	before, wasReachable := s.assigned.Count(), s.reachable

	s.assigned.InPlaceIntersection(other.assigned)
	s.reachable = s.reachable || other.reachable

	return s.assigned.Count() != before || s.reachable != wasReachable
}

// Reset unassigns every slot for which keep returns false and assigns the rest.
// Reachability and the sentinel are preserved. Unreachable states are left unchanged.
func (s *State) Reset(n int, keep func(slot.Slot) bool) {
	if !s.reachable {
		s.Normalize(n)

		return
	}

	flagged := s.Flagged()

	s.assigned = bitset.New(uint(n))
	s.width = uint(n)

	for i := 1; i < n; i++ {
		if keep != nil && keep(slot.Slot(i)) {
			s.assigned.Set(uint(i))
		}
	}

	if flagged {
		s.Flag()
	}
}

// Assigned yields every tracked slot that is definitely assigned.
func (s State) Assigned() iter.Seq[slot.Slot] {
	return func(yield func(slot.Slot) bool) {
		for i, ok := s.assigned.NextSet(1); ok && i < s.width; i, ok = s.assigned.NextSet(i + 1) {
			if !yield(slot.Slot(i)) {
				return
			}
		}
	}
}

// Split duplicates s into a conditional state with equal outcomes.
func (s State) Split() Cond {
	return Cond{WhenTrue: s.Clone(), WhenFalse: s.Clone()}
}
