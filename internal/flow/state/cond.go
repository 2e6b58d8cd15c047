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

package state

// Cond is a flow state in conditional mode, holding separate states for the
// outcomes of a boolean expression.
type Cond struct {
	WhenTrue, WhenFalse State
}

// Merge converts c back to unconditional mode by joining both outcomes.
func (c Cond) Merge() State {
	s := c.WhenTrue.Clone()
	s.Join(c.WhenFalse)

	return s
}

// Not swaps the outcomes of c.
func (c Cond) Not() Cond {
	return Cond{WhenTrue: c.WhenFalse, WhenFalse: c.WhenTrue}
}

// Constant returns the conditional state of a boolean constant evaluated in s:
// the outcome that cannot happen is dead.
func Constant(s State, value bool, n int) Cond {
	if value {
		return Cond{WhenTrue: s, WhenFalse: Dead(n)}
	}

	return Cond{WhenTrue: Dead(n), WhenFalse: s}
}
