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

package flow

import (
	"go/ast"
	"go/types"

	"fillmore-labs.com/flowguard/internal/flow/pending"
)

// Hooks observe a [Walker] traversal. Nil fields are ignored.
//
// Hooks run synchronously during the traversal and may inspect or modify the
// current state through the [Walker] they were registered with.
type Hooks struct {
	// Pass is called at the start of every analysis pass, numbered from 1.
	Pass func(pass int)

	// Enter is called before a statement or expression is visited.
	Enter func(n ast.Node)

	// Leave is called after a statement or expression has been visited.
	Leave func(n ast.Node)

	// Declare is called for every declared variable, including parameters.
	Declare func(v *types.Var, decl ast.Node)

	// Read is called for every read of a local variable.
	Read func(v *types.Var, n ast.Node)

	// Write is called after a write of a local variable has taken effect.
	Write func(v *types.Var, n ast.Node)

	// Unassigned is called for every reachable read of a tracked variable
	// that is not definitely assigned. Captured is true for reads inside a
	// function literal of variables declared outside of it.
	Unassigned func(v *types.Var, n ast.Node, captured bool)

	// Capture is called for references inside a function literal to
	// variables declared outside of it.
	Capture func(v *types.Var, n ast.Node)

	// AddressOf is called when the address of a variable or one of its parts is taken.
	AddressOf func(v *types.Var, n ast.Node)

	// Jump is called for every branch and return statement with the state at
	// the jump, before the branch is queued or joined into its label. The
	// hook may replace b.State; the code following the jump is not affected.
	Jump func(b *pending.Branch)
}

func (w *Walker) enter(n ast.Node) {
	if w.hooks.Enter != nil {
		w.hooks.Enter(n)
	}
}

func (w *Walker) leave(n ast.Node) {
	if w.hooks.Leave != nil {
		w.hooks.Leave(n)
	}
}
