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
	"go/constant"
	"go/token"
	"go/types"

	"fillmore-labs.com/flowguard/internal/flow/state"
)

// constantFolder answers questions about compile-time constant expressions.
type constantFolder struct {
	info *types.Info
}

// boolValue returns the value of a constant boolean expression.
func (f constantFolder) boolValue(e ast.Expr) (value, ok bool) {
	tv, ok := f.info.Types[e]
	if !ok || tv.Value == nil || tv.Value.Kind() != constant.Bool {
		return false, false
	}

	return constant.BoolVal(tv.Value), true
}

func (f constantFolder) isConstantTrue(e ast.Expr) bool {
	v, ok := f.boolValue(e)

	return ok && v
}

func (f constantFolder) isConstantFalse(e ast.Expr) bool {
	v, ok := f.boolValue(e)

	return ok && !v
}

// visitCondition visits a boolean expression in condition mode.
func (w *Walker) visitCondition(e ast.Expr) state.Cond {
	w.enter(e)
	c := w.cond(e)

	if w.hooks.Leave != nil {
		w.state = c.Merge() // observed by the hook, replaced by the caller
		w.leave(e)
	}

	return c
}

func (w *Walker) cond(e ast.Expr) state.Cond {
	var c state.Cond

	switch x := e.(type) {
	case *ast.ParenExpr:
		c = w.visitCondition(x.X)

	case *ast.UnaryExpr:
		if x.Op != token.NOT {
			c = w.splitExpr(e)

			break
		}

		c = w.visitCondition(x.X).Not()

	case *ast.BinaryExpr:
		switch x.Op {
		case token.LAND: // right is evaluated when left is true
			left := w.visitCondition(x.X)
			w.state = left.WhenTrue
			c = w.visitCondition(x.Y)
			c.WhenFalse.Join(left.WhenFalse)

		case token.LOR: // right is evaluated when left is false
			left := w.visitCondition(x.X)
			w.state = left.WhenFalse
			c = w.visitCondition(x.Y)
			c.WhenTrue.Join(left.WhenTrue)

		default:
			c = w.splitExpr(e)
		}

	default:
		c = w.splitExpr(e)
	}

	switch {
	case w.folder.isConstantTrue(e):
		c = state.Constant(c.Merge(), true, w.slots.Len())

	case w.folder.isConstantFalse(e):
		c = state.Constant(c.Merge(), false, w.slots.Len())
	}

	return c
}

// splitExpr visits a boolean expression without short-circuit evaluation.
func (w *Walker) splitExpr(e ast.Expr) state.Cond {
	w.expr(e)

	return w.state.Split()
}
