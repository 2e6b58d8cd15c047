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
	"go/token"
	"go/types"

	"fillmore-labs.com/flowguard/internal/noreturn"
)

// visitExpr visits an expression in value context.
func (w *Walker) visitExpr(e ast.Expr) {
	if e == nil {
		return
	}

	w.enter(e)
	w.expr(e)
	w.leave(e)
}

func (w *Walker) expr(e ast.Expr) {
	if tv, ok := w.info.Types[e]; ok && (tv.IsType() || tv.Value != nil) {
		return // types and constants are not evaluated
	}

	switch x := e.(type) {
	case *ast.Ident:
		w.readIdent(x)

	case *ast.BasicLit:

	case *ast.CompositeLit:
		w.visitComposite(x)

	case *ast.FuncLit:
		w.visitFuncLit(x)

	case *ast.ParenExpr:
		w.visitExpr(x.X)

	case *ast.SelectorExpr:
		w.visitSelector(x)

	case *ast.IndexExpr:
		w.visitExpr(x.X)
		w.visitExpr(x.Index)

	case *ast.IndexListExpr:
		w.visitExpr(x.X)

		for _, i := range x.Indices {
			w.visitExpr(i)
		}

	case *ast.SliceExpr:
		w.visitExpr(x.X)
		w.visitExpr(x.Low)
		w.visitExpr(x.High)
		w.visitExpr(x.Max)

	case *ast.TypeAssertExpr:
		w.visitExpr(x.X)

	case *ast.CallExpr:
		w.visitCall(x, true)

	case *ast.StarExpr:
		w.visitExpr(x.X)

	case *ast.UnaryExpr:
		switch x.Op {
		case token.AND:
			w.visitAddress(x.X)

		case token.NOT:
			w.state = w.cond(x).Merge()

		default:
			w.visitExpr(x.X)
		}

	case *ast.BinaryExpr:
		switch x.Op {
		case token.LAND, token.LOR:
			w.state = w.cond(x).Merge()

		default:
			w.visitExpr(x.X)
			w.visitExpr(x.Y)
		}

	case *ast.KeyValueExpr:
		w.visitExpr(x.Key)
		w.visitExpr(x.Value)

	case *ast.ArrayType, *ast.ChanType, *ast.FuncType, *ast.InterfaceType,
		*ast.MapType, *ast.StructType, *ast.Ellipsis:

	default:
		w.notImplemented(e)
	}
}

func (w *Walker) readIdent(id *ast.Ident) {
	if v, ok := w.info.Uses[id].(*types.Var); ok {
		w.read(v, id, true)
	}
}

func (w *Walker) visitSelector(x *ast.SelectorExpr) {
	sel, ok := w.info.Selections[x]
	if !ok { // qualified identifier
		w.readIdent(x.Sel)

		return
	}

	if w.takesAddress(x, sel) {
		w.visitAddress(x.X)

		return
	}

	w.visitExpr(x.X)
}

// takesAddress reports whether the selection is a pointer method on an
// addressable value, which implicitly takes the address of the operand.
func (w *Walker) takesAddress(x *ast.SelectorExpr, sel *types.Selection) bool {
	if sel.Kind() != types.MethodVal || sel.Indirect() {
		return false
	}

	fun, ok := sel.Obj().(*types.Func)
	if !ok {
		return false
	}

	recv := fun.Signature().Recv()
	if recv == nil || !isPointer(recv.Type()) {
		return false
	}

	return !isPointer(w.info.TypeOf(x.X))
}

func isPointer(t types.Type) bool {
	if t == nil {
		return false
	}

	_, ok := t.Underlying().(*types.Pointer)

	return ok
}

// visitComposite visits the elements of a composite literal. Struct field names are not evaluated.
func (w *Walker) visitComposite(lit *ast.CompositeLit) {
	isStruct := false

	if t := w.info.TypeOf(lit); t != nil {
		if p, ok := t.Underlying().(*types.Pointer); ok {
			t = p.Elem()
		}

		_, isStruct = t.Underlying().(*types.Struct)
	}

	for _, elt := range lit.Elts {
		kv, ok := elt.(*ast.KeyValueExpr)
		if !ok {
			w.visitExpr(elt)

			continue
		}

		if !isStruct {
			w.visitExpr(kv.Key)
		}

		w.visitExpr(kv.Value)
	}
}

// visitFuncLit visits the body of a function literal. Assignments inside of
// the literal do not affect the enclosing function, since the literal may never run.
func (w *Walker) visitFuncLit(lit *ast.FuncLit) {
	saved := w.state.Clone()

	w.visitFunc(lit, nil, lit.Type, lit.Body)

	w.state = saved
	w.state.Normalize(w.slots.Len())
}

// visitCall visits the function value and arguments of a call. When
// terminate is set, calls that never return end the current flow.
func (w *Walker) visitCall(call *ast.CallExpr, terminate bool) {
	w.visitExpr(call.Fun)

	for _, arg := range call.Args {
		w.visitExpr(arg)
	}

	if !terminate {
		return
	}

	switch noreturn.Classify(w.info, call) {
	case noreturn.Panics:
		w.state = w.blocked(w.state)

	case noreturn.Exits:
		w.state = w.dead()

	case noreturn.Returns:
	}
}

// access describes how an assignment target is used.
type access uint8

const (
	accessWrite   access = iota // x = ...
	accessUpdate                // x op= ..., x++
	accessAddress               // &x
)

// visitTarget visits the target of an assignment. When read is set, the
// previous value is used, as in compound assignments.
func (w *Walker) visitTarget(e ast.Expr, read bool) {
	a := accessWrite
	if read {
		a = accessUpdate
	}

	w.target(e, a)
}

// visitAddress visits the operand of an explicit or implicit address operation.
// The variable is considered assigned afterward, since it may be written through the pointer.
func (w *Walker) visitAddress(e ast.Expr) {
	w.target(e, accessAddress)
}

func (w *Walker) target(e ast.Expr, a access) {
	w.enter(e)
	defer w.leave(e)

	switch x := e.(type) {
	case *ast.Ident:
		v, ok := w.info.Uses[x].(*types.Var)
		if !ok {
			return // blank identifier
		}

		switch a {
		case accessUpdate:
			w.read(v, x, true)

		case accessAddress:
			w.read(v, x, false)
			w.addressOf(v, x)

		case accessWrite:
		}

		w.write(v, x)

	case *ast.ParenExpr:
		w.target(x.X, a)

	case *ast.SelectorExpr:
		sel, ok := w.info.Selections[x]
		if !ok {
			return // qualified identifier
		}

		if sel.Kind() == types.FieldVal && !sel.Indirect() && !isPointer(w.info.TypeOf(x.X)) {
			w.target(x.X, a) // field of a struct variable

			return
		}

		w.visitExpr(x.X)

	case *ast.IndexExpr:
		if t := w.info.TypeOf(x.X); t != nil {
			if _, ok := t.Underlying().(*types.Array); ok {
				w.target(x.X, a) // element of an array variable
				w.visitExpr(x.Index)

				return
			}
		}

		w.visitExpr(x.X)
		w.visitExpr(x.Index)

	case *ast.StarExpr:
		w.visitExpr(x.X)

	default:
		w.expr(e)
	}
}
