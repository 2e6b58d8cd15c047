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

	"fillmore-labs.com/flowguard/internal/flow/pending"
)

// visitStmtList visits a statement sequence, reporting the first statement of unreachable stretches.
func (w *Walker) visitStmtList(list []ast.Stmt) {
	for _, s := range list {
		if _, ok := s.(*ast.LabeledStmt); !ok {
			w.checkReachable(s)
		}

		w.visitStmt(s)
	}
}

func (w *Walker) visitStmt(s ast.Stmt) {
	w.enter(s)
	defer w.leave(s)

	switch s := s.(type) {
	case *ast.AssignStmt:
		w.visitAssign(s)

	case *ast.BlockStmt:
		w.visitStmtList(s.List)

	case *ast.BranchStmt:
		w.visitBranch(s)

	case *ast.DeclStmt:
		w.visitDecl(s)

	case *ast.DeferStmt:
		w.visitDeferred(s.Call)

	case *ast.EmptyStmt:

	case *ast.ExprStmt:
		w.visitExpr(s.X)

	case *ast.ForStmt:
		w.visitFor(s)

	case *ast.GoStmt:
		w.visitDeferred(s.Call)

	case *ast.IfStmt:
		w.visitIf(s)

	case *ast.IncDecStmt:
		w.visitTarget(s.X, true)

	case *ast.LabeledStmt:
		w.visitLabeled(s)

	case *ast.RangeStmt:
		w.visitRange(s)

	case *ast.ReturnStmt:
		w.visitReturn(s)

	case *ast.SelectStmt:
		w.visitSelect(s)

	case *ast.SendStmt:
		w.visitExpr(s.Chan)
		w.visitExpr(s.Value)

	case *ast.SwitchStmt:
		w.visitSwitch(s)

	case *ast.TypeSwitchStmt:
		w.visitTypeSwitch(s)

	default:
		w.notImplemented(s)
	}
}

func (w *Walker) visitAssign(s *ast.AssignStmt) {
	for _, e := range s.Rhs {
		w.visitExpr(e)
	}

	switch s.Tok {
	case token.DEFINE:
		for _, e := range s.Lhs {
			id, ok := e.(*ast.Ident)
			if !ok {
				continue
			}

			if v, ok := w.info.Defs[id].(*types.Var); ok {
				w.declare(v, id, true)
			} else {
				w.visitTarget(id, false) // redeclared
			}
		}

	case token.ASSIGN:
		for _, e := range s.Lhs {
			w.visitTarget(e, false)
		}

	default: // x op= y
		for _, e := range s.Lhs {
			w.visitTarget(e, true)
		}
	}
}

func (w *Walker) visitDecl(s *ast.DeclStmt) {
	decl, ok := s.Decl.(*ast.GenDecl)
	if !ok || decl.Tok != token.VAR {
		return // constants and types have no flow
	}

	for _, spec := range decl.Specs {
		vspec, ok := spec.(*ast.ValueSpec)
		if !ok {
			continue
		}

		for _, e := range vspec.Values {
			w.visitExpr(e)
		}

		for _, id := range vspec.Names {
			if v, ok := w.info.Defs[id].(*types.Var); ok {
				w.declare(v, id, len(vspec.Values) > 0)
			}
		}
	}
}

// visitDeferred visits the function value and arguments of a go or defer statement,
// which are evaluated immediately.
func (w *Walker) visitDeferred(call *ast.CallExpr) {
	w.enter(call)
	w.visitCall(call, false)
	w.leave(call)
}

func (w *Walker) visitReturn(s *ast.ReturnStmt) {
	for _, e := range s.Results {
		w.visitExpr(e)
	}

	f := w.frame()
	for _, v := range f.results {
		if len(s.Results) > 0 {
			w.write(v, s)
		} else {
			w.read(v, s, false)
		}
	}

	b := w.arena.New()
	b.Kind, b.Node = pending.Return, s
	w.jump(b)
}
