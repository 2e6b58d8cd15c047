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
	"fillmore-labs.com/flowguard/internal/flow/state"
)

func (w *Walker) visitIf(s *ast.IfStmt) {
	if s.Init != nil {
		w.visitStmt(s.Init)
	}

	c := w.visitCondition(s.Cond)

	w.state = c.WhenTrue
	w.visitStmt(s.Body)
	then := w.state

	w.state = c.WhenFalse
	if s.Else != nil {
		w.visitStmt(s.Else)
	}

	w.state.Join(then)
}

// visitSwitch visits an expression switch. Clauses are visited in source order,
// a default clause starts from the state of all case expressions preceding it.
func (w *Walker) visitSwitch(s *ast.SwitchStmt) {
	if s.Init != nil {
		w.visitStmt(s.Init)
	}

	if s.Tag != nil {
		w.visitExpr(s.Tag)
	}

	saved := w.savePending()
	oldBreak := w.targets.pushBreak(s)

	noMatch, after := w.state, w.dead()
	hasDefault := false

	for i, stmt := range s.Body.List {
		clause, ok := stmt.(*ast.CaseClause)
		if !ok {
			w.notImplemented(stmt)

			continue
		}

		var entry state.State

		if clause.List == nil {
			hasDefault = true
			entry = noMatch.Clone()
		} else {
			entry, noMatch = w.matchCases(s.Tag != nil, noMatch, clause.List)
		}

		var next ast.Node
		if i+1 < len(s.Body.List) {
			next = s.Body.List[i+1]
		}

		w.resolve(pending.Fallthrough, clause, &entry)

		w.state = entry
		oldFallthrough := w.targets.pushFallthrough(next)
		w.visitStmtList(clause.Body)
		w.targets.popFallthrough(oldFallthrough)

		after.Join(w.state)
	}

	if !hasDefault {
		after.Join(noMatch)
	}

	w.targets.popBreak(oldBreak)
	w.resolve(pending.Break, s, &after)
	w.restorePending(saved)

	w.state = after
}

// matchCases evaluates the case expressions of a clause, starting with no
// preceding case matched. It returns the states for entering the clause and
// for continuing with the next one.
func (w *Walker) matchCases(tagged bool, noMatch state.State, list []ast.Expr) (matched, rest state.State) {
	matched = w.dead()
	w.state = noMatch

	for _, e := range list {
		if tagged {
			w.visitExpr(e)
			matched.Join(w.state)

			continue
		}

		c := w.visitCondition(e)
		matched.Join(c.WhenTrue)
		w.state = c.WhenFalse
	}

	return matched, w.state
}

func (w *Walker) visitTypeSwitch(s *ast.TypeSwitchStmt) {
	if s.Init != nil {
		w.visitStmt(s.Init)
	}

	w.enter(s.Assign)

	switch a := s.Assign.(type) {
	case *ast.AssignStmt: // x := y.(type)
		if len(a.Rhs) == 1 {
			w.visitGuard(a.Rhs[0])
		}

	case *ast.ExprStmt: // y.(type)
		w.visitGuard(a.X)

	default:
		w.notImplemented(s.Assign)
	}

	w.leave(s.Assign)

	saved := w.savePending()
	oldBreak := w.targets.pushBreak(s)

	entry, after := w.state, w.dead()
	hasDefault := false

	for _, stmt := range s.Body.List {
		clause, ok := stmt.(*ast.CaseClause)
		if !ok {
			w.notImplemented(stmt)

			continue
		}

		if clause.List == nil {
			hasDefault = true
		}

		w.state = entry.Clone()

		if v, ok := w.info.Implicits[clause].(*types.Var); ok {
			w.declare(v, clause, true)
		}

		w.visitStmtList(clause.Body)
		after.Join(w.state)
	}

	if !hasDefault {
		after.Join(entry)
	}

	w.targets.popBreak(oldBreak)
	w.resolve(pending.Break, s, &after)
	w.restorePending(saved)

	w.state = after
}

// visitGuard visits the operand of a type switch guard.
func (w *Walker) visitGuard(e ast.Expr) {
	if ta, ok := ast.Unparen(e).(*ast.TypeAssertExpr); ok {
		w.visitExpr(ta.X)

		return
	}

	w.visitExpr(e)
}

func (w *Walker) visitSelect(s *ast.SelectStmt) {
	saved := w.savePending()
	oldBreak := w.targets.pushBreak(s)

	entry := w.state
	after := w.dead()

	if len(s.Body.List) == 0 {
		after = w.blocked(entry)
	}

	for _, stmt := range s.Body.List {
		clause, ok := stmt.(*ast.CommClause)
		if !ok {
			w.notImplemented(stmt)

			continue
		}

		w.state = entry.Clone()

		if clause.Comm != nil {
			w.visitStmt(clause.Comm)
		}

		w.visitStmtList(clause.Body)
		after.Join(w.state)
	}

	w.targets.popBreak(oldBreak)
	w.resolve(pending.Break, s, &after)
	w.restorePending(saved)

	w.state = after
}
