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
	"fillmore-labs.com/flowguard/internal/flow/state"
)

func (w *Walker) visitFor(s *ast.ForStmt) {
	if s.Init != nil {
		w.visitStmt(s.Init)
	}

	saved := w.savePending()
	w.loopHead(s)

	var exit state.State

	if s.Cond != nil {
		c := w.visitCondition(s.Cond)
		w.state, exit = c.WhenTrue, c.WhenFalse
	} else {
		exit = w.blocked(w.state)
	}

	w.visitLoopBody(s, s.Body)

	if s.Post != nil {
		w.visitStmt(s.Post)
	}

	w.loopTail(s)

	w.resolve(pending.Break, s, &exit)
	w.restorePending(saved)

	w.state = exit
}

func (w *Walker) visitRange(s *ast.RangeStmt) {
	w.visitExpr(s.X)

	saved := w.savePending()
	w.loopHead(s)

	exit := w.state.Clone() // zero iterations

	switch s.Tok {
	case token.DEFINE:
		for _, e := range []ast.Expr{s.Key, s.Value} {
			id, ok := e.(*ast.Ident)
			if !ok {
				continue
			}

			if v, ok := w.info.Defs[id].(*types.Var); ok {
				w.declare(v, id, true)
			}
		}

	case token.ASSIGN:
		for _, e := range []ast.Expr{s.Key, s.Value} {
			if e != nil {
				w.visitTarget(e, false)
			}
		}

	case token.ILLEGAL: // for range x
	}

	w.visitLoopBody(s, s.Body)
	w.loopTail(s)

	exit.Join(w.state)
	w.resolve(pending.Break, s, &exit)
	w.restorePending(saved)

	w.state = exit
}

// visitLoopBody visits the body of loop s and joins the continue branches into the end state.
func (w *Walker) visitLoopBody(s ast.Stmt, body *ast.BlockStmt) {
	oldBreak := w.targets.pushBreak(s)
	oldContinue := w.targets.pushContinue(s)

	w.visitStmt(body)

	w.targets.popContinue(oldContinue)
	w.targets.popBreak(oldBreak)

	w.resolve(pending.Continue, s, &w.state)
}

// loopHead joins the head state recorded for s in an earlier pass into the
// current state and records the result.
func (w *Walker) loopHead(s ast.Stmt) {
	if !w.trackLoops {
		return
	}

	if head, ok := w.loopHeads[s]; ok {
		w.state.Join(head)
	}

	w.loopHeads[s] = w.state.Clone()
}

// loopTail joins the state at the end of an iteration back into the head
// state of s, requesting another pass when this invalidates the head.
func (w *Walker) loopTail(s ast.Stmt) {
	if !w.trackLoops {
		return
	}

	head := w.loopHeads[s]
	if head.Join(w.state) {
		w.loopHeads[s] = head
		w.changed = true
	}
}
