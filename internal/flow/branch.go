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
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"fillmore-labs.com/flowguard/internal/flow/pending"
	"fillmore-labs.com/flowguard/internal/flow/state"
)

// branchTargetScopes tracks the statements unlabeled break, continue and fallthrough statements resolve to.
type branchTargetScopes struct {
	// currentBreak is the innermost loop, switch or select statement.
	currentBreak ast.Node

	// currentContinue is the innermost loop.
	currentContinue ast.Node

	// currentFallthrough is the clause following the current switch clause.
	currentFallthrough ast.Node
}

func (s *branchTargetScopes) branchTarget(tok token.Token) ast.Node {
	switch tok {
	case token.BREAK:
		return s.currentBreak

	case token.CONTINUE:
		return s.currentContinue

	case token.FALLTHROUGH:
		return s.currentFallthrough

	default:
		panic(fmt.Sprintf("unexpected branch token: %s", tok))
	}
}

func (s *branchTargetScopes) pushBreak(n ast.Node) (old ast.Node) {
	old, s.currentBreak = s.currentBreak, n
	return old
}

func (s *branchTargetScopes) popBreak(old ast.Node) {
	s.currentBreak = old
}

func (s *branchTargetScopes) pushContinue(n ast.Node) (old ast.Node) {
	old, s.currentContinue = s.currentContinue, n
	return old
}

func (s *branchTargetScopes) popContinue(old ast.Node) {
	s.currentContinue = old
}

func (s *branchTargetScopes) pushFallthrough(n ast.Node) (old ast.Node) {
	old, s.currentFallthrough = s.currentFallthrough, n
	return old
}

func (s *branchTargetScopes) popFallthrough(old ast.Node) {
	s.currentFallthrough = old
}

// jump captures the current state into b and continues unreachable. A goto
// to a label already seen in this pass is joined into the label right away.
func (w *Walker) jump(b *pending.Branch) {
	b.State, w.state = w.state, w.blocked(w.state)

	if w.hooks.Jump != nil {
		w.hooks.Jump(b)
	}

	if _, backward := w.seen[b.Label]; b.Kind == pending.Goto && backward {
		w.joinLabel(b.Label, b.State, true)

		return
	}

	w.pending.Add(b)
}

func (w *Walker) visitBranch(s *ast.BranchStmt) {
	b := w.arena.New()
	b.Node = s

	var label *types.Label
	if s.Label != nil {
		label, _ = w.info.Uses[s.Label].(*types.Label)
	}

	switch s.Tok {
	case token.BREAK:
		b.Kind = pending.Break

	case token.CONTINUE:
		b.Kind = pending.Continue

	case token.GOTO:
		b.Kind, b.Label = pending.Goto, label

	case token.FALLTHROUGH:
		b.Kind = pending.Fallthrough

	default:
		panic(fmt.Errorf("unexpected branch statement %s at %d", s.Tok, s.Pos()))
	}

	if b.Kind != pending.Goto {
		if label != nil {
			b.Target = w.labeled[label]
		} else {
			b.Target = w.targets.branchTarget(s.Tok)
		}
	}

	w.jump(b)
}

// joinLabel joins s into the recorded state of label. A change caused by a
// backward branch invalidates what was assumed after the label, requiring another pass.
func (w *Walker) joinLabel(label *types.Label, s state.State, backward bool) {
	entry, ok := w.labels[label]
	if !ok {
		entry = w.dead()
	}

	if entry.Join(s) && backward {
		w.changed = true
	}

	w.labels[label] = entry
}

func (w *Walker) visitLabeled(s *ast.LabeledStmt) {
	label, _ := w.info.Defs[s.Label].(*types.Label)
	if label == nil {
		w.checkReachable(s.Stmt)
		w.visitStmt(s.Stmt)

		return
	}

	for _, b := range w.pending.Extract(func(b *pending.Branch) bool { return b.Kind == pending.Goto && b.Label == label }) {
		w.joinLabel(label, b.State, false)
	}

	if entry, ok := w.labels[label]; ok {
		w.state.Join(entry)
	}

	w.seen[label] = struct{}{}
	w.labeled[label] = s.Stmt

	w.checkReachable(s.Stmt)
	w.visitStmt(s.Stmt)
}

// resolve removes the pending branches of the given kind targeting n and joins their states into s.
func (w *Walker) resolve(kind pending.Kind, n ast.Node, s *state.State) {
	for _, b := range w.pending.Extract(func(b *pending.Branch) bool { return b.Kind == kind && b.Target == n }) {
		s.Join(b.State)
	}
}
