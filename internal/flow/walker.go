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
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"iter"
	"runtime/trace"

	"github.com/bits-and-blooms/bitset"

	"fillmore-labs.com/flowguard/internal/emptystruct"
	"fillmore-labs.com/flowguard/internal/flow/pending"
	"fillmore-labs.com/flowguard/internal/flow/slot"
	"fillmore-labs.com/flowguard/internal/flow/state"
	"fillmore-labs.com/flowguard/internal/stats"
)

// Config configures a [Walker].
type Config struct {
	// Info is the type information of the analyzed package.
	Info *types.Info

	// Empty decides which variables are not worth tracking. Defaults to a new [emptystruct.Cache].
	Empty emptystruct.Checker

	// Stats receives run counters, if not nil.
	Stats *stats.Stats

	// Hooks observe the traversal.
	Hooks Hooks

	// TrackLoops joins loop tail states back into loop heads, scanning again
	// until they are stable. Region analysis needs this to see values flowing
	// around a loop.
	TrackLoops bool

	// InitiallyAssigned selects local variables considered assigned at their
	// declaration even without an initializer.
	InitiallyAssigned func(v *types.Var) bool
}

// Walker performs definite assignment and reachability analysis of one function body at a time.
type Walker struct {
	info   *types.Info
	empty  emptystruct.Checker
	stats  *stats.Stats
	hooks  Hooks
	folder constantFolder

	// persistent over all passes of one analysis
	slots     *slot.Table
	labels    map[*types.Label]state.State
	loopHeads map[ast.Stmt]state.State
	labeled   map[*types.Label]ast.Stmt

	// per pass
	state    state.State
	pending  pending.Queue
	arena    pending.Arena
	seen     map[*types.Label]struct{}
	reported *bitset.BitSet
	diags    []Diagnostic
	frames   []*frame
	targets  branchTargetScopes
	changed  bool

	trackLoops        bool
	initiallyAssigned func(v *types.Var) bool
}

// frame describes the function or function literal being visited.
type frame struct {
	lit     *ast.FuncLit
	results []*types.Var // named results
	returns bool         // has results
}

// New creates a [Walker].
func New(cfg Config) *Walker {
	empty := cfg.Empty
	if empty == nil {
		empty = emptystruct.New()
	}

	return &Walker{
		info:              cfg.Info,
		empty:             empty,
		stats:             cfg.Stats,
		hooks:             cfg.Hooks,
		folder:            constantFolder{info: cfg.Info},
		trackLoops:        cfg.TrackLoops,
		initiallyAssigned: cfg.InitiallyAssigned,
	}
}

// Result is the outcome of analyzing one function body.
type Result struct {
	// Diagnostics of the final pass, in traversal order.
	Diagnostics []Diagnostic

	// Passes is the number of scans needed to reach a fixed point.
	Passes int
}

// Analyze scans the function with the given receiver, signature and body
// until a fixed point is reached and returns the diagnostics of the final pass.
func (w *Walker) Analyze(ctx context.Context, recv *ast.FieldList, typ *ast.FuncType, body *ast.BlockStmt) Result {
	defer trace.StartRegion(ctx, "flow").End()

	w.slots = slot.NewTable()
	w.labels = make(map[*types.Label]state.State)
	w.loopHeads = make(map[ast.Stmt]state.State)
	w.labeled = make(map[*types.Label]ast.Stmt)

	for pass := 1; ; pass++ {
		w.beginPass(pass)
		w.visitFunc(nil, recv, typ, body)

		if !w.changed {
			trace.Logf(ctx, "flow", "%d passes, %d slots, %d branches", pass, w.slots.Len(), w.arena.Len())
			w.stats.Function(pass)

			return Result{Diagnostics: w.diags, Passes: pass}
		}
	}
}

func (w *Walker) beginPass(pass int) {
	w.state = state.Entry(w.slots.Len())
	w.pending = nil
	w.arena.Reset()
	w.seen = make(map[*types.Label]struct{})
	w.reported = bitset.New(uint(w.slots.Len()))
	w.diags = nil
	w.frames = w.frames[:0]
	w.targets = branchTargetScopes{}
	w.changed = false

	if w.hooks.Pass != nil {
		w.hooks.Pass(pass)
	}
}

// State returns the current flow state. Hooks may modify it.
func (w *Walker) State() *state.State { return &w.state }

// Nested reports whether the walker is inside a function literal.
func (w *Walker) Nested() bool { return len(w.frames) > 1 }

// SlotOf returns the slot of v, or [slot.Untracked].
func (w *Walker) SlotOf(v *types.Var) slot.Slot {
	if s, ok := w.slots.Of(v); ok {
		return s
	}

	return slot.Untracked
}

// VarOf returns the variable bound to s.
func (w *Walker) VarOf(s slot.Slot) *types.Var { return w.slots.Var(s) }

// NumSlots returns the number of allocated slots, including the sentinel.
func (w *Walker) NumSlots() int { return w.slots.Len() }

func (w *Walker) report(code Code, n ast.Node, v *types.Var) {
	w.diags = append(w.diags, Diagnostic{Pos: n.Pos(), End: n.End(), Var: v, Code: code})
}

func (w *Walker) notImplemented(n ast.Node) {
	w.diags = append(w.diags, Diagnostic{Pos: n.Pos(), End: n.End(), Detail: fmt.Sprintf("%T", n), Code: NotImplemented})
}

func (w *Walker) frame() *frame { return w.frames[len(w.frames)-1] }

// local reports whether v is a variable of the analyzed function.
func local(v *types.Var) bool {
	if v == nil || v.IsField() || v.Name() == "_" {
		return false
	}

	pkg := v.Pkg()

	return pkg != nil && v.Parent() != pkg.Scope()
}

// captured reports whether v is referenced from a function literal it is declared outside of.
func (w *Walker) captured(v *types.Var) bool {
	lit := w.frame().lit

	return lit != nil && (v.Pos() < lit.Pos() || v.Pos() >= lit.End())
}

// declare starts tracking v, assigned or not.
func (w *Walker) declare(v *types.Var, decl ast.Node, assigned bool) {
	if !local(v) {
		return
	}

	s := slot.Untracked
	if !w.empty.IsEmpty(v.Type()) {
		s = w.slots.For(v)
		w.state.Normalize(w.slots.Len())
	}

	if w.hooks.Declare != nil {
		w.hooks.Declare(v, decl)
	}

	if !assigned && w.initiallyAssigned != nil && w.initiallyAssigned(v) {
		assigned = true
	}

	if !assigned {
		w.state.Unassign(s)

		return
	}

	w.state.Assign(s)

	if w.hooks.Write != nil {
		w.hooks.Write(v, decl)
	}
}

// read notes a read of v. When check is set, reading an unassigned variable is diagnosed.
func (w *Walker) read(v *types.Var, n ast.Node, check bool) {
	if !local(v) {
		return
	}

	captured := w.captured(v)
	if captured && w.hooks.Capture != nil {
		w.hooks.Capture(v, n)
	}

	if w.hooks.Read != nil {
		w.hooks.Read(v, n)
	}

	s := w.SlotOf(v)
	if !s.Tracked() || !w.state.Reachable() || w.state.IsAssigned(s) {
		return
	}

	if w.hooks.Unassigned != nil {
		w.hooks.Unassigned(v, n, captured)
	}

	if !check || captured || w.reported.Test(uint(s)) {
		return
	}

	w.reported.Set(uint(s))
	w.report(UnassignedRead, n, v)
}

// write notes a write of v.
func (w *Walker) write(v *types.Var, n ast.Node) {
	if !local(v) {
		return
	}

	if w.captured(v) && w.hooks.Capture != nil {
		w.hooks.Capture(v, n)
	}

	w.state.Assign(w.SlotOf(v))

	if w.hooks.Write != nil {
		w.hooks.Write(v, n)
	}
}

// addressOf notes that the address of v is taken.
func (w *Walker) addressOf(v *types.Var, n ast.Node) {
	if !local(v) {
		return
	}

	if w.hooks.AddressOf != nil {
		w.hooks.AddressOf(v, n)
	}
}

// checkReachable reports s once if it starts a stretch of unreachable code.
func (w *Walker) checkReachable(s ast.Stmt) {
	if _, ok := s.(*ast.EmptyStmt); ok {
		return
	}

	if w.state.Reachable() || w.state.Flagged() {
		return
	}

	w.report(UnreachableCode, s, nil)
	w.state.Flag()
}

// unreachable returns the state after an unconditional jump.
func (w *Walker) unreachable() state.State {
	return state.Unreachable(w.slots.Len())
}

// dead returns the neutral element for joining exit states.
func (w *Walker) dead() state.State {
	return state.Dead(w.slots.Len())
}

// blocked returns the state after a statement that never completes, like an
// infinite loop. Code after it is reported, unless the statement itself was unreachable.
func (w *Walker) blocked(entry state.State) state.State {
	if entry.Reachable() {
		return w.unreachable()
	}

	return w.dead()
}

// visitFunc visits a function declaration or literal and checks its exits.
func (w *Walker) visitFunc(lit *ast.FuncLit, recv *ast.FieldList, typ *ast.FuncType, body *ast.BlockStmt) {
	f := &frame{lit: lit, returns: typ.Results.NumFields() > 0}
	w.frames = append(w.frames, f)

	saved := w.savePending()
	targets := w.targets
	w.targets = branchTargetScopes{}

	for _, fields := range []*ast.FieldList{recv, typ.Params} {
		for v, id := range w.fieldVars(fields) {
			w.declare(v, id, true)
		}
	}

	for v, id := range w.fieldVars(typ.Results) {
		if local(v) {
			f.results = append(f.results, v)
		}

		w.declare(v, id, false)
	}

	w.enter(body)
	w.visitStmtList(body.List)
	w.checkExits(f, body)
	w.leave(body)

	w.targets = targets
	w.pending = saved
	w.frames = w.frames[:len(w.frames)-1]
}

// checkExits checks the returns of the current function and its fall-through end.
func (w *Walker) checkExits(f *frame, body *ast.BlockStmt) {
	returns := w.pending.Extract(func(b *pending.Branch) bool { return b.Kind == pending.Return })

	for _, b := range returns {
		if ret, ok := b.Node.(*ast.ReturnStmt); ok && len(ret.Results) == 0 {
			w.checkResults(f, b.State, ret)
		}
	}

	if !f.returns {
		return
	}

	rbrace := rbraceOf(body)
	if w.state.Live() {
		w.report(MissingReturn, rbrace, nil)
	}

	w.checkResults(f, w.state, rbrace)
}

func (w *Walker) checkResults(f *frame, s state.State, n ast.Node) {
	if !s.Reachable() {
		return
	}

	for _, v := range f.results {
		if !s.IsAssigned(w.SlotOf(v)) {
			w.report(UnassignedResult, n, v)
		}
	}
}

// fieldVars yields the named variables declared by a field list.
func (w *Walker) fieldVars(fields *ast.FieldList) iter.Seq2[*types.Var, *ast.Ident] {
	return func(yield func(*types.Var, *ast.Ident) bool) {
		if fields == nil {
			return
		}

		for _, field := range fields.List {
			for _, id := range field.Names {
				v, ok := w.info.Defs[id].(*types.Var)
				if !ok {
					continue
				}

				if !yield(v, id) {
					return
				}
			}
		}
	}
}

// rbraceOf returns a node spanning the closing brace of a block.
func rbraceOf(body *ast.BlockStmt) ast.Node {
	return rbrace(body.Rbrace)
}

type rbrace token.Pos

func (r rbrace) Pos() token.Pos { return token.Pos(r) }
func (r rbrace) End() token.Pos { return token.Pos(r) + 1 }

func (w *Walker) savePending() pending.Queue {
	q := w.pending
	w.pending = nil

	return q
}

// restorePending re-queues the still unresolved branches of a scope to the enclosing scope.
func (w *Walker) restorePending(q pending.Queue) {
	w.pending = append(q, w.pending...)
}
