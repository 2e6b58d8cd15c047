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

package region

import (
	"cmp"
	"context"
	"go/ast"
	"go/token"
	"go/types"
	"slices"

	"fillmore-labs.com/flowguard/internal/emptystruct"
	"fillmore-labs.com/flowguard/internal/flow"
	"fillmore-labs.com/flowguard/internal/flow/pending"
	"fillmore-labs.com/flowguard/internal/flow/state"
)

// declaredVariables returns the variables declared inside the region.
func declaredVariables(ctx context.Context, info *types.Info, r Region) []*types.Var {
	vars := make(varSet)

	walk(ctx, "declared", info, r, walkOptions{empty: emptystruct.Never{}}, observer{
		pass: vars.clear,
		declare: func(_ *flow.Walker, v *types.Var, in bool) {
			if in {
				vars.add(v)
			}
		},
	})

	return vars.sorted()
}

// controlFlow describes how control enters and leaves the region.
type controlFlow struct {
	exits, returns               []ast.Stmt
	startReachable, endReachable bool
}

func controlFlowOf(ctx context.Context, info *types.Info, r Region) controlFlow {
	var cf controlFlow

	walk(ctx, "exits", info, r, walkOptions{}, observer{
		pass: func() { cf = controlFlow{} },
		enterRegion: func(w *flow.Walker) {
			cf.startReachable = w.State().Reachable()
		},
		leaveRegion: func(w *flow.Walker) {
			cf.endReachable = w.State().Reachable()
		},
		jump: func(w *flow.Walker, b *pending.Branch) {
			if !leaves(r, w, b) {
				return
			}

			cf.exits = append(cf.exits, b.Node)

			if b.Kind == pending.Return {
				cf.returns = append(cf.returns, b.Node)
			}
		},
	})

	return cf
}

// leaves reports whether b jumps from inside the region to a target outside of it.
func leaves(r Region, w *flow.Walker, b *pending.Branch) bool {
	if !r.Contains(b.Node.Pos()) {
		return false
	}

	switch b.Kind {
	case pending.Return:
		return !w.Nested()

	case pending.Goto:
		return b.Label == nil || !r.Contains(b.Label.Pos())

	default:
		return b.Target == nil || !r.Contains(b.Target.Pos())
	}
}

// enters reports whether b is a goto from outside the region to a label inside of it.
func enters(r Region, b *pending.Branch) bool {
	return b.Kind == pending.Goto && b.Label != nil &&
		!r.Contains(b.Node.Pos()) && r.Contains(b.Label.Pos())
}

// resetEntering considers everything unassigned on a goto entering the region,
// like on the regular entry.
func resetEntering(r Region) func(w *flow.Walker, b *pending.Branch) {
	return func(w *flow.Walker, b *pending.Branch) {
		if enters(r, b) {
			b.State.Reset(w.NumSlots(), nil)
		}
	}
}

// readWrite holds the variables read or written, partitioned by where the access happens.
type readWrite struct {
	readInside, writtenInside   varSet
	readOutside, writtenOutside varSet

	captured, capturedInside, capturedOutside varSet
	addressTaken                              varSet
}

func newReadWrite() *readWrite {
	return &readWrite{
		readInside:      make(varSet),
		writtenInside:   make(varSet),
		readOutside:     make(varSet),
		writtenOutside:  make(varSet),
		captured:        make(varSet),
		capturedInside:  make(varSet),
		capturedOutside: make(varSet),
		addressTaken:    make(varSet),
	}
}

func (rw *readWrite) clear() {
	for _, s := range []varSet{
		rw.readInside, rw.writtenInside, rw.readOutside, rw.writtenOutside,
		rw.captured, rw.capturedInside, rw.capturedOutside, rw.addressTaken,
	} {
		s.clear()
	}
}

func readsAndWrites(ctx context.Context, info *types.Info, r Region) *readWrite {
	rw := newReadWrite()

	walk(ctx, "readwrite", info, r, walkOptions{empty: emptystruct.Never{}}, observer{
		pass: rw.clear,
		read: func(_ *flow.Walker, v *types.Var, in bool) {
			if in {
				rw.readInside.add(v)
			} else {
				rw.readOutside.add(v)
			}
		},
		write: func(_ *flow.Walker, v *types.Var, in bool) {
			if in {
				rw.writtenInside.add(v)
			} else {
				rw.writtenOutside.add(v)
			}
		},
		capture: func(v *types.Var, in bool) {
			rw.captured.add(v)

			if in {
				rw.capturedInside.add(v)
			} else {
				rw.capturedOutside.add(v)
			}
		},
		addressOf: rw.addressTaken.add,
	})

	return rw
}

// unassignedVariables returns the variables read somewhere in the function
// without being definitely assigned, ignoring reads from function literals.
func unassignedVariables(ctx context.Context, info *types.Info, r Region) varSet {
	vars := make(varSet)

	walk(ctx, "unassigned", info, r, walkOptions{}, observer{
		pass: vars.clear,
		unassigned: func(_ *flow.Walker, v *types.Var, captured, _ bool) {
			if !captured {
				vars.add(v)
			}
		},
	})

	return vars
}

// dataFlowsIn returns the variables declared outside of the region whose
// value on entry may be read inside of it. Everything is considered
// unassigned on entry, so that reads not preceded by an assignment inside
// the region show up as unassigned.
func dataFlowsIn(ctx context.Context, info *types.Info, r Region) []*types.Var {
	vars := make(varSet)

	walk(ctx, "flowsin", info, r, walkOptions{}, observer{
		pass: vars.clear,
		enterRegion: func(w *flow.Walker) {
			w.State().Reset(w.NumSlots(), nil)
		},
		jump: resetEntering(r),
		unassigned: func(_ *flow.Walker, v *types.Var, _, in bool) {
			if in && !r.Contains(v.Pos()) {
				vars.add(v)
			}
		},
	})

	return vars.sorted()
}

// dataFlowsOut returns the variables written inside of the region whose value
// may be read after leaving it. Writes inside the region mark the variable
// unassigned, so that reads outside reached by them show up as unassigned.
func dataFlowsOut(ctx context.Context, info *types.Info, r Region, flowsIn []*types.Var, unassigned, written varSet) []*types.Var {
	vars, results := make(varSet), namedResults(info, r.Func.Type)

	opts := walkOptions{trackLoops: true, initiallyAssigned: unassigned.has}

	walk(ctx, "flowsout", info, r, opts, observer{
		pass: vars.clear,
		enterRegion: func(w *flow.Walker) {
			// values flowing in from the previous iteration of a loop were written inside
			for _, v := range flowsIn {
				if s := w.SlotOf(v); s.Tracked() && !w.State().IsAssigned(s) {
					vars.add(v)
				}
			}
		},
		write: func(w *flow.Walker, v *types.Var, in bool) {
			if !in {
				return
			}

			// a deferred function may observe named results after a panic
			if results.has(v) && w.State().Reachable() {
				vars.add(v)
			}

			w.State().Unassign(w.SlotOf(v))
		},
		unassigned: func(_ *flow.Walker, v *types.Var, _, in bool) {
			if !in {
				vars.add(v)
			}
		},
	})

	out := make(varSet, len(vars))

	for v := range vars {
		if written.has(v) {
			out.add(v)
		}
	}

	return out.sorted()
}

func namedResults(info *types.Info, typ *ast.FuncType) varSet {
	results := make(varSet)

	if typ.Results == nil {
		return results
	}

	for _, field := range typ.Results.List {
		for _, id := range field.Names {
			if v, ok := info.Defs[id].(*types.Var); ok {
				results.add(v)
			}
		}
	}

	return results
}

// alwaysAssigned returns the variables assigned on every path through the region.
func alwaysAssigned(ctx context.Context, info *types.Info, r Region) []*types.Var {
	var (
		vars  []*types.Var
		exits []state.State
	)

	reset := resetEntering(r)

	walk(ctx, "alwaysassigned", info, r, walkOptions{}, observer{
		pass: func() { vars, exits = nil, nil },
		enterRegion: func(w *flow.Walker) {
			w.State().Reset(w.NumSlots(), nil)
		},
		jump: func(w *flow.Walker, b *pending.Branch) {
			reset(w, b)

			if leaves(r, w, b) {
				exits = append(exits, b.State.Clone())
			}
		},
		leaveRegion: func(w *flow.Walker) {
			end := w.State().Clone()

			for _, s := range exits {
				end.Join(s)
			}

			if !end.Reachable() {
				return
			}

			for s := range end.Assigned() {
				vars = append(vars, w.VarOf(s))
			}
		},
	})

	slices.SortFunc(vars, func(a, b *types.Var) int { return cmp.Compare(a.Pos(), b.Pos()) })

	return vars
}

// entryPoints returns the labeled statements inside the region targeted by a goto from outside of it.
func entryPoints(info *types.Info, r Region) []*ast.LabeledStmt {
	labels := make(map[types.Object]*ast.LabeledStmt)

	for n := range ast.Preorder(r.Func.Body) {
		if l, ok := n.(*ast.LabeledStmt); ok && r.Contains(l.Pos()) {
			if obj := info.Defs[l.Label]; obj != nil {
				labels[obj] = l
			}
		}
	}

	if len(labels) == 0 {
		return nil
	}

	var entries []*ast.LabeledStmt

	for n := range ast.Preorder(r.Func.Body) {
		b, ok := n.(*ast.BranchStmt)
		if !ok || b.Tok != token.GOTO || b.Label == nil || r.Contains(b.Pos()) {
			continue
		}

		if l, ok := labels[info.Uses[b.Label]]; ok && !slices.Contains(entries, l) {
			entries = append(entries, l)
		}
	}

	slices.SortFunc(entries, func(a, b *ast.LabeledStmt) int { return cmp.Compare(a.Pos(), b.Pos()) })

	return entries
}
