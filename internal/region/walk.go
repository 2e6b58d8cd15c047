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
	"runtime/trace"
	"slices"

	"fillmore-labs.com/flowguard/internal/emptystruct"
	"fillmore-labs.com/flowguard/internal/flow"
	"fillmore-labs.com/flowguard/internal/flow/pending"
)

// observer receives the events of one region traversal. Nil fields are ignored.
type observer struct {
	pass        func()
	enterRegion func(w *flow.Walker)
	leaveRegion func(w *flow.Walker)

	declare    func(w *flow.Walker, v *types.Var, in bool)
	read       func(w *flow.Walker, v *types.Var, in bool)
	write      func(w *flow.Walker, v *types.Var, in bool)
	unassigned func(w *flow.Walker, v *types.Var, captured, in bool)
	capture    func(v *types.Var, in bool)
	addressOf  func(v *types.Var)
	jump       func(w *flow.Walker, b *pending.Branch)
}

// walkOptions configure the walker used for a traversal.
type walkOptions struct {
	empty             emptystruct.Checker
	trackLoops        bool
	initiallyAssigned func(v *types.Var) bool
}

// walk traverses the function containing r, reporting events to o.
func walk(ctx context.Context, name string, info *types.Info, r Region, opts walkOptions, o observer) flow.Result {
	defer trace.StartRegion(ctx, name).End()

	var w *flow.Walker

	c := &cursor{region: r}
	if o.enterRegion != nil {
		c.onEnter = func() { o.enterRegion(w) }
	}

	if o.leaveRegion != nil {
		c.onLeave = func() { o.leaveRegion(w) }
	}

	hooks := flow.Hooks{
		Pass: func(int) {
			c.reset()

			if o.pass != nil {
				o.pass()
			}
		},
		Enter: c.enter,
		Leave: c.leave,
	}

	if o.declare != nil {
		hooks.Declare = func(v *types.Var, _ ast.Node) { o.declare(w, v, c.isInside()) }
	}

	if o.read != nil {
		hooks.Read = func(v *types.Var, _ ast.Node) { o.read(w, v, c.isInside()) }
	}

	if o.write != nil {
		hooks.Write = func(v *types.Var, _ ast.Node) { o.write(w, v, c.isInside()) }
	}

	if o.unassigned != nil {
		hooks.Unassigned = func(v *types.Var, _ ast.Node, captured bool) { o.unassigned(w, v, captured, c.isInside()) }
	}

	if o.capture != nil {
		hooks.Capture = func(v *types.Var, _ ast.Node) { o.capture(v, c.isInside()) }
	}

	if o.addressOf != nil {
		hooks.AddressOf = func(v *types.Var, _ ast.Node) { o.addressOf(v) }
	}

	if o.jump != nil {
		hooks.Jump = func(b *pending.Branch) { o.jump(w, b) }
	}

	w = flow.New(flow.Config{
		Info:              info,
		Empty:             opts.empty,
		Hooks:             hooks,
		TrackLoops:        opts.trackLoops,
		InitiallyAssigned: opts.initiallyAssigned,
	})

	fn := r.Func

	return w.Analyze(ctx, fn.Recv, fn.Type, fn.Body)
}

// varSet is a set of variables.
type varSet map[*types.Var]struct{}

func (s varSet) add(v *types.Var) { s[v] = struct{}{} }

func (s varSet) has(v *types.Var) bool {
	_, ok := s[v]

	return ok
}

// sorted returns the variables of s in declaration order.
func (s varSet) sorted() []*types.Var {
	vars := make([]*types.Var, 0, len(s))
	for v := range s {
		vars = append(vars, v)
	}

	slices.SortFunc(vars, func(a, b *types.Var) int {
		return cmp.Or(cmp.Compare(a.Pos(), b.Pos()), cmp.Compare(scopePos(a), scopePos(b)))
	})

	return vars
}

// scopePos orders the implicit variables of type switch clauses, which share a declaration.
func scopePos(v *types.Var) token.Pos {
	if p := v.Parent(); p != nil {
		return p.Pos()
	}

	return token.NoPos
}

// clear empties the set for another pass.
func (s varSet) clear() { clear(s) }
