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
	"context"
	"go/ast"
	"go/token"
	"go/types"
	"log/slog"
	"runtime/trace"
	"sync/atomic"

	"fillmore-labs.com/flowguard/internal/stats"
)

// Config describes a region to analyze.
type Config struct {
	// Info is the type information of the package containing File.
	Info *types.Info

	// File contains the region.
	File *ast.File

	// Start and End delimit the region.
	Start, End token.Pos

	// Stats receives region counters, if not nil.
	Stats *stats.Stats
}

// Analysis answers data flow questions about a region. Results are computed
// on first use and cached. It is safe to use concurrently.
type Analysis struct {
	info   *types.Info
	region Region
	err    error

	declared   memo[[]*types.Var]
	control    memo[controlFlow]
	readWrite  memo[*readWrite]
	unassigned memo[varSet]
	flowsIn    memo[[]*types.Var]
	flowsOut   memo[[]*types.Var]
	assigned   memo[[]*types.Var]
	entries    memo[[]*ast.LabeledStmt]
}

// New validates the region described by cfg and prepares its analysis.
func New(ctx context.Context, cfg Config) *Analysis {
	r, err := Select(cfg.Info, cfg.File, cfg.Start, cfg.End)

	cfg.Stats.Region(err == nil)

	if err != nil {
		slog.DebugContext(ctx, "Invalid region", slog.Int("start", int(cfg.Start)), slog.Int("end", int(cfg.End)), slog.Any("error", err))
	}

	return &Analysis{info: cfg.Info, region: r, err: err}
}

// Succeeded reports whether the region is a valid analysis target. All other
// results are empty when it is not.
func (a *Analysis) Succeeded() bool { return a.err == nil }

// Err returns the reason the region is not a valid analysis target.
func (a *Analysis) Err() error { return a.err }

// Region returns the validated region.
func (a *Analysis) Region() Region { return a.region }

// VariablesDeclared returns the variables declared inside the region.
func (a *Analysis) VariablesDeclared(ctx context.Context) []*types.Var {
	if !a.Succeeded() {
		return nil
	}

	return a.declared.get(func() []*types.Var { return declaredVariables(ctx, a.info, a.region) })
}

// DataFlowsIn returns the variables whose values assigned outside of the region may be read inside.
func (a *Analysis) DataFlowsIn(ctx context.Context) []*types.Var {
	if !a.Succeeded() {
		return nil
	}

	return a.flowsIn.get(func() []*types.Var { return dataFlowsIn(ctx, a.info, a.region) })
}

// DataFlowsOut returns the variables whose values assigned inside of the region may be read outside.
func (a *Analysis) DataFlowsOut(ctx context.Context) []*types.Var {
	if !a.Succeeded() {
		return nil
	}

	return a.flowsOut.get(func() []*types.Var {
		flowsIn := a.DataFlowsIn(ctx)
		unassigned := a.unassigned.get(func() varSet { return unassignedVariables(ctx, a.info, a.region) })
		written := a.readsAndWrites(ctx).writtenInside

		return dataFlowsOut(ctx, a.info, a.region, flowsIn, unassigned, written)
	})
}

// AlwaysAssigned returns the variables assigned on every path through the region.
func (a *Analysis) AlwaysAssigned(ctx context.Context) []*types.Var {
	if !a.Succeeded() {
		return nil
	}

	return a.assigned.get(func() []*types.Var { return alwaysAssigned(ctx, a.info, a.region) })
}

// ReadInside returns the variables read inside of the region.
func (a *Analysis) ReadInside(ctx context.Context) []*types.Var {
	return a.readWriteSet(ctx, func(rw *readWrite) varSet { return rw.readInside })
}

// WrittenInside returns the variables written inside of the region.
func (a *Analysis) WrittenInside(ctx context.Context) []*types.Var {
	return a.readWriteSet(ctx, func(rw *readWrite) varSet { return rw.writtenInside })
}

// ReadOutside returns the variables read outside of the region.
func (a *Analysis) ReadOutside(ctx context.Context) []*types.Var {
	return a.readWriteSet(ctx, func(rw *readWrite) varSet { return rw.readOutside })
}

// WrittenOutside returns the variables written outside of the region.
func (a *Analysis) WrittenOutside(ctx context.Context) []*types.Var {
	return a.readWriteSet(ctx, func(rw *readWrite) varSet { return rw.writtenOutside })
}

// Captured returns the variables referenced by function literals they are not declared in.
func (a *Analysis) Captured(ctx context.Context) []*types.Var {
	return a.readWriteSet(ctx, func(rw *readWrite) varSet { return rw.captured })
}

// CapturedInside returns the variables captured by function literal references inside of the region.
func (a *Analysis) CapturedInside(ctx context.Context) []*types.Var {
	return a.readWriteSet(ctx, func(rw *readWrite) varSet { return rw.capturedInside })
}

// CapturedOutside returns the variables captured by function literal references outside of the region.
func (a *Analysis) CapturedOutside(ctx context.Context) []*types.Var {
	return a.readWriteSet(ctx, func(rw *readWrite) varSet { return rw.capturedOutside })
}

// UnsafeAddressTaken returns the variables whose address is taken, explicitly or by calling a pointer method.
func (a *Analysis) UnsafeAddressTaken(ctx context.Context) []*types.Var {
	return a.readWriteSet(ctx, func(rw *readWrite) varSet { return rw.addressTaken })
}

// ExitPoints returns the jump statements inside of the region that transfer control out of it.
func (a *Analysis) ExitPoints(ctx context.Context) []ast.Stmt {
	return a.controlFlow(ctx).exits
}

// ReturnStatements returns the return statements inside of the region.
func (a *Analysis) ReturnStatements(ctx context.Context) []ast.Stmt {
	return a.controlFlow(ctx).returns
}

// StartPointIsReachable reports whether the start of the region is reachable.
func (a *Analysis) StartPointIsReachable(ctx context.Context) bool {
	return a.controlFlow(ctx).startReachable
}

// EndPointIsReachable reports whether control can fall off the end of the region.
func (a *Analysis) EndPointIsReachable(ctx context.Context) bool {
	return a.controlFlow(ctx).endReachable
}

// EntryPoints returns the labeled statements inside of the region targeted by goto statements outside of it.
func (a *Analysis) EntryPoints(ctx context.Context) []*ast.LabeledStmt {
	if !a.Succeeded() {
		return nil
	}

	return a.entries.get(func() []*ast.LabeledStmt {
		defer trace.StartRegion(ctx, "entries").End()

		return entryPoints(a.info, a.region)
	})
}

func (a *Analysis) controlFlow(ctx context.Context) controlFlow {
	if !a.Succeeded() {
		return controlFlow{}
	}

	return a.control.get(func() controlFlow { return controlFlowOf(ctx, a.info, a.region) })
}

func (a *Analysis) readsAndWrites(ctx context.Context) *readWrite {
	return a.readWrite.get(func() *readWrite { return readsAndWrites(ctx, a.info, a.region) })
}

func (a *Analysis) readWriteSet(ctx context.Context, set func(*readWrite) varSet) []*types.Var {
	if !a.Succeeded() {
		return nil
	}

	return set(a.readsAndWrites(ctx)).sorted()
}

// memo holds a lazily computed value. Concurrent first uses may compute the
// value more than once, but all of them observe the first published result.
type memo[T any] struct {
	p atomic.Pointer[T]
}

func (m *memo[T]) get(compute func() T) T {
	if v := m.p.Load(); v != nil {
		return *v
	}

	v := compute()
	if m.p.CompareAndSwap(nil, &v) {
		return v
	}

	return *m.p.Load()
}
