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
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/astutil"
)

var (
	// ErrNoFunction is returned for regions outside of a function body.
	ErrNoFunction = errors.New("region is not inside a function body")

	// ErrPartial is returned for regions partially covering a statement or expression.
	ErrPartial = errors.New("region does not cover complete statements")

	// ErrNotValue is returned for expressions without a value, like types.
	ErrNotValue = errors.New("expression has no value")

	// ErrEmpty is returned for regions without statements.
	ErrEmpty = errors.New("region is empty")
)

// Region is a validated part of a function body.
type Region struct {
	// First and Last are the first and last node of the region, identical for a single expression or statement.
	First, Last ast.Node

	// Func is the function declaration containing the region.
	Func *ast.FuncDecl
}

// Pos returns the start of the region.
func (r Region) Pos() token.Pos { return r.First.Pos() }

// End returns the end of the region.
func (r Region) End() token.Pos { return r.Last.End() }

// Contains reports whether pos lies inside the region.
func (r Region) Contains(pos token.Pos) bool {
	return r.Pos() <= pos && pos < r.End()
}

// Expr reports whether the region is a single expression.
func (r Region) Expr() bool {
	_, ok := r.First.(ast.Expr)

	return ok
}

// Select validates the interval [start, end) of file as a region.
func Select(info *types.Info, file *ast.File, start, end token.Pos) (Region, error) {
	path, exact := astutil.PathEnclosingInterval(file, start, end)
	if len(path) == 0 {
		return Region{}, ErrNoFunction
	}

	var fn *ast.FuncDecl

	for _, n := range path {
		if f, ok := n.(*ast.FuncDecl); ok {
			fn = f

			break
		}
	}

	if fn == nil || fn.Body == nil || !encloses(fn.Body, path[0]) {
		return Region{}, ErrNoFunction
	}

	var parent ast.Node
	if len(path) > 1 {
		parent = path[1]
	}

	if exact {
		switch n := path[0].(type) {
		case ast.Expr:
			if err := checkExpr(info, n, path[1:]); err != nil {
				return Region{}, err
			}

			return Region{First: n, Last: n, Func: fn}, nil

		case ast.Stmt:
			if err := checkStmt(n, parent); err != nil {
				return Region{}, err
			}

			return Region{First: n, Last: n, Func: fn}, nil
		}
	}

	var list []ast.Stmt

	switch n := path[0].(type) {
	case *ast.BlockStmt:
		switch parent.(type) {
		case *ast.SwitchStmt, *ast.TypeSwitchStmt, *ast.SelectStmt:
			return Region{}, ErrPartial
		}

		list = n.List

	case *ast.CaseClause:
		list = n.Body

	case *ast.CommClause:
		list = n.Body

	default:
		return Region{}, ErrPartial
	}

	first, last, err := statementRun(list, start, end)
	if err != nil {
		return Region{}, err
	}

	return Region{First: first, Last: last, Func: fn}, nil
}

// statementRun returns the first and last statement of list inside [start, end),
// failing when a statement is only partially covered.
func statementRun(list []ast.Stmt, start, end token.Pos) (first, last ast.Stmt, err error) {
	for _, s := range list {
		if s.End() <= start || s.Pos() >= end {
			continue
		}

		if s.Pos() < start || s.End() > end {
			return nil, nil, ErrPartial
		}

		if first == nil {
			first = s
		}

		last = s
	}

	if first == nil {
		return nil, nil, ErrEmpty
	}

	return first, last, nil
}

// checkExpr validates e with the enclosing nodes in path, innermost first.
func checkExpr(info *types.Info, e ast.Expr, path []ast.Node) error {
	if len(path) > 0 {
		if sel, ok := path[0].(*ast.SelectorExpr); ok && sel.Sel == e {
			return fmt.Errorf("selector %s: %w", sel.Sel.Name, ErrNotValue)
		}
	}

	if ta, ok := e.(*ast.TypeAssertExpr); ok && ta.Type == nil {
		return fmt.Errorf("type switch guard: %w", ErrNotValue)
	}

	tv, ok := info.Types[e]
	if !ok || !tv.IsValue() {
		return ErrNotValue
	}

	// operands of constants and types are never evaluated
	for _, n := range path {
		switch n := n.(type) {
		case ast.Stmt:
			return nil

		case *ast.GenDecl:
			if n.Tok != token.VAR {
				return fmt.Errorf("%s declaration: %w", n.Tok, ErrNotValue)
			}

			return nil

		case ast.Expr:
			switch outer := info.Types[n]; {
			case outer.Value != nil:
				return fmt.Errorf("operand of constant expression: %w", ErrNotValue)

			case outer.IsType():
				return fmt.Errorf("part of type: %w", ErrNotValue)
			}
		}
	}

	return nil
}

func checkStmt(s ast.Stmt, parent ast.Node) error {
	switch s.(type) {
	case *ast.CaseClause, *ast.CommClause:
		return fmt.Errorf("%T: %w", s, ErrPartial)

	case *ast.BlockStmt:
		switch parent.(type) {
		case *ast.SwitchStmt, *ast.TypeSwitchStmt, *ast.SelectStmt:
			return fmt.Errorf("%T body: %w", parent, ErrPartial)
		}
	}

	switch p := parent.(type) {
	case *ast.TypeSwitchStmt:
		if p.Assign == s {
			return fmt.Errorf("type switch guard: %w", ErrPartial)
		}

	case *ast.CommClause:
		if p.Comm == s {
			return fmt.Errorf("select case: %w", ErrPartial)
		}
	}

	return nil
}
