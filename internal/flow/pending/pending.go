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

// Package pending holds control transfers that have not yet been resolved at their target.
package pending

import (
	"go/ast"
	"go/types"
	"slices"

	"fillmore-labs.com/flowguard/internal/flow/state"
)

//go:generate go tool stringer -type Kind -linecomment

// Kind classifies a pending branch.
type Kind uint8

const (
	// Return is a return statement leaving the function.
	Return Kind = iota // return

	// Break leaves a loop, switch or select statement.
	Break // break

	// Continue resumes the next iteration of a loop.
	Continue // continue

	// Goto jumps to a label.
	Goto // goto

	// Fallthrough enters the next clause of an expression switch.
	Fallthrough // fallthrough
)

// Branch is a captured jump awaiting resolution.
type Branch struct {
	// Node is the jump statement, an *[ast.BranchStmt] or *[ast.ReturnStmt].
	Node ast.Stmt

	// Target is the statement resolving a break or continue, or the clause entered by fallthrough.
	Target ast.Node

	// Label is the target of a goto.
	Label *types.Label

	// State is the flow state at the jump.
	State state.State

	Kind Kind
}

// Queue holds the unresolved branches owned by one scope.
type Queue []*Branch

// Add appends b to the queue.
func (q *Queue) Add(b *Branch) {
	*q = append(*q, b)
}

// Extract removes and returns all branches matching the predicate, keeping the order of both parts.
func (q *Queue) Extract(match func(*Branch) bool) []*Branch {
	var matched []*Branch

	*q = slices.DeleteFunc(*q, func(b *Branch) bool {
		if !match(b) {
			return false
		}

		matched = append(matched, b)

		return true
	})

	return matched
}
