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
	"go/token"
	"go/types"
)

// Code identifies the kind of a [Diagnostic].
type Code uint8

const (
	// UnassignedRead is a read of a variable that is not definitely assigned.
	UnassignedRead Code = iota + 1

	// UnreachableCode is a statement control can not reach.
	UnreachableCode

	// MissingReturn is a reachable end of a function with results.
	MissingReturn

	// UnassignedResult is a named result not assigned on a path leaving the function.
	UnassignedResult

	// NotImplemented is a construct the walker does not handle.
	NotImplemented
)

// String returns the short code used in diagnostic messages.
func (c Code) String() string {
	switch c {
	case UnassignedRead:
		return "una"

	case UnreachableCode:
		return "unr"

	case MissingReturn:
		return "ret"

	case UnassignedResult:
		return "res"

	case NotImplemented:
		return "nyi"

	default:
		return "unknown"
	}
}

// Diagnostic is a finding of the flow analysis.
type Diagnostic struct {
	Pos, End token.Pos

	// Var is the variable concerned, if any.
	Var *types.Var

	// Detail describes unsupported constructs.
	Detail string

	Code Code
}
