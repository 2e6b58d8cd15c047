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

// Package analyzer implements the flowguard static analysis pass.
//
// # Overview
//
// FlowGuard tracks which local variables are definitely assigned and which
// statements are reachable through every function body, following branches,
// labels and loops to a fixed point.
//
// # Diagnostics
//
//   - fg:unr: a statement control can not reach, reported once per unreachable stretch.
//   - fg:ret: a function with results whose end is reachable.
//   - fg:una: a read of a variable declared without initializer before any assignment (opt-in).
//   - fg:res: a named result not assigned on a path returning from the function (opt-in).
//   - fg:rgn: the data flow summary of a region directive.
//
// # Example
//
//	func sign(x int) int {
//	    if x < 0 {
//	        return -1
//	    } else {
//	        return 1
//	    }
//	    fmt.Println("done") // Unreachable code (fg:unr)
//	}
//
// # Regions
//
// Statements between a //flowguard:region and a //flowguard:endregion comment
// form a region. The analyzer reports which variables flow into and out of it,
// the facts needed to extract the statements into a function of their own:
//
//	b := a * 2
//	//flowguard:region
//	c := b + 1 // Region: data flows in 'b', out 'c' (fg:rgn)
//	//flowguard:endregion
//	return c
//
// Use -regions=full for declared, read, written, captured and address-taken
// variables, exits and entry points.
//
// # Suppression
//
// A //nolint:flowguard comment on a line, ending a function's documentation or
// ending the package documentation of a file suppresses the diagnostics there.
package analyzer
