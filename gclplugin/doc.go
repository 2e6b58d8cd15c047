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

/*
Package gclplugin runs the [flowguard] analyzer as a golangci-lint module plugin.

# Settings

All settings are optional. Unset values keep the analyzer defaults.

	unassigned      reads of variables that are not definitely assigned (default false)
	unreachable     statements control can never reach (default true)
	missing-return  functions with results whose end is reachable (default true)
	results         named results returned before being assigned (default false)
	regions         reporting of //flowguard:region directives: summary, full or off (default summary)

Settings that disable every check are rejected when the plugin is loaded.
Generated files are passed on to golangci-lint, which applies its own exclusion rules.

# Usage

Build a custom golangci-lint with a `.custom-gcl.yaml`:

	---
	version: v2.7.0

	name: golangci-lint
	destination: .

	plugins:
	  - module: fillmore-labs.com/flowguard
	    import: fillmore-labs.com/flowguard/gclplugin
	    version: v0.0.1

Running `golangci-lint custom` creates the executable in the project root.
Enable flowguard in `.golangci.yaml`:

	---
	version: "2"
	linters:
	  default: none
	  enable:
	    - flowguard
	  settings:
	    custom:
	      flowguard:
	        type: module
	        description: "flowguard reports unreachable code and unassigned variables."
	        original-url: "https://fillmore-labs.com/flowguard"
	        settings:
	          unassigned: true
	          results: true
	          regions: full

Region summaries name the variables flowing into and out of the marked
statements, the variables declared there and the number of jumps leaving
them. With regions set to full, reads, writes, captures and the individual
exits are attached as related information.

[flowguard]: https://github.com/fillmore-labs/flowguard#flowguard
*/
package gclplugin
