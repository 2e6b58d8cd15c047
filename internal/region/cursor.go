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
	"fmt"
	"go/ast"
)

// position is the progress of a traversal relative to the region.
type position uint8

const (
	before position = iota
	inside
	after
)

func (p position) String() string {
	switch p {
	case before:
		return "before"

	case inside:
		return "inside"

	case after:
		return "after"

	default:
		return "invalid"
	}
}

// cursor follows a traversal through the region. The region is entered with
// its first and left with its last node.
type cursor struct {
	region Region
	pos    position

	onEnter, onLeave func()
}

func (c *cursor) reset() {
	c.pos = before
}

func (c *cursor) isInside() bool { return c.pos == inside }

func (c *cursor) enter(n ast.Node) {
	if n == c.region.First {
		if c.pos != before {
			panic(fmt.Errorf("region entered twice at %d (%s)", n.Pos(), c.pos))
		}

		c.pos = inside
		if c.onEnter != nil {
			c.onEnter()
		}

		return
	}

	if c.pos != inside && c.region.Contains(n.Pos()) && n.End() <= c.region.End() && !encloses(n, c.region.First) {
		panic(fmt.Errorf("%T at %d visited %s region", n, n.Pos(), c.pos))
	}
}

func (c *cursor) leave(n ast.Node) {
	if n != c.region.Last || c.pos != inside {
		return
	}

	c.pos = after
	if c.onLeave != nil {
		c.onLeave()
	}
}

// encloses reports whether outer spans inner, as the parents of an expression do.
func encloses(outer, inner ast.Node) bool {
	return outer.Pos() <= inner.Pos() && inner.End() <= outer.End()
}
