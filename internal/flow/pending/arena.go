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

package pending

// Arena allocates [Branch] records in a [slab list]. Records are recycled
// wholesale by [Arena.Reset] at the start of each analysis pass.
//
// [slab list]: https://en.wikipedia.org/wiki/Slab_allocation
type Arena struct {
	start, current *chunk
	count, total   int
}

// chunk is a linked list of fixed-size arrays of Branches.
type chunk struct {
	branches [chunkSize]Branch
	next     *chunk
}

// chunkSize defines the number of Branches stored in a single chunk.
const chunkSize = 63

// New returns a zeroed *[Branch] owned by the arena.
func (a *Arena) New() *Branch {
	switch {
	case a.current == nil:
		a.current = new(chunk)
		a.start = a.current

	case a.count == chunkSize:
		if a.current.next == nil {
			a.current.next = new(chunk)
		}

		a.current = a.current.next
		a.count = 0
		a.total += chunkSize
	}

	a.count++

	b := &a.current.branches[a.count-1]
	*b = Branch{}

	return b
}

// Len returns the number of branches allocated since the last reset.
func (a *Arena) Len() int {
	return a.total + a.count
}

// Reset recycles all records. Branches obtained earlier must no longer be used.
func (a *Arena) Reset() {
	a.current = a.start
	a.count, a.total = 0, 0
}
