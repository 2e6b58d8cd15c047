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

// Package emptystruct decides whether values of a type carry no storage.
//
// Variables of such types are never tracked for definite assignment: there is
// nothing a write could change.
package emptystruct

import (
	"go/types"
	"slices"

	"golang.org/x/tools/go/types/typeutil"
)

// Checker reports whether a type has no storage.
type Checker interface {
	IsEmpty(t types.Type) bool
}

// Cache is a memoizing [Checker] for struct and array types.
type Cache struct {
	memo   typeutil.Map
	active []types.Type
}

// New creates an empty [Cache].
func New() *Cache {
	return &Cache{}
}

// IsEmpty reports whether t is a struct type without storage, or an array of those.
// Types reached again while being checked are treated as empty.
func (c *Cache) IsEmpty(t types.Type) bool {
	if t == nil {
		return false
	}

	if v := c.memo.At(t); v != nil {
		return v.(bool)
	}

	if slices.ContainsFunc(c.active, func(a types.Type) bool { return types.Identical(a, t) }) {
		return true
	}

	c.active = append(c.active, t)
	empty := c.check(t)
	c.active = c.active[:len(c.active)-1]

	c.memo.Set(t, empty)

	return empty
}

func (c *Cache) check(t types.Type) bool {
	switch u := t.Underlying().(type) {
	case *types.Struct:
		for f := range u.Fields() {
			if !c.IsEmpty(f.Type()) {
				return false
			}
		}

		return true

	case *types.Array:
		return u.Len() == 0 || c.IsEmpty(u.Elem())

	default:
		return false
	}
}

// Never is a [Checker] that treats no type as empty, so every variable is tracked.
type Never struct{}

// IsEmpty implements [Checker].
func (Never) IsEmpty(types.Type) bool { return false }
