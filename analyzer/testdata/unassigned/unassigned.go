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

package unassigned

import "fmt"

func conditional(c bool) int {
	var x int
	if c {
		x = 1
	}
	return x // want "Variable 'x' is used before being assigned \\(fg:una\\)"
}

func bothBranches(c bool) int {
	var x int
	if c {
		x = 1
	} else {
		x = 2
	}
	return x
}

func loop(s []int) int {
	var last int
	for _, v := range s {
		last = v
	}
	return last // want "Variable 'last' is used before being assigned \\(fg:una\\)"
}

func endless(next func() (int, bool)) int {
	var v int
	for {
		var ok bool
		if v, ok = next(); ok {
			break
		}
	}
	return v
}

func pointer() int {
	var x int
	set(&x)
	return x
}

func set(p *int) { *p = 1 }

func captured() int {
	var x int
	get := func() int { return x }
	x = 1
	return get()
}

func result(c bool) (n int) {
	if c {
		n = 1
	}
	return // want "Named result 'n' may be returned without assignment \\(fg:res\\)"
}

func resultAssigned(c bool) (n int, err error) {
	if c {
		return 0, fmt.Errorf("failed")
	}
	n, err = 1, nil
	return
}

func unreachableIgnored() {
	return
	fmt.Println()
}
