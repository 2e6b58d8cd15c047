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

package regions

import "fmt"

func extract(a int) int {
	b := a * 2
	//flowguard:region
	c := b + 1 // want "Region: data flows in 'b', out 'c', declares 'c', no exits \\(fg:rgn\\)"
	//flowguard:endregion
	return c
}

func sum(s []int) int {
	total := 0
	//flowguard:region
	for _, v := range s { // want "Region: data flows in 's' and 'total', out 'total', declares 'v', no exits \\(fg:rgn\\)"
		total += v
	}
	//flowguard:endregion
	return total
}

func greet(name string) {
	//flowguard:region
	msg := "hello " + name // want "Region: data flows in 'name', out nothing, declares 'msg', no exits \\(fg:rgn\\)"
	fmt.Println(msg)
	//flowguard:endregion
}

func find(s []int, x int) int {
	for i, v := range s {
		//flowguard:region
		if v == x { // want "Region: data flows in 'x', 'i' and 'v', out nothing, declares nothing, 2 exits \\(fg:rgn\\)"
			return i
		}
		if v > x {
			break
		}
		//flowguard:endregion
	}
	return -1
}

func partial(c bool) int {
	x := 0
	if c {
		//flowguard:region // want "Invalid region: region does not cover complete statements \\(fg:rgn\\)"
		x = 1
	}
	//flowguard:endregion
	return x
}

func unmatched() {
	//flowguard:endregion // want "Unmatched region directive \\(fg:rgn\\)"
}
