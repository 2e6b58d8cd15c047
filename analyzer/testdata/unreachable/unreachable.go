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

package unreachable

import (
	"fmt"
	"log"
	"os"
)

func afterReturn() {
	return
	fmt.Println("never") // want "Unreachable code \\(fg:unr\\)"
	fmt.Println("reported once")
}

func afterPanic() int {
	panic("boom")
	return 0 // want "Unreachable code \\(fg:unr\\)"
}

func afterLoop() {
	for {
	}
	fmt.Println() // want "Unreachable code \\(fg:unr\\)"
}

func afterSelect() {
	select {}
	fmt.Println() // want "Unreachable code \\(fg:unr\\)"
}

func afterSwitch(k int) int {
	switch k {
	case 1:
		return 1
	default:
		return 0
	}
	return -1 // want "Unreachable code \\(fg:unr\\)"
}

func afterGoto() {
	goto end
	fmt.Println("skipped") // want "Unreachable code \\(fg:unr\\)"
end:
	fmt.Println("reached")
}

func afterBreak(done func() bool) {
	for {
		if done() {
			break
		}
	}
	fmt.Println("reachable")
}

func afterLabeledBreak(rows [][]int) {
outer:
	for _, row := range rows {
		for _, v := range row {
			if v < 0 {
				break outer
			}
		}
	}
	fmt.Println("reachable")
}

func literal() func() {
	return func() {
		return
		fmt.Println() // want "Unreachable code \\(fg:unr\\)"
	}
}

func constantFalse() {
	if false {
		return
		fmt.Println("excluded")
	}
}

func afterExit(err error) {
	if err != nil {
		log.Fatal(err)
		fmt.Println("not reported after exit")
	}

	os.Exit(1)
	fmt.Println("not reported after exit")
}
