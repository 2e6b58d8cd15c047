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

// Package region answers data flow questions about a part of a function body,
// like which variables flow into and out of it. This is the information needed
// to extract the part into a function of its own.
//
// A region is a single value expression, a single statement, or a contiguous
// run of statements of one block or clause. Each question is answered by a
// dedicated traversal of the enclosing function with the definite assignment
// walker, observing the walk through a cursor that tracks whether the
// traversal is before, inside or after the region.
package region
