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

// Package level defines multi-valued analyzer settings.
package level

import (
	"fmt"
	"strings"
)

// Region specifies the reporting level of //flowguard:region directives.
type Region uint8

const (
	// RegionSummary reports the data flowing into and out of a region.
	RegionSummary Region = iota

	// RegionFull adds read, write, capture and control flow facts.
	RegionFull

	// RegionOff ignores region directives.
	RegionOff
)

// MarshalText implements [encoding.TextMarshaler].
func (o Region) MarshalText() ([]byte, error) {
	switch o {
	case RegionSummary:
		return []byte("summary"), nil

	case RegionFull:
		return []byte("full"), nil

	case RegionOff:
		return []byte("off"), nil

	default:
		return nil, fmt.Errorf("unknown region level %d", o)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (o *Region) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "true", "on", "summary":
		*o = RegionSummary

	case "full":
		*o = RegionFull

	case "off", "false":
		*o = RegionOff

	default:
		return fmt.Errorf("unknown region level %q", string(text))
	}

	return nil
}

// String returns the textual form of the level.
func (o Region) String() string {
	text, err := o.MarshalText()
	if err != nil {
		return fmt.Sprintf("Region(%d)", o)
	}

	return string(text)
}
