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

package gclplugin

import (
	"fmt"

	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	flowguard "fillmore-labs.com/flowguard/analyzer"
)

func init() { register.Plugin("flowguard", New) }

// New decodes the linter settings and creates a [Plugin] from them.
// Settings disabling every check are rejected.
func New(rawSettings any) (register.LinterPlugin, error) {
	settings, err := register.DecodeSettings[Settings](rawSettings)
	if err != nil {
		return nil, err
	}

	// golangci-lint filters generated files itself
	opts := append(settings.Options(), flowguard.WithGenerated(true))

	if err := flowguard.Validate(opts...); err != nil {
		return nil, fmt.Errorf("flowguard settings: %w", err)
	}

	return Plugin{options: opts}, nil
}

// Plugin runs the flowguard analyzer as a [register.LinterPlugin].
type Plugin struct {
	options flowguard.Options
}

// GetLoadMode returns the golangci load mode. Flow analysis needs type information.
func (Plugin) GetLoadMode() string {
	return register.LoadModeTypesInfo
}

// BuildAnalyzers returns a single flowguard analyzer configured from the plugin settings.
func (p Plugin) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{flowguard.New(p.options...)}, nil
}
