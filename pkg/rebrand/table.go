// Copyright 2025 walteh LLC
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

package rebrand

import (
	"runtime"

	"github.com/walteh/rebrand/pkg/text"
)

// defaultTable is applied top to bottom. The trailing cosmic-horizon rules
// catch names left behind by an earlier partial rename.
var defaultTable = text.Table{
	{From: "vlass-api", To: "cosmic-horizons-api"},
	{From: "vlass-web", To: "cosmic-horizons-web"},
	{From: "vlass-portal", To: "cosmic-horizons"},
	{From: "vlass_portal", To: "cosmic_horizons"},
	{From: "vlass_user", To: "cosmic_horizons_user"},
	{From: "vlass_password", To: "cosmic_horizons_password"},
	{From: "vlass_redis", To: "cosmic_horizons_redis"},
	{From: "VLASS_API", To: "COSMIC_HORIZONS_API"},
	{From: "cosmic-horizon", To: "cosmic-horizons"},
	{From: "cosmic_horizon", To: "cosmic_horizons"},
}

var defaultExcludedDirs = []string{
	".git",
	"node_modules",
	".next",
	"dist",
	"out-tsc",
	".angular",
}

// DefaultTable returns a copy of the built-in replacement table.
func DefaultTable() text.Table {
	out := make(text.Table, len(defaultTable))
	copy(out, defaultTable)
	return out
}

// DefaultExcludedDirs returns the directory names pruned from every walk.
func DefaultExcludedDirs() []string {
	out := make([]string, len(defaultExcludedDirs))
	copy(out, defaultExcludedDirs)
	return out
}

// TableSource returns the path this file was compiled from, so a run over the
// tool's own checkout leaves the table alone. Empty when unavailable.
func TableSource() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return ""
	}
	return file
}
