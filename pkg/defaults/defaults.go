// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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
package defaults

import "time"

// Crafting grid dimensions used when a grid file omits them.
const (
	// GridWidth is the width of the standard crafting table.
	GridWidth = 3

	// GridHeight is the height of the standard crafting table.
	GridHeight = 3
)

// Concurrency limits for the command line.
const (
	// MaxConcurrentGrids bounds how many grid files are crafted at once.
	MaxConcurrentGrids = 4
)

// Timeouts for command line operations.
const (
	// ScriptTimeout is the default limit for running a recipe script.
	ScriptTimeout = 30 * time.Second

	// CraftTimeout is the default limit for crafting every grid of one run.
	CraftTimeout = 1 * time.Minute
)

// Output formats.
const (
	// OutputFormat is the format used when --format is not given.
	OutputFormat = "yaml"
)
