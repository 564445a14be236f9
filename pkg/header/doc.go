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

// Package header provides the document header shared by everything the
// gridcraft command line serializes.
//
// Each report embeds Header inline so that JSON and YAML output starts with
// the document kind and schema version:
//
//	kind: CraftReport
//	apiVersion: gridcraft.dev/v1
//	metadata:
//	  timestamp: "2026-01-12T10:30:00Z"
//	  version: v0.3.0
//	  script: recipes.lua
//
// Kinds:
//   - RecipeList: recipes registered by a script
//   - ConversionReport: host-native representation of each recipe
//   - CraftReport: outcome of crafting one or more grids
//
// Readers should check APIVersion before decoding the rest of a document.
package header
