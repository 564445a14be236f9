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

package recipe

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	kindShaped    = "shaped"
	kindShapeless = "shapeless"
)

var (
	// Grid matching metrics
	metricAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridcraft_recipe_match_attempts_total",
			Help: "Total number of grids checked against a recipe template",
		},
		[]string{"kind"},
	)
	metricMatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridcraft_recipe_matches_total",
			Help: "Total number of grids that satisfied a recipe template",
		},
		[]string{"kind", "orientation"},
	)
)
