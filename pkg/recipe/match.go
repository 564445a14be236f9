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
	"log/slog"

	"github.com/gridcraft/gridcraft/pkg/item"
)

// Placement is a template cell bound to the grid cell it matched.
type Placement struct {
	X          int
	Y          int
	Stack      *item.Stack
	Ingredient *item.Ingredient
}

// Match describes where a shaped template was found in a grid.
type Match struct {
	OffsetX  int
	OffsetY  int
	Mirrored bool
	// Placements follow the template's cell order; X and Y are absolute
	// grid coordinates.
	Placements []Placement
}

// Leftover is what a transforming ingredient leaves at grid cell X, Y.
// A nil Stack empties the cell.
type Leftover struct {
	X     int
	Y     int
	Stack *item.Stack
}

// Result is a resolved craft.
type Result struct {
	Output *item.Stack
	Match  Match
	// Leftovers lists the cells crafting would change; it is not applied.
	Leftovers []Leftover
	// Suppressed is set when the grid matched but the recipe function
	// refused the craft.
	Suppressed bool
}

// gridX maps template column col at offset i to a grid column.
func gridX(g Grid, col, i int, mirrored bool) int {
	if mirrored {
		return g.Width() - (col + i) - 1
	}
	return col + i
}

// Find searches the grid for the template and returns the first offset at
// which every recorded cell is satisfied.
func (s *Shaped) Find(g Grid) (Match, bool) {
	if g.StackCount() != len(s.cells) {
		return Match{}, false
	}

	if m, ok := s.search(g, false); ok {
		return m, true
	}
	if s.mirrored {
		return s.search(g, true)
	}
	return Match{}, false
}

func (s *Shaped) search(g Grid, mirrored bool) (Match, bool) {
	for i := 0; i <= g.Width()-s.width; i++ {
		for j := 0; j <= g.Height()-s.height; j++ {
			if placements, ok := s.matchAt(g, i, j, mirrored); ok {
				metricMatches.WithLabelValues(kindShaped, orientation(mirrored)).Inc()
				return Match{OffsetX: i, OffsetY: j, Mirrored: mirrored, Placements: placements}, true
			}
		}
	}
	return Match{}, false
}

func (s *Shaped) matchAt(g Grid, i, j int, mirrored bool) ([]Placement, bool) {
	placements := make([]Placement, 0, len(s.cells))
	for _, c := range s.cells {
		x := gridX(g, c.X, i, mirrored)
		y := c.Y + j
		st := g.Stack(x, y)
		if st == nil || !c.Ingredient.Matches(st) {
			return nil, false
		}
		placements = append(placements, Placement{X: x, Y: y, Stack: st, Ingredient: c.Ingredient})
	}
	return placements, true
}

// Matches reports whether the grid satisfies the template.
func (s *Shaped) Matches(g Grid) bool {
	metricAttempts.WithLabelValues(kindShaped).Inc()
	_, ok := s.Find(g)
	return ok
}

// Resolve matches the grid and computes the craft output. It reports false
// when the grid does not match or the recipe function refused the craft; in
// the latter case the returned Result has Suppressed set.
func (s *Shaped) Resolve(g Grid, actor item.Actor) (Result, bool) {
	metricAttempts.WithLabelValues(kindShaped).Inc()
	m, ok := s.Find(g)
	if !ok {
		return Result{}, false
	}

	out := resolveOutput(s, s.output, s.fn, m.Placements, g, actor)
	if out == nil {
		return Result{Match: m, Suppressed: true}, false
	}

	slog.Debug("shaped recipe matched",
		"output", out.Describe(),
		"offsetX", m.OffsetX,
		"offsetY", m.OffsetY,
		"mirrored", m.Mirrored)

	return Result{
		Output:    out,
		Match:     m,
		Leftovers: leftovers(m.Placements, actor),
	}, true
}

// CraftingResult returns the output the grid crafts into, or nil.
func (s *Shaped) CraftingResult(g Grid, actor item.Actor) *item.Stack {
	res, ok := s.Resolve(g, actor)
	if !ok {
		return nil
	}
	return res.Output
}

// ApplyTransforms locates the template in the grid again and writes every
// ingredient leftover back into it. Nothing happens when the grid does not match.
func (s *Shaped) ApplyTransforms(g Grid, actor item.Actor) {
	m, ok := s.Find(g)
	if !ok {
		return
	}
	s.ApplyTransformsAt(g, m, actor)
}

// ApplyTransformsAt writes ingredient leftovers for a match found earlier.
// Cell coordinates are derived again from the match offset and orientation
// and stacks are read from the grid as it is now.
func (s *Shaped) ApplyTransformsAt(g Grid, m Match, actor item.Actor) {
	for _, c := range s.cells {
		if !c.Ingredient.HasTransform() {
			continue
		}
		x := gridX(g, c.X, m.OffsetX, m.Mirrored)
		y := c.Y + m.OffsetY
		st := g.Stack(x, y)
		if st == nil {
			continue
		}
		if left := c.Ingredient.ApplyTransform(st, actor); left != st {
			g.SetStack(x, y, left)
		}
	}
}

// resolveOutput runs the recipe function over the marked stacks, or copies
// the output template when there is none.
func resolveOutput(c Crafting, output item.Stack, fn Function, placements []Placement, g Grid, actor item.Actor) *item.Stack {
	obs := observerOf(c)
	if fn == nil {
		out := output.Ptr()
		obs.OutputResolved(c, out)
		return out
	}

	marked := make(map[string]item.Stack)
	for _, p := range placements {
		if mark := p.Ingredient.Mark(); mark != "" {
			marked[mark] = *p.Stack
		}
	}
	out := fn(output, marked, CraftingInfo{Grid: g, Actor: actor})
	obs.OutputResolved(c, out)
	return out
}

func leftovers(placements []Placement, actor item.Actor) []Leftover {
	var out []Leftover
	for _, p := range placements {
		if !p.Ingredient.HasTransform() {
			continue
		}
		if left := p.Ingredient.ApplyTransform(p.Stack, actor); left != p.Stack {
			out = append(out, Leftover{X: p.X, Y: p.Y, Stack: left})
		}
	}
	return out
}

func observerOf(c Crafting) Observer {
	switch t := c.(type) {
	case *Shaped:
		return t.observer
	case *Shapeless:
		return t.observer
	default:
		return nopObserver{}
	}
}

func orientation(mirrored bool) string {
	if mirrored {
		return "mirrored"
	}
	return "normal"
}
