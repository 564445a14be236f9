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
	"slices"

	"github.com/gridcraft/gridcraft/pkg/errors"
	"github.com/gridcraft/gridcraft/pkg/item"
)

// Cell is a recorded ingredient at column X, row Y of a shaped template.
type Cell struct {
	X          int
	Y          int
	Ingredient *item.Ingredient
}

// Shaped is an immutable positional recipe template.
type Shaped struct {
	width    int
	height   int
	cells    []Cell
	mirrored bool
	output   item.Stack
	fn       Function
	observer Observer
}

// NewShaped builds a template from a row-major table of ingredients. Rows may
// have different lengths; the template is as wide as the longest row. nil
// entries are empty cells.
func NewShaped(output item.Stack, rows [][]*item.Ingredient, opts ...Option) (*Shaped, error) {
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	height := len(rows)

	flat := make([]*item.Ingredient, width*height)
	for y, row := range rows {
		copy(flat[y*width:], row)
	}
	return NewShapedFlat(output, flat, width, height, opts...)
}

// NewShapedFlat builds a template from a flat row-major sequence representing
// a width×height grid. A shorter sequence leaves the trailing cells empty.
func NewShapedFlat(output item.Stack, ingredients []*item.Ingredient, width, height int, opts ...Option) (*Shaped, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidShape, "recipe dimensions must be positive", map[string]any{
			"output": output.ID,
			"width":  width,
			"height": height,
		})
	}
	if len(ingredients) > width*height {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidShape, "more ingredients than recipe cells", map[string]any{
			"output":      output.ID,
			"width":       width,
			"height":      height,
			"ingredients": len(ingredients),
		})
	}

	var cells []Cell
	for i, ing := range ingredients {
		if ing == nil {
			continue
		}
		cells = append(cells, Cell{X: i % width, Y: i / width, Ingredient: ing})
	}
	if len(cells) == 0 {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidShape, "recipe has no ingredients", map[string]any{
			"output": output.ID,
			"width":  width,
			"height": height,
		})
	}

	cfg := newConfig(opts)
	s := &Shaped{
		width:    width,
		height:   height,
		cells:    cells,
		mirrored: cfg.mirrored,
		output:   output,
		fn:       cfg.fn,
		observer: cfg.observer,
	}
	s.observer.TemplateBuilt(s)
	return s, nil
}

// Width returns the template width.
func (s *Shaped) Width() int { return s.width }

// Height returns the template height.
func (s *Shaped) Height() int { return s.height }

// Mirrored reports whether the horizontal mirror image also matches.
func (s *Shaped) Mirrored() bool { return s.mirrored }

// Output returns the output template.
func (s *Shaped) Output() item.Stack { return s.output }

// Function returns the output function, or nil.
func (s *Shaped) Function() Function { return s.fn }

// Cells returns the recorded ingredients in row-major order.
func (s *Shaped) Cells() []Cell {
	return slices.Clone(s.cells)
}

// Ingredients returns the dense row-major ingredient table; empty cells are nil.
func (s *Shaped) Ingredients() []*item.Ingredient {
	dense := make([]*item.Ingredient, s.width*s.height)
	for _, c := range s.cells {
		dense[c.Y*s.width+c.X] = c.Ingredient
	}
	return dense
}

// Rows returns the ingredients as a table of rows; empty cells are nil.
func (s *Shaped) Rows() [][]*item.Ingredient {
	dense := s.Ingredients()
	rows := make([][]*item.Ingredient, s.height)
	for y := range rows {
		rows[y] = dense[y*s.width : (y+1)*s.width : (y+1)*s.width]
	}
	return rows
}

// HasTransforms reports whether any ingredient changes its cell when crafted.
func (s *Shaped) HasTransforms() bool {
	for _, c := range s.cells {
		if c.Ingredient.HasTransform() {
			return true
		}
	}
	return false
}
