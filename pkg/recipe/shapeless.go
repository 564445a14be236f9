package recipe

import (
	"slices"

	"github.com/gridcraft/gridcraft/pkg/errors"
	"github.com/gridcraft/gridcraft/pkg/item"
)

// Shapeless is an immutable recipe template whose ingredients may occupy any
// cells of the grid.
type Shapeless struct {
	ingredients []*item.Ingredient
	output      item.Stack
	fn          Function
	observer    Observer
}

// NewShapeless builds a shapeless template. nil ingredients are dropped.
func NewShapeless(output item.Stack, ingredients []*item.Ingredient, opts ...Option) (*Shapeless, error) {
	var ings []*item.Ingredient
	for _, ing := range ingredients {
		if ing != nil {
			ings = append(ings, ing)
		}
	}
	if len(ings) == 0 {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidShape, "recipe has no ingredients", map[string]any{
			"output": output.ID,
		})
	}

	cfg := newConfig(opts)
	s := &Shapeless{
		ingredients: ings,
		output:      output,
		fn:          cfg.fn,
		observer:    cfg.observer,
	}
	s.observer.TemplateBuilt(s)
	return s, nil
}

// Output returns the output template.
func (s *Shapeless) Output() item.Stack { return s.output }

// Function returns the output function, or nil.
func (s *Shapeless) Function() Function { return s.fn }

// Ingredients returns the ingredients in declaration order.
func (s *Shapeless) Ingredients() []*item.Ingredient {
	return slices.Clone(s.ingredients)
}

// HasTransforms reports whether any ingredient changes its cell when crafted.
func (s *Shapeless) HasTransforms() bool {
	for _, ing := range s.ingredients {
		if ing.HasTransform() {
			return true
		}
	}
	return false
}

// Find assigns every occupied grid cell to a distinct ingredient. Cells are
// scanned row by row; the returned placements follow ingredient order.
func (s *Shapeless) Find(g Grid) ([]Placement, bool) {
	if g.StackCount() != len(s.ingredients) {
		return nil, false
	}

	type occupied struct {
		x, y  int
		stack *item.Stack
	}
	var cells []occupied
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if st := g.Stack(x, y); st != nil {
				cells = append(cells, occupied{x: x, y: y, stack: st})
			}
		}
	}
	if len(cells) != len(s.ingredients) {
		return nil, false
	}

	// assigned[k] is the cell index bound to ingredient k.
	assigned := make([]int, len(s.ingredients))
	used := make([]bool, len(cells))
	var assign func(k int) bool
	assign = func(k int) bool {
		if k == len(s.ingredients) {
			return true
		}
		for ci, c := range cells {
			if used[ci] || !s.ingredients[k].Matches(c.stack) {
				continue
			}
			used[ci] = true
			assigned[k] = ci
			if assign(k + 1) {
				return true
			}
			used[ci] = false
		}
		return false
	}
	if !assign(0) {
		return nil, false
	}

	placements := make([]Placement, len(s.ingredients))
	for k, ci := range assigned {
		c := cells[ci]
		placements[k] = Placement{X: c.x, Y: c.y, Stack: c.stack, Ingredient: s.ingredients[k]}
	}
	metricMatches.WithLabelValues(kindShapeless, orientation(false)).Inc()
	return placements, true
}

// Matches reports whether the grid satisfies the template.
func (s *Shapeless) Matches(g Grid) bool {
	metricAttempts.WithLabelValues(kindShapeless).Inc()
	_, ok := s.Find(g)
	return ok
}

// Resolve matches the grid and computes the craft output, like Shaped.Resolve.
// The returned Match carries the placements; its offset fields are unused.
func (s *Shapeless) Resolve(g Grid, actor item.Actor) (Result, bool) {
	metricAttempts.WithLabelValues(kindShapeless).Inc()
	placements, ok := s.Find(g)
	if !ok {
		return Result{}, false
	}
	m := Match{Placements: placements}

	out := resolveOutput(s, s.output, s.fn, placements, g, actor)
	if out == nil {
		return Result{Match: m, Suppressed: true}, false
	}
	return Result{Output: out, Match: m, Leftovers: leftovers(placements, actor)}, true
}

// CraftingResult returns the output the grid crafts into, or nil.
func (s *Shapeless) CraftingResult(g Grid, actor item.Actor) *item.Stack {
	res, ok := s.Resolve(g, actor)
	if !ok {
		return nil
	}
	return res.Output
}

// ApplyTransforms assigns the grid again and writes ingredient leftovers.
func (s *Shapeless) ApplyTransforms(g Grid, actor item.Actor) {
	placements, ok := s.Find(g)
	if !ok {
		return
	}
	for _, l := range leftovers(placements, actor) {
		g.SetStack(l.X, l.Y, l.Stack)
	}
}
