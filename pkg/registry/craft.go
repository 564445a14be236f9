package registry

import (
	"log/slog"

	"github.com/gridcraft/gridcraft/pkg/item"
	"github.com/gridcraft/gridcraft/pkg/recipe"
)

// resolver is implemented by templates that can report where they matched.
type resolver interface {
	recipe.Crafting
	Resolve(g recipe.Grid, actor item.Actor) (recipe.Result, bool)
}

// CraftResult describes a completed craft.
type CraftResult struct {
	Output   *item.Stack
	Template recipe.Crafting
	Match    recipe.Match
}

// Craft runs the grid through the recipe list the way the host does: the
// first recipe whose template matches decides the outcome. On success the
// grid is updated in place. Transforming ingredients leave their leftovers
// and every other matched cell loses one item. ok is false when nothing
// matched or the matching recipe refused the craft; the grid is then left
// untouched.
func (r *Registry) Craft(g recipe.Grid, actor item.Actor) (CraftResult, bool) {
	r.mu.RLock()
	templates := make([]recipe.Crafting, 0, len(r.entries))
	for _, e := range r.entries {
		templates = append(templates, e.template)
	}
	r.mu.RUnlock()

	for _, t := range templates {
		rt, ok := t.(resolver)
		if !ok {
			continue
		}
		res, ok := rt.Resolve(g, actor)
		if !ok {
			if res.Suppressed {
				metricCrafts.WithLabelValues(craftResultSuppressed).Inc()
				slog.Debug("craft refused by recipe function", "output", t.Output().Describe())
				return CraftResult{Template: t, Match: res.Match}, false
			}
			continue
		}

		apply(g, rt, res, actor)
		metricCrafts.WithLabelValues(craftResultCrafted).Inc()
		return CraftResult{Output: res.Output, Template: t, Match: res.Match}, true
	}

	metricCrafts.WithLabelValues(craftResultNoMatch).Inc()
	return CraftResult{}, false
}

func apply(g recipe.Grid, t resolver, res recipe.Result, actor item.Actor) {
	if s, ok := t.(*recipe.Shaped); ok {
		s.ApplyTransformsAt(g, res.Match, actor)
	} else {
		for _, l := range res.Leftovers {
			g.SetStack(l.X, l.Y, l.Stack)
		}
	}

	for _, p := range res.Match.Placements {
		if p.Ingredient.HasTransform() {
			continue
		}
		n := p.Stack.Count() - 1
		if n <= 0 {
			g.SetStack(p.X, p.Y, nil)
			continue
		}
		g.SetStack(p.X, p.Y, p.Stack.WithAmount(n).Ptr())
	}
}
