package registry

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/gridcraft/gridcraft/pkg/converter"
	"github.com/gridcraft/gridcraft/pkg/errors"
	"github.com/gridcraft/gridcraft/pkg/host"
	"github.com/gridcraft/gridcraft/pkg/item"
	"github.com/gridcraft/gridcraft/pkg/recipe"
)

// ActionKind names what an action did to the recipe list.
type ActionKind string

const (
	ActionAdd    ActionKind = "add"
	ActionRemove ActionKind = "remove"
)

// Action describes a recorded change to the recipe list.
type Action struct {
	ID          string     `json:"id" yaml:"id"`
	Kind        ActionKind `json:"kind" yaml:"kind"`
	Description string     `json:"description" yaml:"description"`
	Count       int        `json:"count" yaml:"count"`
	Undone      bool       `json:"undone,omitempty" yaml:"undone,omitempty"`
}

// Entry is a recipe in the list together with its decoded template.
type Entry struct {
	Recipe   host.Recipe
	Template recipe.Crafting
	Tier     converter.Tier
}

type entry struct {
	recipe   host.Recipe
	template recipe.Crafting
}

type action struct {
	Action
	entries []*entry
	// indexes holds the list position each removed entry had, ascending.
	indexes []int
}

// Registry owns a host recipe list.
type Registry struct {
	conv    *converter.Converter
	entries []*entry
	actions []*action
	mu      sync.RWMutex
}

// Option configures a Registry.
type Option func(*Registry)

// WithRecipes seeds the list with recipes already known to the host. Seeding
// is not an action and cannot be undone.
func WithRecipes(rs ...host.Recipe) Option {
	return func(r *Registry) {
		for _, hr := range rs {
			r.entries = append(r.entries, r.newEntry(hr))
		}
	}
}

// New creates a Registry converting templates with conv.
func New(conv *converter.Converter, opts ...Option) *Registry {
	r := &Registry{conv: conv}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Registry) newEntry(hr host.Recipe) *entry {
	return &entry{recipe: hr, template: r.conv.Decode(hr)}
}

// AddShaped converts t to a host adapter and appends it.
func (r *Registry) AddShaped(t *recipe.Shaped) Action {
	return r.add(r.conv.ConvertShaped(t), "shaped recipe for "+t.Output().Describe())
}

// AddShapeless converts t to a host adapter and appends it.
func (r *Registry) AddShapeless(t *recipe.Shapeless) Action {
	return r.add(r.conv.ConvertShapeless(t), "shapeless recipe for "+t.Output().Describe())
}

func (r *Registry) add(a host.Adapter, desc string) Action {
	e := &entry{recipe: a, template: a.Template()}
	tier := converter.Classify(e.template)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, e)
	act := r.record(ActionAdd, desc, []*entry{e}, nil)
	metricRecipesAdded.WithLabelValues(tier.String()).Inc()

	slog.Debug("recipe added",
		"action", act.ID,
		"kind", host.Kind(a),
		"tier", tier.String(),
		"output", a.RecipeOutput().Describe())

	return act.Action
}

// Remove removes every recipe whose output satisfies output.
func (r *Registry) Remove(output *item.Ingredient) (Action, error) {
	return r.remove(fmt.Sprintf("recipes for %s", output), func(e *entry) bool {
		return outputMatches(output, e.template)
	})
}

// RemoveShaped removes every shaped recipe whose output satisfies output and
// whose ingredient table renders the same as rows.
func (r *Registry) RemoveShaped(output *item.Ingredient, rows [][]*item.Ingredient) (Action, error) {
	want := rowsText(rows)
	return r.remove(fmt.Sprintf("shaped recipes for %s", output), func(e *entry) bool {
		s, ok := e.template.(*recipe.Shaped)
		return ok && outputMatches(output, s) && slices.EqualFunc(rowsText(s.Rows()), want, slices.Equal[[]string])
	})
}

// RemoveShapeless removes every shapeless recipe whose output satisfies
// output and whose ingredients render the same as ings, in any order.
func (r *Registry) RemoveShapeless(output *item.Ingredient, ings []*item.Ingredient) (Action, error) {
	want := sortedText(ings)
	return r.remove(fmt.Sprintf("shapeless recipes for %s", output), func(e *entry) bool {
		s, ok := e.template.(*recipe.Shapeless)
		return ok && outputMatches(output, s) && slices.Equal(sortedText(s.Ingredients()), want)
	})
}

func (r *Registry) remove(desc string, match func(*entry) bool) (Action, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var (
		removed []*entry
		indexes []int
		kept    = r.entries[:0:0]
	)
	for i, e := range r.entries {
		if match(e) {
			removed = append(removed, e)
			indexes = append(indexes, i)
			continue
		}
		kept = append(kept, e)
	}
	if len(removed) == 0 {
		return Action{}, errors.NewWithContext(errors.ErrCodeNotFound, "no recipes to remove", map[string]any{
			"target": desc,
		})
	}
	r.entries = kept

	act := r.record(ActionRemove, desc, removed, indexes)
	metricRecipesRemoved.Add(float64(len(removed)))

	slog.Debug("recipes removed", "action", act.ID, "target", desc, "count", len(removed))
	return act.Action, nil
}

// record must be called with mu held.
func (r *Registry) record(kind ActionKind, desc string, entries []*entry, indexes []int) *action {
	act := &action{
		Action: Action{
			ID:          uuid.New().String(),
			Kind:        kind,
			Description: desc,
			Count:       len(entries),
		},
		entries: entries,
		indexes: indexes,
	}
	r.actions = append(r.actions, act)
	metricRecipeCount.Set(float64(len(r.entries)))
	return act
}

// Undo reverts the action with the given ID. Only the newest pending action
// can be reverted: removed recipes go back at the positions they held, which
// later actions would have shifted.
func (r *Registry) Undo(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := slices.IndexFunc(r.actions, func(act *action) bool {
		return act.ID == id && !act.Undone
	})
	if i < 0 {
		return errors.NewWithContext(errors.ErrCodeNotFound, "no pending action with this id", map[string]any{
			"id": id,
		})
	}
	if newest := r.newestPending(); newest != r.actions[i] {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest, "a newer action must be undone first", map[string]any{
			"id":     id,
			"newest": newest.ID,
		})
	}
	r.undo(r.actions[i])
	return nil
}

// newestPending must be called with mu held.
func (r *Registry) newestPending() *action {
	for i := len(r.actions) - 1; i >= 0; i-- {
		if !r.actions[i].Undone {
			return r.actions[i]
		}
	}
	return nil
}

// UndoAll reverts every pending action, newest first, and returns how many
// were reverted.
func (r *Registry) UndoAll() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for i := len(r.actions) - 1; i >= 0; i-- {
		if act := r.actions[i]; !act.Undone {
			r.undo(act)
			n++
		}
	}
	return n
}

// undo must be called with mu held.
func (r *Registry) undo(act *action) {
	switch act.Kind {
	case ActionAdd:
		r.entries = slices.DeleteFunc(r.entries, func(e *entry) bool {
			return slices.Contains(act.entries, e)
		})
	case ActionRemove:
		for k, e := range act.entries {
			at := min(act.indexes[k], len(r.entries))
			r.entries = slices.Insert(r.entries, at, e)
		}
	}
	act.Undone = true
	metricUndone.WithLabelValues(string(act.Kind)).Inc()
	metricRecipeCount.Set(float64(len(r.entries)))

	slog.Debug("action undone", "action", act.ID, "kind", string(act.Kind), "count", act.Count)
}

// Actions returns every recorded action in order.
func (r *Registry) Actions() []Action {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Action, 0, len(r.actions))
	for _, act := range r.actions {
		out = append(out, act.Action)
	}
	return out
}

// Len returns the number of recipes in the list.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Recipes returns the host recipe list.
func (r *Registry) Recipes() []host.Recipe {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]host.Recipe, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.recipe)
	}
	return out
}

// Templates returns the decoded template of every recipe in the list.
func (r *Registry) Templates() []recipe.Crafting {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]recipe.Crafting, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.template)
	}
	return out
}

// Entries returns the recipe list with decoded templates and tiers.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, Entry{
			Recipe:   e.recipe,
			Template: e.template,
			Tier:     converter.Classify(e.template),
		})
	}
	return out
}

// RecipesFor returns the decoded templates whose output satisfies output.
func (r *Registry) RecipesFor(output *item.Ingredient) []recipe.Crafting {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []recipe.Crafting
	for _, e := range r.entries {
		if outputMatches(output, e.template) {
			out = append(out, e.template)
		}
	}
	return out
}

func outputMatches(output *item.Ingredient, c recipe.Crafting) bool {
	out := c.Output()
	return output.Matches(&out)
}

func rowsText(rows [][]*item.Ingredient) [][]string {
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	out := make([][]string, len(rows))
	for y, row := range rows {
		out[y] = make([]string, width)
		for x := range out[y] {
			var in *item.Ingredient
			if x < len(row) {
				in = row[x]
			}
			out[y][x] = in.String()
		}
	}
	return out
}

func sortedText(ings []*item.Ingredient) []string {
	var out []string
	for _, in := range ings {
		if in != nil {
			out = append(out, in.String())
		}
	}
	slices.Sort(out)
	return out
}
