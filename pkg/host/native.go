package host

import (
	"strings"

	"github.com/gridcraft/gridcraft/pkg/item"
)

// Recipe is any recipe held by the host engine.
type Recipe interface {
	// RecipeOutput returns the output stack.
	RecipeOutput() item.Stack
	// RecipeSize returns the number of cells or ingredients the recipe declares.
	RecipeSize() int
}

// Input is a host-native ingredient: an exact stack or a dictionary group.
// Exactly one of Item and Ore is set.
type Input struct {
	Item *item.Stack `json:"item,omitempty" yaml:"item,omitempty"`
	Ore  string      `json:"ore,omitempty" yaml:"ore,omitempty"`
}

// String renders the input in ingredient text form.
func (in Input) String() string {
	if in.Item != nil {
		return in.Item.String()
	}
	return "<ore:" + in.Ore + ">"
}

// ShapedRecipes is the engine's exact-item shaped recipe.
type ShapedRecipes struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
	// Items is the dense row-major cell table; nil cells are empty.
	Items  []*item.Stack `json:"items" yaml:"items"`
	Output item.Stack    `json:"output" yaml:"output"`
}

func (r *ShapedRecipes) RecipeOutput() item.Stack { return r.Output }
func (r *ShapedRecipes) RecipeSize() int          { return r.Width * r.Height }

// ShapedOreRecipe is the engine's tag-aware shaped recipe. Pattern holds one
// string per row; a space is an empty cell and any other symbol is looked up
// in Keys.
type ShapedOreRecipe struct {
	Width    int              `json:"width" yaml:"width"`
	Height   int              `json:"height" yaml:"height"`
	Pattern  []string         `json:"pattern" yaml:"pattern"`
	Keys     map[string]Input `json:"keys" yaml:"keys"`
	Mirrored bool             `json:"mirrored,omitempty" yaml:"mirrored,omitempty"`
	Output   item.Stack       `json:"output" yaml:"output"`
}

func (r *ShapedOreRecipe) RecipeOutput() item.Stack { return r.Output }
func (r *ShapedOreRecipe) RecipeSize() int          { return r.Width * r.Height }

// Inputs expands the pattern into a dense row-major table. ok is false when
// the pattern does not fit Width×Height or references a missing key.
func (r *ShapedOreRecipe) Inputs() (inputs []*Input, ok bool) {
	if r.Width <= 0 || r.Height <= 0 || len(r.Pattern) > r.Height {
		return nil, false
	}
	inputs = make([]*Input, r.Width*r.Height)
	for y, row := range r.Pattern {
		symbols := []rune(row)
		if len(symbols) > r.Width {
			return nil, false
		}
		for x, sym := range symbols {
			if sym == ' ' {
				continue
			}
			in, found := r.Keys[string(sym)]
			if !found {
				return nil, false
			}
			inputs[y*r.Width+x] = &in
		}
	}
	return inputs, true
}

// PatternString joins the pattern rows with "/" for display.
func (r *ShapedOreRecipe) PatternString() string {
	return strings.Join(r.Pattern, "/")
}

// ShapelessRecipes is the engine's exact-item shapeless recipe.
type ShapelessRecipes struct {
	Items  []item.Stack `json:"items" yaml:"items"`
	Output item.Stack   `json:"output" yaml:"output"`
}

func (r *ShapelessRecipes) RecipeOutput() item.Stack { return r.Output }
func (r *ShapelessRecipes) RecipeSize() int          { return len(r.Items) }

// ShapelessOreRecipe is the engine's tag-aware shapeless recipe.
type ShapelessOreRecipe struct {
	Inputs []Input    `json:"inputs" yaml:"inputs"`
	Output item.Stack `json:"output" yaml:"output"`
}

func (r *ShapelessOreRecipe) RecipeOutput() item.Stack { return r.Output }
func (r *ShapelessOreRecipe) RecipeSize() int          { return len(r.Inputs) }

// Kind names the native kind of r, following the adapter's embedded form.
func Kind(r Recipe) string {
	switch r.(type) {
	case *ShapedBasic:
		return "ShapedBasic"
	case *ShapedOre:
		return "ShapedOre"
	case *ShapedAdvanced:
		return "ShapedAdvanced"
	case *ShapelessBasic:
		return "ShapelessBasic"
	case *ShapelessOre:
		return "ShapelessOre"
	case *ShapelessAdvanced:
		return "ShapelessAdvanced"
	case *ShapedRecipes:
		return "ShapedRecipes"
	case *ShapedOreRecipe:
		return "ShapedOreRecipe"
	case *ShapelessRecipes:
		return "ShapelessRecipes"
	case *ShapelessOreRecipe:
		return "ShapelessOreRecipe"
	default:
		return "Unknown"
	}
}
