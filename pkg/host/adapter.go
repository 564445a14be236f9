package host

import (
	"github.com/gridcraft/gridcraft/pkg/item"
	"github.com/gridcraft/gridcraft/pkg/recipe"
)

// Adapter is a host recipe produced from a gridcraft template. Matching and
// output resolution delegate to the template; the declared dimensions are
// the template's own.
type Adapter interface {
	Recipe

	// DeclaredWidth returns the template width, or 0 for shapeless recipes.
	DeclaredWidth() int
	// DeclaredHeight returns the template height, or 0 for shapeless recipes.
	DeclaredHeight() int
	// Matches reports whether the grid satisfies the template.
	Matches(g recipe.Grid) bool
	// CraftingResult returns the stack the grid crafts into, or nil.
	CraftingResult(g recipe.Grid, actor item.Actor) *item.Stack
	// Template returns the wrapped template.
	Template() recipe.Crafting
}

// Ensure every adapter implements Adapter
var (
	_ Adapter = (*ShapedBasic)(nil)
	_ Adapter = (*ShapedOre)(nil)
	_ Adapter = (*ShapedAdvanced)(nil)
	_ Adapter = (*ShapelessBasic)(nil)
	_ Adapter = (*ShapelessOre)(nil)
	_ Adapter = (*ShapelessAdvanced)(nil)
)

// shapedAdapter holds what every shaped adapter delegates to.
type shapedAdapter struct {
	template *recipe.Shaped
}

func (a shapedAdapter) DeclaredWidth() int  { return a.template.Width() }
func (a shapedAdapter) DeclaredHeight() int { return a.template.Height() }

func (a shapedAdapter) Matches(g recipe.Grid) bool { return a.template.Matches(g) }

func (a shapedAdapter) CraftingResult(g recipe.Grid, actor item.Actor) *item.Stack {
	return a.template.CraftingResult(g, actor)
}

func (a shapedAdapter) Template() recipe.Crafting { return a.template }

// Shaped returns the wrapped template with its concrete type.
func (a shapedAdapter) Shaped() *recipe.Shaped { return a.template }

// ShapedBasic presents an exact-item template as ShapedRecipes.
type ShapedBasic struct {
	ShapedRecipes
	shapedAdapter
}

// NewShapedBasic wraps t. items is the dense row-major stack table.
func NewShapedBasic(t *recipe.Shaped, items []*item.Stack) *ShapedBasic {
	return &ShapedBasic{
		ShapedRecipes: ShapedRecipes{
			Width:  t.Width(),
			Height: t.Height(),
			Items:  items,
			Output: t.Output(),
		},
		shapedAdapter: shapedAdapter{template: t},
	}
}

// ShapedOre presents a tag-aware template as ShapedOreRecipe.
type ShapedOre struct {
	ShapedOreRecipe
	shapedAdapter
}

// NewShapedOre wraps t with the given pattern and symbol keys.
func NewShapedOre(t *recipe.Shaped, pattern []string, keys map[string]Input) *ShapedOre {
	return &ShapedOre{
		ShapedOreRecipe: ShapedOreRecipe{
			Width:    t.Width(),
			Height:   t.Height(),
			Pattern:  pattern,
			Keys:     keys,
			Mirrored: t.Mirrored(),
			Output:   t.Output(),
		},
		shapedAdapter: shapedAdapter{template: t},
	}
}

// ShapedAdvanced carries a template the engine has no native form for.
type ShapedAdvanced struct {
	shapedAdapter
}

// NewShapedAdvanced wraps t.
func NewShapedAdvanced(t *recipe.Shaped) *ShapedAdvanced {
	return &ShapedAdvanced{shapedAdapter: shapedAdapter{template: t}}
}

func (a *ShapedAdvanced) RecipeOutput() item.Stack { return a.template.Output() }
func (a *ShapedAdvanced) RecipeSize() int          { return a.template.Width() * a.template.Height() }

type shapelessAdapter struct {
	template *recipe.Shapeless
}

func (a shapelessAdapter) DeclaredWidth() int  { return 0 }
func (a shapelessAdapter) DeclaredHeight() int { return 0 }

func (a shapelessAdapter) Matches(g recipe.Grid) bool { return a.template.Matches(g) }

func (a shapelessAdapter) CraftingResult(g recipe.Grid, actor item.Actor) *item.Stack {
	return a.template.CraftingResult(g, actor)
}

func (a shapelessAdapter) Template() recipe.Crafting { return a.template }

// ShapelessBasic presents an exact-item shapeless template as ShapelessRecipes.
type ShapelessBasic struct {
	ShapelessRecipes
	shapelessAdapter
}

// NewShapelessBasic wraps t.
func NewShapelessBasic(t *recipe.Shapeless, items []item.Stack) *ShapelessBasic {
	return &ShapelessBasic{
		ShapelessRecipes: ShapelessRecipes{Items: items, Output: t.Output()},
		shapelessAdapter: shapelessAdapter{template: t},
	}
}

// ShapelessOre presents a tag-aware shapeless template as ShapelessOreRecipe.
type ShapelessOre struct {
	ShapelessOreRecipe
	shapelessAdapter
}

// NewShapelessOre wraps t.
func NewShapelessOre(t *recipe.Shapeless, inputs []Input) *ShapelessOre {
	return &ShapelessOre{
		ShapelessOreRecipe: ShapelessOreRecipe{Inputs: inputs, Output: t.Output()},
		shapelessAdapter:   shapelessAdapter{template: t},
	}
}

// ShapelessAdvanced carries a shapeless template with dynamic ingredients.
type ShapelessAdvanced struct {
	shapelessAdapter
}

// NewShapelessAdvanced wraps t.
func NewShapelessAdvanced(t *recipe.Shapeless) *ShapelessAdvanced {
	return &ShapelessAdvanced{shapelessAdapter: shapelessAdapter{template: t}}
}

func (a *ShapelessAdvanced) RecipeOutput() item.Stack { return a.template.Output() }
func (a *ShapelessAdvanced) RecipeSize() int          { return len(a.template.Ingredients()) }
