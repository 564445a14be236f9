package converter

import (
	"fmt"
	"log/slog"

	"github.com/gridcraft/gridcraft/pkg/errors"
	"github.com/gridcraft/gridcraft/pkg/host"
	"github.com/gridcraft/gridcraft/pkg/item"
	"github.com/gridcraft/gridcraft/pkg/recipe"
)

// Converter translates between templates and host recipes. Decoded tag
// groups resolve against its dictionary.
type Converter struct {
	dict *item.Dictionary
}

// New returns a Converter resolving tag groups against dict.
func New(dict *item.Dictionary) *Converter {
	return &Converter{dict: dict}
}

// Dictionary returns the dictionary decoded tag groups resolve against.
func (c *Converter) Dictionary() *item.Dictionary {
	return c.dict
}

// ConvertShaped returns the most specific host adapter for t.
func (c *Converter) ConvertShaped(t *recipe.Shaped) host.Adapter {
	tier := ClassifyShaped(t)
	slog.Debug("converting shaped recipe",
		"output", t.Output().Describe(),
		"tier", tier.String())

	switch tier {
	case TierExact:
		ings := t.Ingredients()
		items := make([]*item.Stack, len(ings))
		for i, in := range ings {
			if s, ok := in.Item(); ok {
				items[i] = s.Ptr()
			}
		}
		return host.NewShapedBasic(t, items)
	case TierTagged:
		pattern, keys := BuildPattern(t)
		return host.NewShapedOre(t, pattern, keys)
	default:
		return host.NewShapedAdvanced(t)
	}
}

// ConvertShapeless returns the most specific host adapter for t.
func (c *Converter) ConvertShapeless(t *recipe.Shapeless) host.Adapter {
	tier := ClassifyShapeless(t)
	slog.Debug("converting shapeless recipe",
		"output", t.Output().Describe(),
		"tier", tier.String())

	ings := t.Ingredients()
	switch tier {
	case TierExact:
		items := make([]item.Stack, 0, len(ings))
		for _, in := range ings {
			s, _ := in.Item()
			items = append(items, s)
		}
		return host.NewShapelessBasic(t, items)
	case TierTagged:
		inputs := make([]host.Input, 0, len(ings))
		for _, in := range ings {
			inputs = append(inputs, inputOf(in))
		}
		return host.NewShapelessOre(t, inputs)
	default:
		return host.NewShapelessAdvanced(t)
	}
}

// BuildPattern renders a tagged template as host pattern rows and keys.
// Distinct inputs get consecutive symbols starting at 'A' in the order they
// first occur row by row; empty cells are spaces.
func BuildPattern(t *recipe.Shaped) ([]string, map[string]host.Input) {
	keys := make(map[string]host.Input)
	symbols := make(map[string]string)
	next := 'A'

	pattern := make([]string, 0, t.Height())
	for _, row := range t.Rows() {
		line := make([]rune, len(row))
		for x, in := range row {
			if in == nil {
				line[x] = ' '
				continue
			}
			input := inputOf(in)
			k := inputKey(input)
			sym, seen := symbols[k]
			if !seen {
				sym = string(next)
				next++
				symbols[k] = sym
				keys[sym] = input
			}
			line[x] = []rune(sym)[0]
		}
		pattern = append(pattern, string(line))
	}
	return pattern, keys
}

// Decode reconstructs a template from any host recipe. Adapters return the
// template they wrap. Recipes of unrecognized kinds, or whose contents do not
// form a valid template, decode to recipe.Unknown and are logged.
func (c *Converter) Decode(r host.Recipe) recipe.Crafting {
	t, err := c.decode(r)
	if err != nil {
		slog.Warn("recipe decoded as unknown",
			"kind", host.Kind(r),
			"output", r.RecipeOutput().Describe(),
			"error", err)
		return recipe.NewUnknown(r.RecipeOutput())
	}
	return t
}

func (c *Converter) decode(r host.Recipe) (recipe.Crafting, error) {
	switch n := r.(type) {
	case host.Adapter:
		return n.Template(), nil

	case *host.ShapedRecipes:
		ings := make([]*item.Ingredient, len(n.Items))
		for i, s := range n.Items {
			if s != nil {
				ings[i] = item.Exact(*s)
			}
		}
		t, err := recipe.NewShapedFlat(n.Output, ings, n.Width, n.Height)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeUnsupportedRecipe, "invalid shaped recipe", err)
		}
		return t, nil

	case *host.ShapedOreRecipe:
		inputs, ok := n.Inputs()
		if !ok {
			return nil, errors.NewWithContext(errors.ErrCodeUnsupportedRecipe, "pattern does not fit recipe", map[string]any{
				"pattern": n.PatternString(),
				"width":   n.Width,
				"height":  n.Height,
			})
		}
		ings := make([]*item.Ingredient, len(inputs))
		for i, in := range inputs {
			if in != nil {
				ings[i] = c.ingredientOf(*in)
			}
		}
		var opts []recipe.Option
		if n.Mirrored {
			opts = append(opts, recipe.WithMirrored())
		}
		t, err := recipe.NewShapedFlat(n.Output, ings, n.Width, n.Height, opts...)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeUnsupportedRecipe, "invalid shaped ore recipe", err)
		}
		return t, nil

	case *host.ShapelessRecipes:
		ings := make([]*item.Ingredient, 0, len(n.Items))
		for _, s := range n.Items {
			ings = append(ings, item.Exact(s))
		}
		t, err := recipe.NewShapeless(n.Output, ings)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeUnsupportedRecipe, "invalid shapeless recipe", err)
		}
		return t, nil

	case *host.ShapelessOreRecipe:
		ings := make([]*item.Ingredient, 0, len(n.Inputs))
		for _, in := range n.Inputs {
			ings = append(ings, c.ingredientOf(in))
		}
		t, err := recipe.NewShapeless(n.Output, ings)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeUnsupportedRecipe, "invalid shapeless ore recipe", err)
		}
		return t, nil

	default:
		return nil, errors.New(errors.ErrCodeUnsupportedRecipe, fmt.Sprintf("unsupported recipe type %T", r))
	}
}

func (c *Converter) ingredientOf(in host.Input) *item.Ingredient {
	if in.Item != nil {
		return item.Exact(*in.Item)
	}
	return item.Ore(in.Ore, c.dict)
}

// inputOf returns the host binding of an exact or tagged ingredient.
func inputOf(in *item.Ingredient) host.Input {
	switch v := in.Internal().(type) {
	case *item.Stack:
		return host.Input{Item: v}
	case string:
		return host.Input{Ore: v}
	default:
		return host.Input{}
	}
}

func inputKey(in host.Input) string {
	if in.Item != nil {
		return "item:" + in.Item.Describe()
	}
	return "ore:" + in.Ore
}
