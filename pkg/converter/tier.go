package converter

import (
	"fmt"

	"github.com/gridcraft/gridcraft/pkg/item"
	"github.com/gridcraft/gridcraft/pkg/recipe"
)

// Tier is the specificity of an ingredient or recipe. Higher is more specific.
type Tier int

const (
	// TierDynamic requires evaluating the ingredient's own predicate.
	TierDynamic Tier = iota
	// TierTagged is expressible as a dictionary group or exact item.
	TierTagged
	// TierExact is expressible as exact item stacks only.
	TierExact
)

func (t Tier) String() string {
	switch t {
	case TierDynamic:
		return "dynamic"
	case TierTagged:
		return "tagged"
	case TierExact:
		return "exact"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// ClassifyIngredient returns the tier of a single ingredient.
func ClassifyIngredient(in *item.Ingredient) Tier {
	switch in.Kind() {
	case item.KindItem:
		return TierExact
	case item.KindOre:
		return TierTagged
	case item.KindCustom:
		return TierDynamic
	default:
		return TierDynamic
	}
}

// classify returns the lowest tier among the non-nil ingredients, or
// TierExact when there are none.
func classify(ings []*item.Ingredient) Tier {
	tier := TierExact
	for _, in := range ings {
		if in == nil {
			continue
		}
		tier = min(tier, ClassifyIngredient(in))
	}
	return tier
}

// ClassifyShaped returns the tier of a shaped template.
func ClassifyShaped(t *recipe.Shaped) Tier {
	return classify(t.Ingredients())
}

// ClassifyShapeless returns the tier of a shapeless template.
func ClassifyShapeless(t *recipe.Shapeless) Tier {
	return classify(t.Ingredients())
}

// Classify returns the tier of any decoded recipe. Unknown recipes are
// TierDynamic since nothing about their ingredients is known.
func Classify(c recipe.Crafting) Tier {
	switch t := c.(type) {
	case *recipe.Shaped:
		return ClassifyShaped(t)
	case *recipe.Shapeless:
		return ClassifyShapeless(t)
	default:
		return TierDynamic
	}
}
