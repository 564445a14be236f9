package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridcraft/gridcraft/pkg/grid"
	"github.com/gridcraft/gridcraft/pkg/item"
	"github.com/gridcraft/gridcraft/pkg/recipe"
)

var (
	stickStack = item.New("minecraft:stick")
	ladder     = item.New("minecraft:ladder").WithAmount(3)
)

func TestShapedOreRecipeInputs(t *testing.T) {
	planks := Input{Ore: "plankWood"}
	stick := Input{Item: stickStack.Ptr()}

	tests := []struct {
		name string
		r    ShapedOreRecipe
		want []*Input
		ok   bool
	}{
		{
			name: "dense",
			r: ShapedOreRecipe{Width: 2, Height: 2, Pattern: []string{"AB", " A"},
				Keys: map[string]Input{"A": planks, "B": stick}},
			want: []*Input{&planks, &stick, nil, &planks},
			ok:   true,
		},
		{
			name: "short rows and missing rows",
			r:    ShapedOreRecipe{Width: 3, Height: 2, Pattern: []string{"A"}, Keys: map[string]Input{"A": stick}},
			want: []*Input{&stick, nil, nil, nil, nil, nil},
			ok:   true,
		},
		{
			name: "too many rows",
			r:    ShapedOreRecipe{Width: 1, Height: 1, Pattern: []string{"A", "A"}, Keys: map[string]Input{"A": stick}},
		},
		{
			name: "unknown symbol",
			r:    ShapedOreRecipe{Width: 1, Height: 1, Pattern: []string{"Q"}},
		},
		{
			name: "no dimensions",
			r:    ShapedOreRecipe{Pattern: []string{"A"}, Keys: map[string]Input{"A": stick}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.r.Inputs()
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNativeSizes(t *testing.T) {
	assert.Equal(t, 6, (&ShapedRecipes{Width: 3, Height: 2}).RecipeSize())
	assert.Equal(t, 6, (&ShapedOreRecipe{Width: 2, Height: 3}).RecipeSize())
	assert.Equal(t, 2, (&ShapelessRecipes{Items: []item.Stack{stickStack, stickStack}}).RecipeSize())
	assert.Equal(t, 1, (&ShapelessOreRecipe{Inputs: []Input{{Ore: "dye"}}}).RecipeSize())
	assert.Equal(t, "A A/ A ", (&ShapedOreRecipe{Pattern: []string{"A A", " A "}}).PatternString())
}

func TestInputString(t *testing.T) {
	assert.Equal(t, "<minecraft:stick>", Input{Item: stickStack.Ptr()}.String())
	assert.Equal(t, "<ore:plankWood>", Input{Ore: "plankWood"}.String())
}

func TestShapedAdapterDelegates(t *testing.T) {
	stick := item.Exact(stickStack)
	tpl, err := recipe.NewShaped(ladder, [][]*item.Ingredient{{stick, nil, stick}, {stick, stick, stick}, {stick, nil, stick}})
	require.NoError(t, err)

	adapters := []Adapter{
		NewShapedBasic(tpl, nil),
		NewShapedOre(tpl, nil, nil),
		NewShapedAdvanced(tpl),
	}

	g := grid.New(3, 3)
	for _, pos := range [][2]int{{0, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}, {0, 2}, {2, 2}} {
		g.SetStack(pos[0], pos[1], stickStack.Ptr())
	}

	for _, a := range adapters {
		t.Run(Kind(a), func(t *testing.T) {
			assert.Equal(t, 3, a.DeclaredWidth())
			assert.Equal(t, 3, a.DeclaredHeight())
			assert.Equal(t, 9, a.RecipeSize())
			assert.Equal(t, ladder, a.RecipeOutput())
			assert.True(t, a.Matches(g))
			assert.Equal(t, ladder.Ptr(), a.CraftingResult(g, nil))
			assert.Same(t, tpl, a.Template())
		})
	}
}

func TestShapelessAdapterDelegates(t *testing.T) {
	tpl, err := recipe.NewShapeless(ladder, []*item.Ingredient{item.Exact(stickStack)})
	require.NoError(t, err)

	adapters := []Adapter{
		NewShapelessBasic(tpl, []item.Stack{stickStack}),
		NewShapelessOre(tpl, []Input{{Item: stickStack.Ptr()}}),
		NewShapelessAdvanced(tpl),
	}

	g := grid.New(2, 2)
	g.SetStack(1, 1, stickStack.Ptr())

	for _, a := range adapters {
		t.Run(Kind(a), func(t *testing.T) {
			assert.Zero(t, a.DeclaredWidth())
			assert.Zero(t, a.DeclaredHeight())
			assert.Equal(t, 1, a.RecipeSize())
			assert.Equal(t, ladder, a.RecipeOutput())
			assert.True(t, a.Matches(g))
			assert.NotNil(t, a.CraftingResult(g, nil))
		})
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		r    Recipe
		want string
	}{
		{&ShapedRecipes{}, "ShapedRecipes"},
		{&ShapedOreRecipe{}, "ShapedOreRecipe"},
		{&ShapelessRecipes{}, "ShapelessRecipes"},
		{&ShapelessOreRecipe{}, "ShapelessOreRecipe"},
		{&ShapedBasic{}, "ShapedBasic"},
		{&ShapelessAdvanced{}, "ShapelessAdvanced"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Kind(tt.r))
		})
	}
}
