package converter

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridcraft/gridcraft/pkg/errors"
	"github.com/gridcraft/gridcraft/pkg/host"
	"github.com/gridcraft/gridcraft/pkg/item"
	"github.com/gridcraft/gridcraft/pkg/recipe"
)

var (
	stickStack = item.New("minecraft:stick")
	coalStack  = item.New("minecraft:coal")
	torchStack = item.New("minecraft:torch").WithAmount(4)
)

func testDict() *item.Dictionary {
	d := item.NewDictionary()
	d.Register("plankWood", "minecraft:oak_planks", "minecraft:birch_planks")
	d.Register("stickWood", "minecraft:stick")
	return d
}

func anything() *item.Ingredient {
	return item.Custom("<*>", func(item.Stack) bool { return true })
}

func shaped(t *testing.T, rows [][]*item.Ingredient, opts ...recipe.Option) *recipe.Shaped {
	t.Helper()
	s, err := recipe.NewShaped(torchStack, rows, opts...)
	require.NoError(t, err)
	return s
}

func cellText(c recipe.Crafting) map[string]string {
	out := make(map[string]string)
	s, ok := c.(*recipe.Shaped)
	if !ok {
		return out
	}
	for _, cell := range s.Cells() {
		out[fmt.Sprintf("%d,%d", cell.X, cell.Y)] = cell.Ingredient.String()
	}
	return out
}

func TestClassifyIngredient(t *testing.T) {
	dict := testDict()
	tests := []struct {
		name string
		in   *item.Ingredient
		want Tier
	}{
		{"exact", item.Exact(stickStack), TierExact},
		{"exact marked", item.Exact(stickStack).Marked("s"), TierExact},
		{"ore", item.Ore("plankWood", dict), TierTagged},
		{"custom", anything(), TierDynamic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyIngredient(tt.in))
		})
	}
}

func TestClassifyRecipes(t *testing.T) {
	dict := testDict()
	stick := item.Exact(stickStack)
	planks := item.Ore("plankWood", dict)

	tests := []struct {
		name string
		rows [][]*item.Ingredient
		want Tier
	}{
		{"all exact", [][]*item.Ingredient{{stick, nil}, {nil, stick}}, TierExact},
		{"one tagged", [][]*item.Ingredient{{stick, planks}}, TierTagged},
		{"one dynamic", [][]*item.Ingredient{{planks, anything()}, {stick}}, TierDynamic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyShaped(shaped(t, tt.rows)))

			var flat []*item.Ingredient
			for _, row := range tt.rows {
				flat = append(flat, row...)
			}
			sl, err := recipe.NewShapeless(torchStack, flat)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ClassifyShapeless(sl))
			assert.Equal(t, tt.want, Classify(sl))
		})
	}

	assert.Equal(t, TierDynamic, Classify(recipe.NewUnknown(torchStack)))
}

func TestClassifyMonotonic(t *testing.T) {
	dict := testDict()
	base := [][]*item.Ingredient{
		{item.Exact(stickStack), item.Exact(coalStack)},
		{nil, item.Ore("stickWood", dict)},
	}
	before := ClassifyShaped(shaped(t, base))

	downgrades := []*item.Ingredient{item.Ore("plankWood", dict), anything()}
	for y, row := range base {
		for x, in := range row {
			if in == nil || ClassifyIngredient(in) != TierExact {
				continue
			}
			for _, d := range downgrades {
				rows := [][]*item.Ingredient{append([]*item.Ingredient(nil), base[0]...), append([]*item.Ingredient(nil), base[1]...)}
				rows[y][x] = d
				after := ClassifyShaped(shaped(t, rows))
				assert.LessOrEqual(t, after, before, "downgrading (%d,%d) to %s", x, y, d)
			}
		}
	}
}

func TestTierString(t *testing.T) {
	assert.Equal(t, "dynamic", TierDynamic.String())
	assert.Equal(t, "tagged", TierTagged.String())
	assert.Equal(t, "exact", TierExact.String())
	assert.Equal(t, "Tier(7)", Tier(7).String())
	assert.Less(t, TierDynamic, TierTagged)
	assert.Less(t, TierTagged, TierExact)
}

func TestConvertShapedSelectsNativeForm(t *testing.T) {
	dict := testDict()
	conv := New(dict)
	stick := item.Exact(stickStack)
	planks := item.Ore("plankWood", dict)

	t.Run("exact", func(t *testing.T) {
		tpl := shaped(t, [][]*item.Ingredient{{stick, nil}, {nil, stick}})
		a, ok := conv.ConvertShaped(tpl).(*host.ShapedBasic)
		require.True(t, ok)
		assert.Equal(t, 2, a.Width)
		assert.Equal(t, 2, a.Height)
		assert.Equal(t, []*item.Stack{stickStack.Ptr(), nil, nil, stickStack.Ptr()}, a.Items)
		assert.Equal(t, torchStack, a.RecipeOutput())
		assert.Equal(t, 4, a.RecipeSize())
		assert.Same(t, tpl, a.Template())
	})

	t.Run("tagged", func(t *testing.T) {
		tpl := shaped(t, [][]*item.Ingredient{{planks, planks}, {stick, nil}}, recipe.WithMirrored())
		a, ok := conv.ConvertShaped(tpl).(*host.ShapedOre)
		require.True(t, ok)
		assert.Equal(t, []string{"AA", "B "}, a.Pattern)
		assert.Equal(t, map[string]host.Input{
			"A": {Ore: "plankWood"},
			"B": {Item: stickStack.Ptr()},
		}, a.Keys)
		assert.True(t, a.Mirrored)
		assert.Equal(t, 2, a.DeclaredWidth())
		assert.Equal(t, 2, a.DeclaredHeight())
	})

	t.Run("dynamic", func(t *testing.T) {
		tpl := shaped(t, [][]*item.Ingredient{{anything(), stick}})
		a, ok := conv.ConvertShaped(tpl).(*host.ShapedAdvanced)
		require.True(t, ok)
		assert.Equal(t, 2, a.RecipeSize())
		assert.Equal(t, torchStack, a.RecipeOutput())
	})
}

func TestBuildPattern(t *testing.T) {
	dict := testDict()
	planks := item.Ore("plankWood", dict)
	stick := item.Exact(stickStack)
	twoSticks := item.Exact(stickStack.WithAmount(2))

	tests := []struct {
		name    string
		rows    [][]*item.Ingredient
		pattern []string
		keys    map[string]host.Input
	}{
		{
			name:    "first occurrence order",
			rows:    [][]*item.Ingredient{{nil, stick}, {planks, stick}},
			pattern: []string{" A", "BA"},
			keys:    map[string]host.Input{"A": {Item: stickStack.Ptr()}, "B": {Ore: "plankWood"}},
		},
		{
			name:    "marks do not split symbols",
			rows:    [][]*item.Ingredient{{planks, planks.Marked("p")}},
			pattern: []string{"AA"},
			keys:    map[string]host.Input{"A": {Ore: "plankWood"}},
		},
		{
			name:    "amounts split symbols",
			rows:    [][]*item.Ingredient{{stick, twoSticks, planks}},
			pattern: []string{"ABC"},
			keys: map[string]host.Input{
				"A": {Item: stickStack.Ptr()},
				"B": {Item: stickStack.WithAmount(2).Ptr()},
				"C": {Ore: "plankWood"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pattern, keys := BuildPattern(shaped(t, tt.rows))
			assert.Equal(t, tt.pattern, pattern)
			assert.Equal(t, tt.keys, keys)
		})
	}
}

func TestConvertShapeless(t *testing.T) {
	dict := testDict()
	conv := New(dict)

	exact, err := recipe.NewShapeless(torchStack, []*item.Ingredient{item.Exact(coalStack), item.Exact(stickStack)})
	require.NoError(t, err)
	b, ok := conv.ConvertShapeless(exact).(*host.ShapelessBasic)
	require.True(t, ok)
	assert.Equal(t, []item.Stack{coalStack, stickStack}, b.Items)
	assert.Zero(t, b.DeclaredWidth())

	tagged, err := recipe.NewShapeless(torchStack, []*item.Ingredient{item.Exact(coalStack), item.Ore("stickWood", dict)})
	require.NoError(t, err)
	o, ok := conv.ConvertShapeless(tagged).(*host.ShapelessOre)
	require.True(t, ok)
	assert.Equal(t, []host.Input{{Item: coalStack.Ptr()}, {Ore: "stickWood"}}, o.Inputs)

	dynamic, err := recipe.NewShapeless(torchStack, []*item.Ingredient{anything()})
	require.NoError(t, err)
	d, ok := conv.ConvertShapeless(dynamic).(*host.ShapelessAdvanced)
	require.True(t, ok)
	assert.Equal(t, 1, d.RecipeSize())
}

func TestDecodeSingleExactItem(t *testing.T) {
	conv := New(testDict())
	native := &host.ShapedRecipes{
		Width:  1,
		Height: 1,
		Items:  []*item.Stack{coalStack.Ptr()},
		Output: torchStack,
	}

	c := conv.Decode(native)
	tpl, ok := c.(*recipe.Shaped)
	require.True(t, ok)
	assert.Equal(t, TierExact, ClassifyShaped(tpl))
	assert.Nil(t, tpl.Function())
	assert.Equal(t, 1, tpl.Width())
	assert.Equal(t, 1, tpl.Height())
	assert.Equal(t, torchStack, tpl.Output())
	assert.Equal(t, map[string]string{"0,0": "<minecraft:coal>"}, cellText(tpl))
}

func TestDecodeUsesDeclaredDimensions(t *testing.T) {
	dict := testDict()
	conv := New(dict)

	tests := []struct {
		name          string
		native        host.Recipe
		width, height int
	}{
		{
			name: "wide ore recipe",
			native: &host.ShapedOreRecipe{
				Width: 3, Height: 1,
				Pattern: []string{"AAA"},
				Keys:    map[string]host.Input{"A": {Ore: "plankWood"}},
				Output:  item.New("minecraft:slab"),
			},
			width: 3, height: 1,
		},
		{
			name: "tall exact recipe",
			native: &host.ShapedRecipes{
				Width: 1, Height: 2,
				Items:  []*item.Stack{coalStack.Ptr(), stickStack.Ptr()},
				Output: torchStack,
			},
			width: 1, height: 2,
		},
		{
			name: "two by three ore recipe",
			native: &host.ShapedOreRecipe{
				Width: 2, Height: 3,
				Pattern: []string{"AA", "AA", "AA"},
				Keys:    map[string]host.Input{"A": {Ore: "plankWood"}},
				Output:  item.New("minecraft:door"),
			},
			width: 2, height: 3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tpl, ok := conv.Decode(tt.native).(*recipe.Shaped)
			require.True(t, ok)
			assert.Equal(t, tt.width, tpl.Width())
			assert.Equal(t, tt.height, tpl.Height())
		})
	}
}

func TestDecodeRoundTripsAdapters(t *testing.T) {
	dict := testDict()
	conv := New(dict)
	planks := item.Ore("plankWood", dict)
	stick := item.Exact(stickStack)

	templates := [][][]*item.Ingredient{
		{{stick, nil}, {nil, stick}},
		{{planks, planks, planks}, {nil, stick, nil}, {nil, stick, nil}},
		{{nil, planks}},
	}
	for i, rows := range templates {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			tpl := shaped(t, rows, recipe.WithMirrored())
			adapter := conv.ConvertShaped(tpl)

			assert.Same(t, tpl, conv.Decode(adapter))

			var native host.Recipe
			switch a := adapter.(type) {
			case *host.ShapedBasic:
				native = &a.ShapedRecipes
			case *host.ShapedOre:
				native = &a.ShapedOreRecipe
			default:
				t.Fatalf("unexpected adapter %T", adapter)
			}

			decoded, ok := conv.Decode(native).(*recipe.Shaped)
			require.True(t, ok)
			assert.Equal(t, tpl.Width(), decoded.Width())
			assert.Equal(t, tpl.Height(), decoded.Height())
			assert.Equal(t, cellText(tpl), cellText(decoded))
		})
	}
}

func TestDecodeShapeless(t *testing.T) {
	dict := testDict()
	conv := New(dict)

	exact, ok := conv.Decode(&host.ShapelessRecipes{
		Items:  []item.Stack{coalStack, stickStack},
		Output: torchStack,
	}).(*recipe.Shapeless)
	require.True(t, ok)
	assert.Len(t, exact.Ingredients(), 2)

	ore, ok := conv.Decode(&host.ShapelessOreRecipe{
		Inputs: []host.Input{{Ore: "plankWood"}, {Item: coalStack.Ptr()}},
		Output: torchStack,
	}).(*recipe.Shapeless)
	require.True(t, ok)
	g, _ := ore.Ingredients()[0].Group()
	assert.Equal(t, "plankWood", g)
	assert.Same(t, dict, ore.Ingredients()[0].Dictionary())
}

type furnaceRecipe struct{}

func (furnaceRecipe) RecipeOutput() item.Stack { return item.New("minecraft:glass") }
func (furnaceRecipe) RecipeSize() int          { return 1 }

func TestDecodeFallsBackToUnknown(t *testing.T) {
	conv := New(testDict())

	tests := []struct {
		name   string
		native host.Recipe
	}{
		{"unrecognized kind", furnaceRecipe{}},
		{"missing key", &host.ShapedOreRecipe{
			Width: 1, Height: 1,
			Pattern: []string{"Z"},
			Keys:    map[string]host.Input{},
			Output:  item.New("minecraft:glass"),
		}},
		{"pattern wider than declared", &host.ShapedOreRecipe{
			Width: 1, Height: 1,
			Pattern: []string{"AA"},
			Keys:    map[string]host.Input{"A": {Ore: "plankWood"}},
			Output:  item.New("minecraft:glass"),
		}},
		{"no items", &host.ShapedRecipes{
			Width: 2, Height: 2,
			Items:  make([]*item.Stack, 4),
			Output: item.New("minecraft:glass"),
		}},
		{"empty shapeless", &host.ShapelessRecipes{Output: item.New("minecraft:glass")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := conv.decode(tt.native)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrCodeUnsupportedRecipe))

			u, ok := conv.Decode(tt.native).(*recipe.Unknown)
			require.True(t, ok)
			assert.Equal(t, "minecraft:glass", u.Output().ID)
		})
	}
}
