package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridcraft/gridcraft/pkg/converter"
	"github.com/gridcraft/gridcraft/pkg/errors"
	"github.com/gridcraft/gridcraft/pkg/grid"
	"github.com/gridcraft/gridcraft/pkg/host"
	"github.com/gridcraft/gridcraft/pkg/item"
	"github.com/gridcraft/gridcraft/pkg/recipe"
)

var (
	stickStack  = item.New("minecraft:stick")
	coalStack   = item.New("minecraft:coal")
	torchStack  = item.New("minecraft:torch").WithAmount(4)
	planksStack = item.New("minecraft:oak_planks")
	stick       = item.Exact(stickStack)
	coal        = item.Exact(coalStack)
	torch       = item.Exact(item.New("minecraft:torch"))
)

func newRegistry(opts ...Option) (*Registry, *item.Dictionary) {
	dict := item.NewDictionary()
	dict.Register("plankWood", "minecraft:oak_planks", "minecraft:birch_planks")
	return New(converter.New(dict), opts...), dict
}

func torchRecipe(t *testing.T) *recipe.Shaped {
	t.Helper()
	s, err := recipe.NewShaped(torchStack, [][]*item.Ingredient{{coal}, {stick}})
	require.NoError(t, err)
	return s
}

func TestAddAndUndo(t *testing.T) {
	reg, dict := newRegistry()

	shaped := reg.AddShaped(torchRecipe(t))
	_, err := uuid.Parse(shaped.ID)
	require.NoError(t, err)
	assert.Equal(t, ActionAdd, shaped.Kind)
	assert.Equal(t, 1, shaped.Count)

	sl, err := recipe.NewShapeless(item.New("minecraft:stick").WithAmount(4), []*item.Ingredient{item.Ore("plankWood", dict)})
	require.NoError(t, err)
	shapeless := reg.AddShapeless(sl)

	require.Equal(t, 2, reg.Len())
	recipes := reg.Recipes()
	assert.IsType(t, &host.ShapedBasic{}, recipes[0])
	assert.IsType(t, &host.ShapelessOre{}, recipes[1])

	require.NoError(t, reg.Undo(shapeless.ID))
	require.Equal(t, 1, reg.Len())
	assert.Equal(t, "minecraft:torch", reg.Templates()[0].Output().ID)

	err = reg.Undo(shapeless.ID)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeNotFound))

	require.NoError(t, reg.Undo(shaped.ID))
	assert.Zero(t, reg.Len())

	actions := reg.Actions()
	require.Len(t, actions, 2)
	assert.True(t, actions[0].Undone)
	assert.True(t, actions[1].Undone)
}

func TestSeededRecipesAreDecoded(t *testing.T) {
	native := &host.ShapedRecipes{
		Width: 1, Height: 2,
		Items:  []*item.Stack{coalStack.Ptr(), stickStack.Ptr()},
		Output: torchStack,
	}
	reg, _ := newRegistry(WithRecipes(native))

	entries := reg.Entries()
	require.Len(t, entries, 1)
	assert.Same(t, native, entries[0].Recipe)
	assert.Equal(t, converter.TierExact, entries[0].Tier)
	s, ok := entries[0].Template.(*recipe.Shaped)
	require.True(t, ok)
	assert.Equal(t, 2, s.Height())
	assert.Empty(t, reg.Actions())
	assert.Zero(t, reg.UndoAll())
	assert.Equal(t, 1, reg.Len())
}

func TestRemove(t *testing.T) {
	vanilla := &host.ShapedRecipes{Width: 1, Height: 2, Items: []*item.Stack{coalStack.Ptr(), stickStack.Ptr()}, Output: torchStack}
	other := &host.ShapelessRecipes{Items: []item.Stack{planksStack}, Output: stickStack.WithAmount(4)}
	reg, _ := newRegistry(WithRecipes(vanilla, other))
	reg.AddShaped(torchRecipe(t))

	assert.Len(t, reg.RecipesFor(torch), 2)

	act, err := reg.Remove(torch)
	require.NoError(t, err)
	assert.Equal(t, ActionRemove, act.Kind)
	assert.Equal(t, 2, act.Count)
	assert.Equal(t, 1, reg.Len())
	assert.Empty(t, reg.RecipesFor(torch))

	_, err = reg.Remove(torch)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeNotFound))

	require.NoError(t, reg.Undo(act.ID))
	recipes := reg.Recipes()
	require.Len(t, recipes, 3)
	assert.Same(t, vanilla, recipes[0])
	assert.Same(t, other, recipes[1])
}

func TestRemoveShaped(t *testing.T) {
	reg, _ := newRegistry()
	reg.AddShaped(torchRecipe(t))
	wide, err := recipe.NewShaped(torchStack, [][]*item.Ingredient{{coal, stick}})
	require.NoError(t, err)
	reg.AddShaped(wide)

	_, err = reg.RemoveShaped(torch, [][]*item.Ingredient{{stick}, {coal}})
	require.Error(t, err)

	act, err := reg.RemoveShaped(torch, [][]*item.Ingredient{{coal}, {stick}})
	require.NoError(t, err)
	assert.Equal(t, 1, act.Count)

	remaining, ok := reg.Templates()[0].(*recipe.Shaped)
	require.True(t, ok)
	assert.Equal(t, 2, remaining.Width())
}

func TestRemoveShapeless(t *testing.T) {
	reg, _ := newRegistry()
	sl, err := recipe.NewShapeless(torchStack, []*item.Ingredient{coal, stick})
	require.NoError(t, err)
	reg.AddShapeless(sl)
	reg.AddShaped(torchRecipe(t))

	act, err := reg.RemoveShapeless(torch, []*item.Ingredient{stick, nil, coal})
	require.NoError(t, err)
	assert.Equal(t, 1, act.Count)
	assert.IsType(t, &recipe.Shaped{}, reg.Templates()[0])
}

func TestUndoAllRestoresOrder(t *testing.T) {
	a := &host.ShapelessRecipes{Items: []item.Stack{planksStack}, Output: item.New("a:a")}
	b := &host.ShapelessRecipes{Items: []item.Stack{planksStack}, Output: item.New("b:b")}
	c := &host.ShapelessRecipes{Items: []item.Stack{planksStack}, Output: item.New("c:c")}
	reg, _ := newRegistry(WithRecipes(a, b, c))

	_, err := reg.Remove(item.Exact(item.New("b:b")))
	require.NoError(t, err)
	reg.AddShaped(torchRecipe(t))
	_, err = reg.Remove(item.Exact(item.New("a:a")))
	require.NoError(t, err)

	assert.Equal(t, 3, reg.UndoAll())
	assert.Equal(t, []host.Recipe{a, b, c}, reg.Recipes())
	assert.Zero(t, reg.UndoAll())
}

func TestUndoRemovalsNewestFirst(t *testing.T) {
	a := &host.ShapelessRecipes{Items: []item.Stack{planksStack}, Output: item.New("a:a")}
	b := &host.ShapelessRecipes{Items: []item.Stack{planksStack}, Output: item.New("b:b")}
	c := &host.ShapelessRecipes{Items: []item.Stack{planksStack}, Output: item.New("c:c")}
	reg, _ := newRegistry(WithRecipes(a, b, c))

	actA, err := reg.Remove(item.Exact(item.New("a:a")))
	require.NoError(t, err)
	actC, err := reg.Remove(item.Exact(item.New("c:c")))
	require.NoError(t, err)

	err = reg.Undo(actA.ID)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidRequest))
	assert.Equal(t, []host.Recipe{b}, reg.Recipes())
	assert.False(t, reg.Actions()[0].Undone)

	require.NoError(t, reg.Undo(actC.ID))
	require.NoError(t, reg.Undo(actA.ID))
	assert.Equal(t, []host.Recipe{a, b, c}, reg.Recipes())
}

func TestUndoAddBeforeLaterRemoval(t *testing.T) {
	reg, _ := newRegistry()
	add := reg.AddShaped(torchRecipe(t))
	rm, err := reg.Remove(torch)
	require.NoError(t, err)

	err = reg.Undo(add.ID)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidRequest))

	require.NoError(t, reg.Undo(rm.ID))
	assert.Equal(t, 1, reg.Len())
	require.NoError(t, reg.Undo(add.ID))
	assert.Zero(t, reg.Len())
}

func TestCraftShaped(t *testing.T) {
	reg, _ := newRegistry()
	hammer := item.New("mod:hammer").WithDurability(10, 10)
	tpl, err := recipe.NewShaped(item.New("mod:plate"), [][]*item.Ingredient{
		{item.Exact(item.New("mod:hammer")).Transform(item.TransformDamage(1))},
		{item.Exact(item.New("minecraft:iron_ingot"))},
	})
	require.NoError(t, err)
	reg.AddShaped(torchRecipe(t))
	reg.AddShaped(tpl)

	g := grid.New(3, 3)
	g.SetStack(2, 1, hammer.Ptr())
	g.SetStack(2, 2, item.New("minecraft:iron_ingot").WithAmount(3).Ptr())

	res, ok := reg.Craft(g, item.NamedActor("alex"))
	require.True(t, ok)
	assert.Equal(t, "mod:plate", res.Output.ID)
	assert.Same(t, tpl, res.Template)
	assert.Equal(t, 2, res.Match.OffsetX)
	assert.Equal(t, 1, res.Match.OffsetY)

	assert.Equal(t, 9, g.Stack(2, 1).Durability)
	assert.Equal(t, 2, g.Stack(2, 2).Amount)
}

func TestCraftShapelessLeftovers(t *testing.T) {
	reg, _ := newRegistry()
	bucket := item.New("minecraft:water_bucket")
	sl, err := recipe.NewShapeless(item.New("minecraft:clay"), []*item.Ingredient{
		item.Exact(bucket).Transform(item.TransformReplace(item.New("minecraft:bucket"))),
		item.Exact(item.New("minecraft:sand")),
	})
	require.NoError(t, err)
	reg.AddShapeless(sl)

	g := grid.New(2, 2)
	g.SetStack(0, 0, item.New("minecraft:sand").Ptr())
	g.SetStack(1, 1, bucket.Ptr())

	res, ok := reg.Craft(g, nil)
	require.True(t, ok)
	assert.Equal(t, "minecraft:clay", res.Output.ID)
	assert.Nil(t, g.Stack(0, 0))
	assert.Equal(t, "minecraft:bucket", g.Stack(1, 1).ID)
}

func TestCraftOutcomes(t *testing.T) {
	refusing, err := recipe.NewShaped(torchStack, [][]*item.Ingredient{{coal}},
		recipe.WithFunction(func(item.Stack, map[string]item.Stack, recipe.CraftingInfo) *item.Stack { return nil }))
	require.NoError(t, err)

	tests := []struct {
		name  string
		setup func(*Registry)
		ok    bool
	}{
		{
			name:  "no recipes",
			setup: func(*Registry) {},
		},
		{
			name: "refused",
			setup: func(r *Registry) {
				r.AddShaped(refusing)
			},
		},
		{
			name: "unknown recipes are skipped",
			setup: func(r *Registry) {
				WithRecipes(unknownRecipe{})(r)
				r.AddShaped(torchRecipe(t))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, _ := newRegistry()
			tt.setup(reg)

			g := grid.New(1, 1)
			g.SetStack(0, 0, coalStack.Ptr())
			before := g.Clone()

			_, ok := reg.Craft(g, nil)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, before, g)
		})
	}
}

type unknownRecipe struct{}

func (unknownRecipe) RecipeOutput() item.Stack { return item.New("mod:mystery") }
func (unknownRecipe) RecipeSize() int          { return 0 }

func TestConcurrentAccess(t *testing.T) {
	reg, _ := newRegistry()
	tpl := torchRecipe(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			reg.AddShaped(tpl)
			g := grid.New(1, 2)
			g.SetStack(0, 0, coalStack.Ptr())
			g.SetStack(0, 1, stickStack.Ptr())
			_, ok := reg.Craft(g, nil)
			assert.True(t, ok, fmt.Sprintf("worker %d", i))
			_ = reg.Entries()
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 8, reg.UndoAll())
	assert.Zero(t, reg.Len())
}
