package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridcraft/gridcraft/pkg/errors"
	"github.com/gridcraft/gridcraft/pkg/item"
)

func TestNewShapelessRequiresIngredients(t *testing.T) {
	_, err := NewShapeless(torchStack, []*item.Ingredient{nil})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidShape))
}

func TestShapelessMatching(t *testing.T) {
	dict := dictWith("dye", "minecraft:red_dye", "minecraft:blue_dye")
	anyDye := item.Ore("dye", dict)
	redDye := item.Exact(item.New("minecraft:red_dye"))

	// the exact ingredient must not be starved by the broader one declared first
	s, err := NewShapeless(item.New("minecraft:purple_dye").WithAmount(2), []*item.Ingredient{anyDye, redDye})
	require.NoError(t, err)

	tests := []struct {
		name  string
		cells map[[2]int]item.Stack
		want  bool
	}{
		{
			name:  "broad ingredient backtracks",
			cells: map[[2]int]item.Stack{{0, 0}: item.New("minecraft:red_dye"), {2, 2}: item.New("minecraft:blue_dye")},
			want:  true,
		},
		{
			name:  "order independent",
			cells: map[[2]int]item.Stack{{0, 0}: item.New("minecraft:blue_dye"), {1, 0}: item.New("minecraft:red_dye")},
			want:  true,
		},
		{
			name:  "two red",
			cells: map[[2]int]item.Stack{{0, 0}: item.New("minecraft:red_dye"), {1, 0}: item.New("minecraft:red_dye")},
			want:  true,
		},
		{
			name:  "two blue",
			cells: map[[2]int]item.Stack{{0, 0}: item.New("minecraft:blue_dye"), {1, 0}: item.New("minecraft:blue_dye")},
			want:  false,
		},
		{
			name: "extra item",
			cells: map[[2]int]item.Stack{
				{0, 0}: item.New("minecraft:red_dye"),
				{1, 0}: item.New("minecraft:blue_dye"),
				{2, 0}: stickStack,
			},
			want: false,
		},
		{
			name:  "missing item",
			cells: map[[2]int]item.Stack{{0, 0}: item.New("minecraft:red_dye")},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Matches(place(3, 3, tt.cells)))
		})
	}
}

func TestShapelessResolveAndTransforms(t *testing.T) {
	bucketStack := item.New("minecraft:water_bucket")
	bucket := item.Exact(bucketStack).Transform(item.TransformReplace(item.New("minecraft:bucket")))
	clay := item.Exact(item.New("minecraft:clay_ball")).Marked("clay")

	var marked map[string]item.Stack
	s, err := NewShapeless(item.New("mod:wet_clay"), []*item.Ingredient{bucket, clay},
		WithFunction(func(out item.Stack, m map[string]item.Stack, _ CraftingInfo) *item.Stack {
			marked = m
			return out.Ptr()
		}))
	require.NoError(t, err)

	g := place(3, 3, map[[2]int]item.Stack{{2, 0}: bucketStack, {0, 1}: item.New("minecraft:clay_ball")})

	res, ok := s.Resolve(g, nil)
	require.True(t, ok)
	assert.Equal(t, "mod:wet_clay", res.Output.ID)
	assert.Contains(t, marked, "clay")
	require.Len(t, res.Leftovers, 1)
	assert.Equal(t, Leftover{X: 2, Y: 0, Stack: item.New("minecraft:bucket").Ptr()}, res.Leftovers[0])

	s.ApplyTransforms(g, nil)
	assert.Equal(t, "minecraft:bucket", g.Stack(2, 0).ID)
	assert.Equal(t, "minecraft:clay_ball", g.Stack(0, 1).ID)
	assert.True(t, s.HasTransforms())
}

func TestShapelessSuppressed(t *testing.T) {
	s, err := NewShapeless(torchStack, []*item.Ingredient{coal}, WithFunction(
		func(item.Stack, map[string]item.Stack, CraftingInfo) *item.Stack { return nil }))
	require.NoError(t, err)

	g := place(2, 2, map[[2]int]item.Stack{{1, 1}: coalStack})
	res, ok := s.Resolve(g, nil)
	assert.False(t, ok)
	assert.True(t, res.Suppressed)
	assert.Nil(t, s.CraftingResult(g, nil))
}

func TestUnknown(t *testing.T) {
	u := NewUnknown(item.New("mod:mystery"))
	g := place(1, 1, map[[2]int]item.Stack{{0, 0}: stickStack})

	assert.Equal(t, "mod:mystery", u.Output().ID)
	assert.False(t, u.Matches(g))
	assert.Nil(t, u.CraftingResult(g, nil))
	assert.False(t, u.HasTransforms())
	u.ApplyTransforms(g, nil)
	assert.Equal(t, stickStack, *g.Stack(0, 0))
	assert.Equal(t, "// unknown recipe for <mod:mystery>", u.ScriptString())
}
