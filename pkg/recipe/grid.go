package recipe

import "github.com/gridcraft/gridcraft/pkg/item"

// Grid is the crafting surface owned by the host.
type Grid interface {
	// Width returns the number of columns.
	Width() int
	// Height returns the number of rows.
	Height() int
	// StackCount returns the number of non-empty cells.
	StackCount() int
	// Stack returns the stack at column x, row y, or nil when empty.
	Stack(x, y int) *item.Stack
	// SetStack replaces the stack at column x, row y. nil empties the cell.
	SetStack(x, y int, s *item.Stack)
}

// CraftingInfo is the context handed to recipe functions.
type CraftingInfo struct {
	Grid  Grid
	Actor item.Actor
}

// Function computes the output of a craft. marked maps each ingredient mark
// to the stack it matched. Returning nil refuses the craft.
type Function func(output item.Stack, marked map[string]item.Stack, info CraftingInfo) *item.Stack

// Crafting is the behavior shared by every recipe template.
type Crafting interface {
	// Output returns the output template.
	Output() item.Stack
	// Matches reports whether the grid satisfies the recipe.
	Matches(g Grid) bool
	// CraftingResult returns the stack the grid crafts into, or nil.
	CraftingResult(g Grid, actor item.Actor) *item.Stack
	// HasTransforms reports whether crafting modifies the grid.
	HasTransforms() bool
	// ApplyTransforms writes ingredient leftovers back into the grid.
	ApplyTransforms(g Grid, actor item.Actor)
	// ScriptString renders the recipe as a script statement.
	ScriptString() string
}

var (
	_ Crafting = (*Shaped)(nil)
	_ Crafting = (*Shapeless)(nil)
	_ Crafting = (*Unknown)(nil)
)
