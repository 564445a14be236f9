// Package recipe implements crafting recipe templates and the algorithms that
// match them against a crafting grid.
//
// # Overview
//
// A Shaped template records its ingredients sparsely: only non-empty cells are
// kept, each with its column and row inside a width×height box. Matching slides
// that box over the grid, trying every top-left offset with the column offset
// as the outer loop and the row offset as the inner loop. The first offset at
// which every recorded cell holds a stack accepted by its ingredient wins.
// Mirrored templates retry the whole search with columns flipped around the
// grid's vertical axis, but only after the unflipped search found nothing.
//
// A grid only matches when its number of occupied cells equals the number of
// recorded ingredients, so one stray item anywhere disqualifies it.
//
// # Core Types
//
//	type Grid interface {
//	    Width() int
//	    Height() int
//	    StackCount() int
//	    Stack(x, y int) *item.Stack
//	    SetStack(x, y int, s *item.Stack)
//	}
//
// Shaped: immutable positional template (see NewShaped, NewShapedFlat).
//
// Shapeless: immutable order-free template (see NewShapeless).
//
// Unknown: marker for host recipes that could not be decoded.
//
// # Usage
//
//	stick := item.Exact(item.New("minecraft:stick"))
//	t, err := recipe.NewShaped(item.New("mod:ladder"), [][]*item.Ingredient{
//	    {stick, nil, stick},
//	    {stick, stick, stick},
//	    {stick, nil, stick},
//	})
//	if err != nil {
//	    return err
//	}
//
//	res, ok := t.Resolve(grid, actor)
//	if ok {
//	    t.ApplyTransformsAt(grid, res.Match, actor)
//	}
//
// # Recipe Functions
//
// A Function receives the output template, the stacks matched by marked
// ingredients keyed by mark, and the crafting context. It returns the stack to
// produce, or nil to refuse the craft even though the grid matched.
//
// # Concurrency
//
// Templates are immutable and may be matched from many goroutines at once.
// A Grid is owned by the caller for the duration of a call and is never
// retained.
package recipe
