// Package item defines the values recipes operate on: item stacks, the
// ingredient matchers that accept them, and the named groups ("ore
// dictionary") tag ingredients resolve against.
//
// # Stacks
//
// A Stack is an immutable value. Grids hold *Stack where nil means an empty
// cell; every derivation (WithAmount, WithDurability) returns a new value.
//
// # Ingredients
//
// Ingredient is a closed variant with three kinds:
//
//   - KindItem: bound to one concrete item identity
//   - KindOre: bound to a named group in a Dictionary
//   - KindCustom: an arbitrary predicate
//
// Ingredients optionally carry a mark, used to route the matched stack into a
// recipe function, and a chain of transforms describing what is left in the
// grid cell after crafting:
//
//	fuel := item.Exact(item.New("minecraft:coal")).Marked("fuel")
//	hammer := item.Ore("toolHammer", dict).Transform(item.TransformDamage(1))
package item
