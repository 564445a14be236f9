// Package converter maps gridcraft templates onto the most specific native
// host representation and reconstructs templates from host recipes.
//
// Every ingredient has a specificity tier: exact items are TierExact, tag
// groups are TierTagged and anything else is TierDynamic. A recipe's tier is
// the lowest tier among its non-empty cells, and selects the native form the
// recipe is registered as:
//
//	TierExact    -> host.ShapedBasic / host.ShapelessBasic
//	TierTagged   -> host.ShapedOre / host.ShapelessOre
//	TierDynamic  -> host.ShapedAdvanced / host.ShapelessAdvanced
//
// Decode goes the other way. Native host recipes carry explicit dimensions,
// so no dimension is ever inferred from a cell count. Recipes that cannot be
// decoded become recipe.Unknown; decoding never fails.
package converter
