// Package host models the recipe representations native to the crafting
// engine and the adapters gridcraft registers with it.
//
// The engine knows four native kinds:
//
//   - ShapedRecipes: a dense width×height table of exact item stacks.
//   - ShapedOreRecipe: a row pattern of symbols plus a symbol→Input key table,
//     where an Input is either an exact stack or a dictionary group.
//   - ShapelessRecipes and ShapelessOreRecipe: the unordered counterparts.
//
// Every recipe the engine holds implements Recipe. Recipes produced from
// gridcraft templates additionally implement Adapter: they embed the native
// form the engine understands and delegate matching to the template, so the
// engine sees a native recipe while the template's semantics (marks,
// transforms, output functions) still apply.
package host
