// Package script runs recipe scripts written in Lua against a registry.
//
// Scripts see these globals:
//
//	item(id [, amount])                 -- item stack, e.g. item("minecraft:stick", 4)
//	ore(group)                          -- dictionary group ingredient
//	oredict.add(group, stack...)        -- register stacks in a group
//	recipes.addShaped(out, rows [, fn])
//	recipes.addShapedMirrored(out, rows [, fn])
//	recipes.addShapeless(out, list [, fn])
//	recipes.remove(out)                 -- returns the number removed
//	recipes.removeShaped(out, rows)
//	recipes.removeShapeless(out, list)
//	recipes.count()
//
// Stacks and ingredients offer marked(name), transformDamage(n),
// transformReplace(stack) and reuse(); stacks also offer
// withDurability(remaining [, max]) and stack * n to set the amount. Empty
// cells in rows are written as nil or false; false is safer at row ends
// since Lua drops trailing nils from table constructors.
//
// The optional fn receives (output, marked, info), where marked maps marks
// to the matched stacks and info holds the actor name and grid size, and
// returns the stack to craft or nil to refuse. A Lua state is single
// threaded, so every call into the state, including these output
// functions, is serialized by the Engine.
package script
