// Package grid provides an in-memory crafting grid.
//
// Matrix satisfies recipe.Grid and is what the CLI and the tests craft on.
// Spec is its file form, read from YAML or JSON:
//
//	width: 3
//	height: 3
//	rows:
//	  - ["minecraft:stick", null, null]
//	  - [null, "minecraft:stick", null]
//	  - [null, null, "mod:hammer@10/10"]
//
// Cells use the compact stack form accepted by item.ParseStack. Omitted
// dimensions come from the rows; a file with no rows is an empty 3×3 table.
package grid
