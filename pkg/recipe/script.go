package recipe

import (
	"fmt"
	"strings"

	"github.com/gridcraft/gridcraft/pkg/item"
)

// ScriptString renders the template as the script statement that defines it:
//
//	recipes.addShaped(<mod:ladder> * 3, [[<minecraft:stick>, null, <minecraft:stick>], ...]);
//
// Mirrored templates use addShapedMirrored. Recipe functions are not rendered.
func (s *Shaped) ScriptString() string {
	var b strings.Builder
	if s.mirrored {
		b.WriteString("recipes.addShapedMirrored(")
	} else {
		b.WriteString("recipes.addShaped(")
	}
	writeOutput(&b, s.output)
	b.WriteString(", [")

	for y, row := range s.Rows() {
		if y > 0 {
			b.WriteString(", ")
		}
		b.WriteString("[")
		for x, ing := range row {
			if x > 0 {
				b.WriteString(", ")
			}
			b.WriteString(ing.String())
		}
		b.WriteString("]")
	}

	b.WriteString("]);")
	return b.String()
}

// ScriptString renders the template as the script statement that defines it.
func (s *Shapeless) ScriptString() string {
	var b strings.Builder
	b.WriteString("recipes.addShapeless(")
	writeOutput(&b, s.output)
	b.WriteString(", [")
	for i, ing := range s.ingredients {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(ing.String())
	}
	b.WriteString("]);")
	return b.String()
}

func writeOutput(b *strings.Builder, out item.Stack) {
	b.WriteString(out.String())
	if out.Count() > 1 {
		fmt.Fprintf(b, " * %d", out.Count())
	}
}
