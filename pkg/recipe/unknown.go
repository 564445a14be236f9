package recipe

import (
	"fmt"

	"github.com/gridcraft/gridcraft/pkg/item"
)

// Unknown stands in for a host recipe whose structure could not be decoded.
// Only its output is known; it never matches.
type Unknown struct {
	output item.Stack
}

// NewUnknown returns an Unknown recipe producing output.
func NewUnknown(output item.Stack) *Unknown {
	return &Unknown{output: output}
}

// Output returns the output template.
func (u *Unknown) Output() item.Stack { return u.output }

// Matches always reports false.
func (u *Unknown) Matches(Grid) bool { return false }

// CraftingResult always returns nil.
func (u *Unknown) CraftingResult(Grid, item.Actor) *item.Stack { return nil }

// HasTransforms always reports false.
func (u *Unknown) HasTransforms() bool { return false }

// ApplyTransforms does nothing.
func (u *Unknown) ApplyTransforms(Grid, item.Actor) {}

// ScriptString renders a comment naming the output, since the recipe cannot
// be expressed as a script statement.
func (u *Unknown) ScriptString() string {
	return fmt.Sprintf("// unknown recipe for %s", u.output)
}
