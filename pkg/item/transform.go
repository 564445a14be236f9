package item

import "fmt"

// Transform describes what remains in a grid cell after the ingredient that
// matched it was used in a craft.
//
// The function receives the matched stack and must not modify it. Returning
// the same pointer means the cell is left untouched; returning nil empties it.
type Transform struct {
	name string
	fn   func(s *Stack, actor Actor) *Stack
}

// TransformFunc builds a custom transform. The name is used in the ingredient's
// textual form.
func TransformFunc(name string, fn func(s *Stack, actor Actor) *Stack) Transform {
	return Transform{name: name, fn: fn}
}

// Name returns the textual form of the transform.
func (t Transform) Name() string {
	return t.name
}

// Apply runs the transform on s.
func (t Transform) Apply(s *Stack, actor Actor) *Stack {
	if t.fn == nil || s == nil {
		return s
	}
	return t.fn(s, actor)
}

// TransformDamage reduces the durability of a damageable stack by n. A stack
// whose durability drops to zero or below breaks and leaves the cell empty.
// Stacks without durability are left untouched.
func TransformDamage(n int) Transform {
	return TransformFunc(fmt.Sprintf("transformDamage(%d)", n), func(s *Stack, _ Actor) *Stack {
		if !s.Damageable() || n == 0 {
			return s
		}
		remaining := s.Durability - n
		if remaining <= 0 {
			return nil
		}
		out := s.WithDurability(remaining, s.MaxDurability)
		return &out
	})
}

// TransformReplace leaves with in the cell, e.g. an empty bucket after a
// bucket of water was used.
func TransformReplace(with Stack) Transform {
	return TransformFunc(fmt.Sprintf("transformReplace(%s)", with), func(_ *Stack, _ Actor) *Stack {
		return with.Ptr()
	})
}

// TransformReuse keeps the ingredient in the cell.
func TransformReuse() Transform {
	return TransformFunc("reuse()", func(s *Stack, _ Actor) *Stack {
		return s
	})
}
