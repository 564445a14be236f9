package item

import (
	"fmt"
	"strconv"
	"strings"
)

// Stack is an item identity with a quantity and optional durability.
type Stack struct {
	ID            string `json:"id" yaml:"id"`
	Amount        int    `json:"amount,omitempty" yaml:"amount,omitempty"`
	Durability    int    `json:"durability,omitempty" yaml:"durability,omitempty"`
	MaxDurability int    `json:"maxDurability,omitempty" yaml:"maxDurability,omitempty"`
}

// New returns a single item of the given identity.
func New(id string) Stack {
	return Stack{ID: id, Amount: 1}
}

// WithAmount returns a copy of s holding n items.
func (s Stack) WithAmount(n int) Stack {
	s.Amount = n
	return s
}

// WithDurability returns a copy of s with the given remaining and maximum durability.
func (s Stack) WithDurability(remaining, maximum int) Stack {
	s.Durability = remaining
	s.MaxDurability = maximum
	return s
}

// Damageable reports whether the stack tracks durability.
func (s Stack) Damageable() bool {
	return s.MaxDurability > 0
}

// Count returns the amount, treating zero as a single item.
func (s Stack) Count() int {
	if s.Amount <= 0 {
		return 1
	}
	return s.Amount
}

// Ptr returns a pointer to a fresh copy of s.
func (s Stack) Ptr() *Stack {
	c := s
	return &c
}

// Equal reports whether both stacks describe the same item, amount and durability.
func (s Stack) Equal(o Stack) bool {
	return s.ID == o.ID &&
		s.Count() == o.Count() &&
		s.Durability == o.Durability &&
		s.MaxDurability == o.MaxDurability
}

// String renders the stack identity in bracket form, e.g. <minecraft:stick>.
func (s Stack) String() string {
	return "<" + s.ID + ">"
}

// Describe renders the stack in the compact form accepted by ParseStack.
func (s Stack) Describe() string {
	var b strings.Builder
	b.WriteString(s.ID)
	if s.Count() > 1 {
		fmt.Fprintf(&b, "*%d", s.Count())
	}
	if s.Damageable() {
		fmt.Fprintf(&b, "@%d/%d", s.Durability, s.MaxDurability)
	}
	return b.String()
}

// ParseStack parses the compact stack form used by grid files:
//
//	minecraft:stick
//	<minecraft:stick>
//	minecraft:stick*4
//	minecraft:iron_pickaxe@120/250
func ParseStack(text string) (Stack, error) {
	raw := strings.TrimSpace(text)
	if raw == "" {
		return Stack{}, fmt.Errorf("empty item stack")
	}

	s := Stack{Amount: 1}

	if at := strings.LastIndex(raw, "@"); at >= 0 {
		dur := raw[at+1:]
		raw = raw[:at]
		cur, maxDur, ok := strings.Cut(dur, "/")
		if !ok {
			return Stack{}, fmt.Errorf("durability %q must be remaining/max", dur)
		}
		c, err := strconv.Atoi(cur)
		if err != nil {
			return Stack{}, fmt.Errorf("invalid durability %q: %w", cur, err)
		}
		m, err := strconv.Atoi(maxDur)
		if err != nil {
			return Stack{}, fmt.Errorf("invalid max durability %q: %w", maxDur, err)
		}
		if m <= 0 || c < 0 || c > m {
			return Stack{}, fmt.Errorf("durability %d/%d out of range", c, m)
		}
		s.Durability, s.MaxDurability = c, m
	}

	if star := strings.LastIndex(raw, "*"); star >= 0 {
		n, err := strconv.Atoi(strings.TrimSpace(raw[star+1:]))
		if err != nil {
			return Stack{}, fmt.Errorf("invalid amount in %q: %w", text, err)
		}
		if n <= 0 {
			return Stack{}, fmt.Errorf("amount must be positive, got %d", n)
		}
		s.Amount = n
		raw = raw[:star]
	}

	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "<")
	raw = strings.TrimSuffix(raw, ">")
	if raw == "" {
		return Stack{}, fmt.Errorf("missing item id in %q", text)
	}
	s.ID = raw
	return s, nil
}
