// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package item

import (
	"fmt"
	"slices"
	"strings"
)

// Kind identifies how an ingredient decides whether it accepts a stack.
type Kind int

const (
	// KindItem ingredients accept one concrete item identity.
	KindItem Kind = iota
	// KindOre ingredients accept any member of a named group.
	KindOre
	// KindCustom ingredients evaluate an arbitrary predicate.
	KindCustom
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindItem:
		return "item"
	case KindOre:
		return "ore"
	case KindCustom:
		return "custom"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Ingredient is a predicate over item stacks with an optional mark and
// post-craft transforms. Ingredients are immutable; Marked and Transform
// return modified copies.
type Ingredient struct {
	kind Kind

	stack Stack

	group string
	dict  *Dictionary

	desc string
	pred func(Stack) bool

	mark       string
	transforms []Transform
}

// Exact returns an ingredient accepting stacks with the identity of s and at
// least s.Count() items.
func Exact(s Stack) *Ingredient {
	if s.Amount <= 0 {
		s.Amount = 1
	}
	return &Ingredient{kind: KindItem, stack: s}
}

// Ore returns an ingredient accepting any member of group in dict.
func Ore(group string, dict *Dictionary) *Ingredient {
	return &Ingredient{kind: KindOre, group: group, dict: dict}
}

// Custom returns an ingredient accepting stacks for which pred returns true.
// desc is the ingredient's textual form.
func Custom(desc string, pred func(Stack) bool) *Ingredient {
	return &Ingredient{kind: KindCustom, desc: desc, pred: pred}
}

// Kind returns the ingredient kind.
func (in *Ingredient) Kind() Kind {
	return in.kind
}

// Item returns the concrete stack a KindItem ingredient is bound to.
func (in *Ingredient) Item() (Stack, bool) {
	if in == nil || in.kind != KindItem {
		return Stack{}, false
	}
	return in.stack, true
}

// Group returns the group name a KindOre ingredient is bound to.
func (in *Ingredient) Group() (string, bool) {
	if in == nil || in.kind != KindOre {
		return "", false
	}
	return in.group, true
}

// Internal returns the host-facing binding: a copy of the stack for KindItem,
// the group name for KindOre and nil for KindCustom.
func (in *Ingredient) Internal() any {
	if in == nil {
		return nil
	}
	switch in.kind {
	case KindItem:
		return in.stack.Ptr()
	case KindOre:
		return in.group
	default:
		return nil
	}
}

// Dictionary returns the dictionary a KindOre ingredient resolves against.
func (in *Ingredient) Dictionary() *Dictionary {
	return in.dict
}

// Matches reports whether s satisfies the ingredient. A nil stack never matches.
func (in *Ingredient) Matches(s *Stack) bool {
	if in == nil || s == nil {
		return false
	}
	switch in.kind {
	case KindItem:
		return s.ID == in.stack.ID && s.Count() >= in.stack.Count()
	case KindOre:
		return in.dict.Contains(in.group, s.ID)
	case KindCustom:
		return in.pred != nil && in.pred(*s)
	default:
		return false
	}
}

// Mark returns the ingredient's mark, or "" when unmarked.
func (in *Ingredient) Mark() string {
	return in.mark
}

// Marked returns a copy of the ingredient carrying the given mark.
func (in *Ingredient) Marked(mark string) *Ingredient {
	c := in.clone()
	c.mark = mark
	return c
}

// Transform returns a copy of the ingredient with ts appended to its transforms.
func (in *Ingredient) Transform(ts ...Transform) *Ingredient {
	c := in.clone()
	c.transforms = append(c.transforms, ts...)
	return c
}

// HasTransform reports whether crafting changes the matched cell.
func (in *Ingredient) HasTransform() bool {
	return in != nil && len(in.transforms) > 0
}

// ApplyTransform returns what is left of s after crafting. The result is s
// itself when no transform changed it and nil when the cell is emptied.
func (in *Ingredient) ApplyTransform(s *Stack, actor Actor) *Stack {
	cur := s
	for _, t := range in.transforms {
		if cur == nil {
			break
		}
		cur = t.Apply(cur, actor)
	}
	return cur
}

// String returns the ingredient's textual form, e.g.
// <ore:plankWood>.marked("planks").
func (in *Ingredient) String() string {
	if in == nil {
		return "null"
	}

	var b strings.Builder
	switch in.kind {
	case KindItem:
		b.WriteString(in.stack.String())
		if in.stack.Count() > 1 {
			fmt.Fprintf(&b, " * %d", in.stack.Count())
		}
	case KindOre:
		b.WriteString("<ore:" + in.group + ">")
	case KindCustom:
		b.WriteString(in.desc)
	}
	if in.mark != "" {
		fmt.Fprintf(&b, ".marked(%q)", in.mark)
	}
	for _, t := range in.transforms {
		b.WriteString("." + t.Name())
	}
	return b.String()
}

func (in *Ingredient) clone() *Ingredient {
	c := *in
	c.transforms = slices.Clone(in.transforms)
	return &c
}
