package item

import (
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"
)

// Dictionary maps group names to the item identities that belong to them.
// It is safe for concurrent use.
type Dictionary struct {
	mu     sync.RWMutex
	groups map[string][]string
}

// NewDictionary returns an empty Dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{groups: make(map[string][]string)}
}

// Register adds ids to group, ignoring ids already present.
func (d *Dictionary) Register(group string, ids ...string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	members := d.groups[group]
	for _, id := range ids {
		if !slices.Contains(members, id) {
			members = append(members, id)
		}
	}
	d.groups[group] = members
}

// Members returns the ids registered under group in registration order.
func (d *Dictionary) Members(group string) []string {
	if d == nil {
		return nil
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.groups[group])
}

// Contains reports whether id is a member of group.
func (d *Dictionary) Contains(group, id string) bool {
	if d == nil {
		return false
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Contains(d.groups[group], id)
}

// Groups returns all group names, sorted.
func (d *Dictionary) Groups() []string {
	if d == nil {
		return nil
	}
	d.mu.RLock()
	defer d.mu.RUnlock()

	names := make([]string, 0, len(d.groups))
	for name := range d.groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether group has been registered.
func (d *Dictionary) Has(group string) bool {
	if d == nil {
		return false
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.groups[group]
	return ok
}

// Suggest returns the registered group closest to name, compared case
// insensitively. ok is false when no group is within a few edits.
func (d *Dictionary) Suggest(name string) (group string, ok bool) {
	best := -1
	needle := strings.ToLower(name)
	for _, g := range d.Groups() {
		dist := levenshtein.ComputeDistance(needle, strings.ToLower(g))
		if dist > suggestLimit(len(g)) {
			continue
		}
		if best < 0 || dist < best {
			best, group = dist, g
		}
	}
	return group, best >= 0
}

func suggestLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// GroupsOf returns the sorted names of all groups containing id.
func (d *Dictionary) GroupsOf(id string) []string {
	if d == nil {
		return nil
	}
	d.mu.RLock()
	defer d.mu.RUnlock()

	var names []string
	for name, members := range d.groups {
		if slices.Contains(members, id) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
