// Package registry owns the host recipe list and exposes the operations a
// script uses to change it.
//
// Every mutation is recorded as an Action with a UUID so it can be reverted
// later with Undo, or all at once with UndoAll. Actions are reverted newest
// first; Undo refuses an action while a newer one is still pending. Added
// templates are converted to the most specific host adapter; recipes already
// in the list, including ones seeded from the host, are decoded once so
// removal and crafting work on templates regardless of their native kind.
//
// Usage:
//
//	reg := registry.New(converter.New(dict), registry.WithRecipes(vanilla...))
//	add := reg.AddShaped(torch)
//	out, ok := reg.Craft(g, actor)
//	_ = reg.Undo(add.ID)
//
// Registry is safe for concurrent use.
package registry
