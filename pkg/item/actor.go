package item

// Actor is the entity performing a craft. It may be nil when the host
// crafts without one (automation).
type Actor interface {
	Name() string
}

// NamedActor is an Actor identified only by its name.
type NamedActor string

// Name implements Actor.
func (a NamedActor) Name() string {
	return string(a)
}
