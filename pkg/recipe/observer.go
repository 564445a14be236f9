package recipe

import (
	"log/slog"

	"github.com/gridcraft/gridcraft/pkg/item"
)

// Observer receives notifications about templates and resolved crafts.
// Implementations must be safe for concurrent use.
type Observer interface {
	TemplateBuilt(c Crafting)
	OutputResolved(c Crafting, output *item.Stack)
}

type nopObserver struct{}

func (nopObserver) TemplateBuilt(Crafting) {}
func (nopObserver) OutputResolved(Crafting, *item.Stack) {}

// LogObserver logs template construction and resolved outputs at debug level.
type LogObserver struct {
	Logger *slog.Logger
}

func (o LogObserver) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// TemplateBuilt implements Observer.
func (o LogObserver) TemplateBuilt(c Crafting) {
	o.logger().Debug("recipe template built", "recipe", c.ScriptString())
}

// OutputResolved implements Observer.
func (o LogObserver) OutputResolved(c Crafting, output *item.Stack) {
	if output == nil {
		o.logger().Debug("recipe function refused craft", "output", c.Output().ID)
		return
	}
	o.logger().Debug("recipe output resolved", "output", output.Describe())
}
