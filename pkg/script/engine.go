package script

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Shopify/go-lua"

	"github.com/gridcraft/gridcraft/pkg/errors"
	"github.com/gridcraft/gridcraft/pkg/item"
	"github.com/gridcraft/gridcraft/pkg/recipe"
	"github.com/gridcraft/gridcraft/pkg/registry"
)

// functionsGlobal holds the Lua output functions, keyed by registration order.
const functionsGlobal = "__gridcraft_functions"

// hookInterval is the number of Lua instructions between context checks.
const hookInterval = 1000

// sandboxLibraries are the only standard libraries a script can reach.
var sandboxLibraries = []lua.RegistryFunction{
	{Name: "_G", Function: lua.BaseOpen},
	{Name: "table", Function: lua.TableOpen},
	{Name: "string", Function: lua.StringOpen},
	{Name: "math", Function: lua.MathOpen},
}

// sandboxRemoved are base library functions that read files.
var sandboxRemoved = []string{"dofile", "loadfile"}

// Engine owns a Lua state wired to a registry and dictionary.
type Engine struct {
	reg      *registry.Registry
	dict     *item.Dictionary
	observer recipe.Observer

	mu       sync.Mutex
	state    *lua.State
	ctx      context.Context
	craftCtx context.Context
	nextFn   int
	actions  []registry.Action
}

// Option configures an Engine.
type Option func(*Engine)

// WithObserver attaches o to every template the scripts build.
func WithObserver(o recipe.Observer) Option {
	return func(e *Engine) {
		e.observer = o
	}
}

// New returns an Engine adding recipes to reg and resolving groups in dict.
func New(reg *registry.Registry, dict *item.Dictionary, opts ...Option) *Engine {
	e := &Engine{
		reg:   reg,
		dict:  dict,
		state: lua.NewState(),
	}
	for _, opt := range opts {
		opt(e)
	}

	openSandbox(e.state)
	e.state.NewTable()
	e.state.SetGlobal(functionsGlobal)
	registerValueTypes(e.state)
	e.registerGlobals()
	return e
}

// Run executes the script file at path.
func (e *Engine) Run(ctx context.Context, path string) error {
	return e.run(ctx, path, func(l *lua.State) error {
		return lua.LoadFile(l, path, "")
	})
}

// RunString executes src; name identifies the chunk in error messages.
func (e *Engine) RunString(ctx context.Context, name, src string) error {
	return e.run(ctx, name, func(l *lua.State) error {
		return lua.LoadBuffer(l, src, name, "")
	})
}

// SetCraftContext bounds the recipe functions the scripts registered: once
// ctx is done a running function is stopped and later calls return nil.
func (e *Engine) SetCraftContext(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.craftCtx = ctx
}

func openSandbox(l *lua.State) {
	for _, lib := range sandboxLibraries {
		lua.Require(l, lib.Name, lib.Function, true)
		l.Pop(1)
	}
	for _, name := range sandboxRemoved {
		l.PushNil()
		l.SetGlobal(name)
	}
}

// protectedCall runs the function below args with the context hook installed,
// so a busy Lua loop still observes e.ctx.
func (e *Engine) protectedCall(args, results int) error {
	l := e.state
	lua.SetDebugHook(l, func(l *lua.State, _ lua.Debug) { e.checkContext(l) }, lua.MaskCount, hookInterval)
	defer lua.SetDebugHook(l, nil, 0, 0)
	return l.ProtectedCall(args, results, 0)
}

func (e *Engine) run(ctx context.Context, name string, load func(*lua.State) error) error {
	if err := ctx.Err(); err != nil {
		return errors.WrapWithContext(errors.ErrCodeInternal, "script not started", err, map[string]any{
			"script": name,
		})
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.ctx = ctx
	defer func() { e.ctx = nil }()
	defer e.state.SetTop(0)

	slog.Debug("running script", "script", name)

	if err := load(e.state); err != nil {
		return errors.WrapWithContext(errors.ErrCodeInvalidRequest, "failed to load script", err, map[string]any{
			"script": name,
		})
	}
	if err := e.protectedCall(0, 0); err != nil {
		return errors.WrapWithContext(errors.ErrCodeInternal, "script failed", err, map[string]any{
			"script": name,
		})
	}
	return nil
}

// Actions returns the registry actions the scripts have performed.
func (e *Engine) Actions() []registry.Action {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]registry.Action(nil), e.actions...)
}

// checkContext raises a Lua error once the running script's context is done.
func (e *Engine) checkContext(l *lua.State) {
	if e.ctx == nil {
		return
	}
	if err := e.ctx.Err(); err != nil {
		lua.Errorf(l, "script cancelled: %s", err.Error())
	}
}

// storeFunction saves the Lua function at index and returns a recipe
// function calling it.
func (e *Engine) storeFunction(l *lua.State, index int) recipe.Function {
	e.nextFn++
	id := e.nextFn

	l.Global(functionsGlobal)
	l.PushValue(index)
	l.RawSetInt(-2, id)
	l.Pop(1)

	return func(out item.Stack, marked map[string]item.Stack, info recipe.CraftingInfo) *item.Stack {
		return e.callFunction(id, out, marked, info)
	}
}

func (e *Engine) callFunction(id int, out item.Stack, marked map[string]item.Stack, info recipe.CraftingInfo) *item.Stack {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.craftCtx != nil {
		if err := e.craftCtx.Err(); err != nil {
			slog.Debug("recipe function skipped", "function", id, "error", err)
			return nil
		}
		e.ctx = e.craftCtx
		defer func() { e.ctx = nil }()
	}

	l := e.state
	top := l.Top()
	defer l.SetTop(top)

	l.Global(functionsGlobal)
	l.RawGetInt(-1, id)

	pushStack(l, out)

	l.NewTable()
	for mark, s := range marked {
		pushStack(l, s)
		l.SetField(-2, mark)
	}

	l.NewTable()
	if info.Actor != nil {
		l.PushString(info.Actor.Name())
		l.SetField(-2, "actor")
	}
	if info.Grid != nil {
		l.PushInteger(info.Grid.Width())
		l.SetField(-2, "width")
		l.PushInteger(info.Grid.Height())
		l.SetField(-2, "height")
	}

	if err := e.protectedCall(3, 1); err != nil {
		slog.Warn("recipe function failed", "function", id, "output", out.Describe(), "error", err)
		return nil
	}

	if s, ok := l.ToUserData(-1).(*item.Stack); ok {
		return s.Ptr()
	}
	return nil
}
