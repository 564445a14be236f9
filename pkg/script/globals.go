package script

import (
	"log/slog"

	"github.com/Shopify/go-lua"

	"github.com/gridcraft/gridcraft/pkg/item"
	"github.com/gridcraft/gridcraft/pkg/recipe"
	"github.com/gridcraft/gridcraft/pkg/registry"
)

func (e *Engine) registerGlobals() {
	l := e.state

	l.PushGoFunction(e.luaItem)
	l.SetGlobal("item")
	l.PushGoFunction(e.luaOre)
	l.SetGlobal("ore")

	l.NewTable()
	lua.SetFunctions(l, []lua.RegistryFunction{
		{Name: "add", Function: e.luaOreDictAdd},
	}, 0)
	l.SetGlobal("oredict")

	l.NewTable()
	lua.SetFunctions(l, []lua.RegistryFunction{
		{Name: "addShaped", Function: e.luaAddShaped(false)},
		{Name: "addShapedMirrored", Function: e.luaAddShaped(true)},
		{Name: "addShapeless", Function: e.luaAddShapeless},
		{Name: "remove", Function: e.luaRemove},
		{Name: "removeShaped", Function: e.luaRemoveShaped},
		{Name: "removeShapeless", Function: e.luaRemoveShapeless},
		{Name: "count", Function: e.luaCount},
	}, 0)
	l.SetGlobal("recipes")
}

func (e *Engine) luaItem(l *lua.State) int {
	e.checkContext(l)
	id := lua.CheckString(l, 1)
	s, err := item.ParseStack(id)
	if err != nil {
		lua.ArgumentError(l, 1, err.Error())
	}
	if !l.IsNoneOrNil(2) {
		n := lua.CheckInteger(l, 2)
		if n <= 0 {
			lua.ArgumentError(l, 2, "amount must be positive")
		}
		s = s.WithAmount(n)
	}
	pushStack(l, s)
	return 1
}

func (e *Engine) luaOre(l *lua.State) int {
	e.checkContext(l)
	name := lua.CheckString(l, 1)
	e.warnUnknownGroup(name)
	pushIngredient(l, item.Ore(name, e.dict))
	return 1
}

// warnUnknownGroup flags a likely misspelled group. Groups may still be
// registered after use, so this never fails the script.
func (e *Engine) warnUnknownGroup(name string) {
	if e.dict.Has(name) {
		return
	}
	if s, ok := e.dict.Suggest(name); ok {
		slog.Warn("unknown ore dictionary group", "group", name, "suggestion", s)
	}
}

func (e *Engine) luaOreDictAdd(l *lua.State) int {
	e.checkContext(l)
	group := lua.CheckString(l, 1)
	var ids []string
	for i := 2; i <= l.Top(); i++ {
		ids = append(ids, checkStack(l, i).ID)
	}
	e.dict.Register(group, ids...)
	return 0
}

func (e *Engine) luaAddShaped(mirrored bool) lua.Function {
	return func(l *lua.State) int {
		e.checkContext(l)
		out := checkStack(l, 1)
		rows := e.checkRows(l, 2)

		opts := e.templateOptions(l, 3)
		if mirrored {
			opts = append(opts, recipe.WithMirrored())
		}
		t, err := recipe.NewShaped(out, rows, opts...)
		if err != nil {
			lua.Errorf(l, "%s", err.Error())
		}
		e.record(l, e.reg.AddShaped(t))
		return 1
	}
}

func (e *Engine) luaAddShapeless(l *lua.State) int {
	e.checkContext(l)
	out := checkStack(l, 1)
	ings := e.checkList(l, 2)

	t, err := recipe.NewShapeless(out, ings, e.templateOptions(l, 3)...)
	if err != nil {
		lua.Errorf(l, "%s", err.Error())
	}
	e.record(l, e.reg.AddShapeless(t))
	return 1
}

func (e *Engine) luaRemove(l *lua.State) int {
	e.checkContext(l)
	out := e.checkOutput(l, 1)
	return e.removed(l, out)(e.reg.Remove(out))
}

func (e *Engine) luaRemoveShaped(l *lua.State) int {
	e.checkContext(l)
	out := e.checkOutput(l, 1)
	return e.removed(l, out)(e.reg.RemoveShaped(out, e.checkRows(l, 2)))
}

func (e *Engine) luaRemoveShapeless(l *lua.State) int {
	e.checkContext(l)
	out := e.checkOutput(l, 1)
	return e.removed(l, out)(e.reg.RemoveShapeless(out, e.checkList(l, 2)))
}

// removed pushes the number of removed recipes. Removing nothing is logged
// rather than raised so scripts keep running against differing host lists.
func (e *Engine) removed(l *lua.State, out *item.Ingredient) func(registry.Action, error) int {
	return func(act registry.Action, err error) int {
		if err != nil {
			slog.Warn("no recipes removed", "output", out.String(), "error", err)
			l.PushInteger(0)
			return 1
		}
		e.actions = append(e.actions, act)
		l.PushInteger(act.Count)
		return 1
	}
}

func (e *Engine) luaCount(l *lua.State) int {
	l.PushInteger(e.reg.Len())
	return 1
}

// record keeps act and pushes its ID as the Lua result.
func (e *Engine) record(l *lua.State, act registry.Action) {
	e.actions = append(e.actions, act)
	l.PushString(act.ID)
}

func (e *Engine) templateOptions(l *lua.State, index int) []recipe.Option {
	var opts []recipe.Option
	if e.observer != nil {
		opts = append(opts, recipe.WithObserver(e.observer))
	}
	if l.IsNoneOrNil(index) {
		return opts
	}
	lua.CheckType(l, index, lua.TypeFunction)
	return append(opts, recipe.WithFunction(e.storeFunction(l, index)))
}

func (e *Engine) checkOutput(l *lua.State, index int) *item.Ingredient {
	in, ok := toIngredient(l, index, e.dict)
	if !ok || in == nil {
		lua.ArgumentError(l, index, "output ingredient expected")
	}
	return in
}

// checkRows reads a table of row tables into ingredients.
func (e *Engine) checkRows(l *lua.State, index int) [][]*item.Ingredient {
	lua.CheckType(l, index, lua.TypeTable)
	index = l.AbsIndex(index)

	n := arrayLen(l, index, index)
	rows := make([][]*item.Ingredient, n)
	for y := 1; y <= n; y++ {
		l.RawGetInt(index, y)
		switch l.TypeOf(-1) {
		case lua.TypeTable:
			rows[y-1] = e.readList(l, -1, index)
		case lua.TypeNil, lua.TypeBoolean:
			if l.ToBoolean(-1) {
				lua.ArgumentError(l, index, "row must be a table")
			}
		default:
			lua.ArgumentError(l, index, "row must be a table")
		}
		l.Pop(1)
	}
	return rows
}

func (e *Engine) checkList(l *lua.State, index int) []*item.Ingredient {
	lua.CheckType(l, index, lua.TypeTable)
	return e.readList(l, index, index)
}

// readList reads the array at index into ingredients; errors are reported
// against argument arg.
func (e *Engine) readList(l *lua.State, index, arg int) []*item.Ingredient {
	index = l.AbsIndex(index)
	n := arrayLen(l, index, arg)
	out := make([]*item.Ingredient, n)
	for i := 1; i <= n; i++ {
		l.RawGetInt(index, i)
		in, ok := toIngredient(l, -1, e.dict)
		if !ok {
			lua.ArgumentError(l, arg, "ingredient expected in table")
		}
		out[i-1] = in
		l.Pop(1)
	}
	return out
}
