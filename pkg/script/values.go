package script

import (
	"fmt"
	"strings"

	"github.com/Shopify/go-lua"

	"github.com/gridcraft/gridcraft/pkg/item"
)

const (
	stackTypeName      = "gridcraft.stack"
	ingredientTypeName = "gridcraft.ingredient"
)

func registerValueTypes(l *lua.State) {
	lua.NewMetaTable(l, stackTypeName)
	l.NewTable()
	lua.SetFunctions(l, stackMethods, 0)
	l.SetField(-2, "__index")
	l.PushGoFunction(stackMul)
	l.SetField(-2, "__mul")
	l.PushGoFunction(stackToString)
	l.SetField(-2, "__tostring")
	l.Pop(1)

	lua.NewMetaTable(l, ingredientTypeName)
	l.NewTable()
	lua.SetFunctions(l, ingredientMethods, 0)
	l.SetField(-2, "__index")
	l.PushGoFunction(ingredientToString)
	l.SetField(-2, "__tostring")
	l.Pop(1)
}

var stackMethods = []lua.RegistryFunction{
	{Name: "withDurability", Function: stackWithDurability},
	{Name: "id", Function: stackID},
	{Name: "amount", Function: stackAmount},
	{Name: "durability", Function: stackDurability},
	{Name: "marked", Function: ingredientMarked},
	{Name: "transformDamage", Function: ingredientTransformDamage},
	{Name: "transformReplace", Function: ingredientTransformReplace},
	{Name: "reuse", Function: ingredientReuse},
}

var ingredientMethods = []lua.RegistryFunction{
	{Name: "marked", Function: ingredientMarked},
	{Name: "transformDamage", Function: ingredientTransformDamage},
	{Name: "transformReplace", Function: ingredientTransformReplace},
	{Name: "reuse", Function: ingredientReuse},
}

func pushStack(l *lua.State, s item.Stack) {
	l.PushUserData(s.Ptr())
	lua.SetMetaTableNamed(l, stackTypeName)
}

func pushIngredient(l *lua.State, in *item.Ingredient) {
	l.PushUserData(in)
	lua.SetMetaTableNamed(l, ingredientTypeName)
}

// toStack reads a stack userdata or a compact stack string.
func toStack(l *lua.State, index int) (item.Stack, bool) {
	switch l.TypeOf(index) {
	case lua.TypeUserData:
		if s, ok := l.ToUserData(index).(*item.Stack); ok {
			return *s, true
		}
	case lua.TypeString:
		text, _ := l.ToString(index)
		if s, err := item.ParseStack(text); err == nil {
			return s, true
		}
	}
	return item.Stack{}, false
}

func checkStack(l *lua.State, index int) item.Stack {
	s, ok := toStack(l, index)
	if !ok {
		lua.ArgumentError(l, index, "item stack expected")
	}
	return s
}

// toIngredient reads an ingredient, a stack (exact match) or a string. nil
// and false are empty cells and yield a nil ingredient.
func toIngredient(l *lua.State, index int, dict *item.Dictionary) (*item.Ingredient, bool) {
	switch l.TypeOf(index) {
	case lua.TypeNil, lua.TypeNone:
		return nil, true
	case lua.TypeBoolean:
		return nil, !l.ToBoolean(index)
	case lua.TypeUserData:
		switch v := l.ToUserData(index).(type) {
		case *item.Ingredient:
			return v, true
		case *item.Stack:
			return item.Exact(*v), true
		}
	case lua.TypeString:
		text, _ := l.ToString(index)
		if group, ok := strings.CutPrefix(text, "ore:"); ok {
			return item.Ore(group, dict), true
		}
		if s, err := item.ParseStack(text); err == nil {
			return item.Exact(s), true
		}
	}
	return nil, false
}

// checkIngredient is toIngredient for method receivers, which may not be empty.
func checkIngredient(l *lua.State, index int) *item.Ingredient {
	in, ok := toIngredient(l, index, nil)
	if !ok || in == nil {
		lua.ArgumentError(l, index, "ingredient expected")
	}
	return in
}

func stackMul(l *lua.State) int {
	stackAt, amountAt := 1, 2
	if l.TypeOf(1) == lua.TypeNumber {
		stackAt, amountAt = 2, 1
	}
	s := checkStack(l, stackAt)
	n := lua.CheckInteger(l, amountAt)
	if n <= 0 {
		lua.ArgumentError(l, amountAt, "amount must be positive")
	}
	pushStack(l, s.WithAmount(n))
	return 1
}

func stackToString(l *lua.State) int {
	l.PushString(checkStack(l, 1).Describe())
	return 1
}

func stackWithDurability(l *lua.State) int {
	s := checkStack(l, 1)
	remaining := lua.CheckInteger(l, 2)
	maximum := lua.OptInteger(l, 3, max(s.MaxDurability, remaining))
	if maximum <= 0 || remaining < 0 || remaining > maximum {
		lua.ArgumentError(l, 2, "durability out of range")
	}
	pushStack(l, s.WithDurability(remaining, maximum))
	return 1
}

func stackID(l *lua.State) int {
	l.PushString(checkStack(l, 1).ID)
	return 1
}

func stackAmount(l *lua.State) int {
	l.PushInteger(checkStack(l, 1).Count())
	return 1
}

func stackDurability(l *lua.State) int {
	s := checkStack(l, 1)
	l.PushInteger(s.Durability)
	l.PushInteger(s.MaxDurability)
	return 2
}

func ingredientToString(l *lua.State) int {
	l.PushString(checkIngredient(l, 1).String())
	return 1
}

func ingredientMarked(l *lua.State) int {
	in := checkIngredient(l, 1)
	pushIngredient(l, in.Marked(lua.CheckString(l, 2)))
	return 1
}

func ingredientTransformDamage(l *lua.State) int {
	in := checkIngredient(l, 1)
	n := lua.OptInteger(l, 2, 1)
	pushIngredient(l, in.Transform(item.TransformDamage(n)))
	return 1
}

func ingredientTransformReplace(l *lua.State) int {
	in := checkIngredient(l, 1)
	with := checkStack(l, 2)
	pushIngredient(l, in.Transform(item.TransformReplace(with)))
	return 1
}

func ingredientReuse(l *lua.State) int {
	in := checkIngredient(l, 1)
	pushIngredient(l, in.Transform(item.TransformReuse()))
	return 1
}

// maxListLen bounds the integer keys of an ingredient list or row table.
const maxListLen = 64

// arrayLen returns the largest positive integer key of the table at index,
// counting nil holes that Lua's length operator may not. Keys above
// maxListLen are reported against argument arg.
func arrayLen(l *lua.State, index, arg int) int {
	index = l.AbsIndex(index)
	n := 0
	l.PushNil()
	for l.Next(index) {
		if l.TypeOf(-2) == lua.TypeNumber {
			if k, ok := l.ToInteger(-2); ok && k > n {
				if k > maxListLen {
					lua.ArgumentError(l, arg, fmt.Sprintf("table index %d exceeds %d", k, maxListLen))
				}
				n = k
			}
		}
		l.Pop(1)
	}
	return n
}
