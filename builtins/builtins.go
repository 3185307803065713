// Package builtins implements the four names exposed unconditionally to
// every VM regardless of which native modules an embedder registers:
// print, type, range, set.
package builtins

import (
	"fmt"
	"strings"

	"github.com/quietloop/serpent/errors"
	"github.com/quietloop/serpent/object"
)

// All returns a fresh builtins map suitable for vm.New. Each call returns
// independent NativeFunction values so callers are free to mutate the map
// (e.g. to shadow a name) without affecting other VMs.
func All() map[string]object.Value {
	return map[string]object.Value{
		"print": object.NewNativeFunction("print", object.Unbounded, builtinPrint),
		"type":  object.NewNativeFunction("type", 1, builtinType),
		"range": object.NewNativeFunction("range", object.Unbounded, builtinRange),
		"set":   object.NewNativeFunction("set", 0, builtinSet),
	}
}

func builtinPrint(args []object.Value) (object.Value, error) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = printableString(a)
	}
	fmt.Println(strings.Join(parts, " "))
	return object.NilValue, nil
}

// printableString renders a Str's raw content unquoted, matching how
// `print` differs from Inspect-based debug dumps: only `print` drops the
// quotes around strings, everywhere else (container elements, the
// disassembler) keeps them.
func printableString(v object.Value) string {
	if s, ok := v.(*object.Str); ok {
		return s.Value
	}
	return v.Inspect()
}

func builtinType(args []object.Value) (object.Value, error) {
	return object.NewTypeValue(object.TypeNameOf(args[0])), nil
}

func builtinSet(args []object.Value) (object.Value, error) {
	return object.NewSet(), nil
}

// builtinRange implements the 1-3 argument int-only range: a
// single argument is treated as (0, n, 1); a zero step is a ValueError; a
// negative step requires start > stop, just as a positive step requires
// start < stop, or the result is simply empty.
func builtinRange(args []object.Value) (object.Value, error) {
	if len(args) < 1 || len(args) > 3 {
		return nil, errors.Typef("range() takes 1 to 3 arguments but %d were given", len(args))
	}
	ints := make([]int64, len(args))
	for i, a := range args {
		n, ok := a.(*object.Int)
		if !ok {
			return nil, errors.Typef("range() arguments must be int, not %s", a.Type())
		}
		ints[i] = n.Value
	}

	var start, stop, step int64
	switch len(ints) {
	case 1:
		start, stop, step = 0, ints[0], 1
	case 2:
		start, stop, step = ints[0], ints[1], 1
	case 3:
		start, stop, step = ints[0], ints[1], ints[2]
	}
	if step == 0 {
		return nil, errors.Valuef("range() step argument must not be zero")
	}

	var items []object.Value
	if step > 0 {
		for v := start; v < stop; v += step {
			items = append(items, object.NewInt(v))
		}
	} else {
		for v := start; v > stop; v += step {
			items = append(items, object.NewInt(v))
		}
	}
	return object.NewList(items), nil
}
