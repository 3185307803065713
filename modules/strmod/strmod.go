// Package strmod is a native module binding a handful of Go's strings
// package functions over the language's Str variant.
package strmod

import (
	"strings"

	"github.com/quietloop/serpent/errors"
	"github.com/quietloop/serpent/object"
)

// New builds the flat dict registered as the "strings" native module.
func New() map[string]object.Value {
	return map[string]object.Value{
		"upper":      object.NewNativeFunction("strings.upper", 1, unary(strings.ToUpper)),
		"lower":      object.NewNativeFunction("strings.lower", 1, unary(strings.ToLower)),
		"trim_space": object.NewNativeFunction("strings.trim_space", 1, unary(strings.TrimSpace)),
		"contains":   object.NewNativeFunction("strings.contains", 2, containsFn),
		"split":      object.NewNativeFunction("strings.split", 2, splitFn),
		"join":       object.NewNativeFunction("strings.join", 2, joinFn),
	}
}

func asStr(name string, v object.Value) (string, error) {
	s, ok := v.(*object.Str)
	if !ok {
		return "", errors.Typef("%s: argument must be str, not %s", name, v.Type())
	}
	return s.Value, nil
}

func unary(fn func(string) string) func([]object.Value) (object.Value, error) {
	return func(args []object.Value) (object.Value, error) {
		s, err := asStr("strings", args[0])
		if err != nil {
			return nil, err
		}
		return object.NewStr(fn(s)), nil
	}
}

func containsFn(args []object.Value) (object.Value, error) {
	s, err := asStr("strings.contains", args[0])
	if err != nil {
		return nil, err
	}
	sub, err := asStr("strings.contains", args[1])
	if err != nil {
		return nil, err
	}
	return object.NewBool(strings.Contains(s, sub)), nil
}

func splitFn(args []object.Value) (object.Value, error) {
	s, err := asStr("strings.split", args[0])
	if err != nil {
		return nil, err
	}
	sep, err := asStr("strings.split", args[1])
	if err != nil {
		return nil, err
	}
	parts := strings.Split(s, sep)
	items := make([]object.Value, len(parts))
	for i, p := range parts {
		items[i] = object.NewStr(p)
	}
	return object.NewList(items), nil
}

func joinFn(args []object.Value) (object.Value, error) {
	list, ok := args[0].(*object.List)
	if !ok {
		return nil, errors.Typef("strings.join: first argument must be list, not %s", args[0].Type())
	}
	sep, err := asStr("strings.join", args[1])
	if err != nil {
		return nil, err
	}
	parts := make([]string, list.Len())
	for i := 0; i < list.Len(); i++ {
		s, ok := list.At(i).(*object.Str)
		if !ok {
			return nil, errors.Typef("strings.join: list element must be str, not %s", list.At(i).Type())
		}
		parts[i] = s.Value
	}
	return object.NewStr(strings.Join(parts, sep)), nil
}
