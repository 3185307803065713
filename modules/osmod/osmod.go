// Package osmod is a native module binding a small, read-mostly slice of
// Go's os package.
package osmod

import (
	"os"

	"github.com/quietloop/serpent/errors"
	"github.com/quietloop/serpent/object"
)

// New builds the flat dict registered as the "os" native module.
func New() map[string]object.Value {
	return map[string]object.Value{
		"getenv": object.NewNativeFunction("os.getenv", 1, getenvFn),
		"args":   object.NewNativeFunction("os.args", 0, argsFn),
		"exit":   object.NewNativeFunction("os.exit", 1, exitFn),
	}
}

func getenvFn(args []object.Value) (object.Value, error) {
	name, ok := args[0].(*object.Str)
	if !ok {
		return nil, typeErr("os.getenv", args[0])
	}
	return object.NewStr(os.Getenv(name.Value)), nil
}

func argsFn(args []object.Value) (object.Value, error) {
	items := make([]object.Value, len(os.Args))
	for i, a := range os.Args {
		items[i] = object.NewStr(a)
	}
	return object.NewList(items), nil
}

func exitFn(args []object.Value) (object.Value, error) {
	code, ok := args[0].(*object.Int)
	if !ok {
		return nil, typeErr("os.exit", args[0])
	}
	os.Exit(int(code.Value))
	return object.NilValue, nil
}

func typeErr(name string, v object.Value) error {
	return errors.Typef("%s: unsupported argument type %s", name, v.Type())
}
